// text.go decodes title and description fields. The REST API sends them as
// {raw, rendered} objects in the edit context and as plain strings elsewhere;
// snapshots may hold either depending on how they were captured.

package registry

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Text is a string field that some sources send as a {raw, rendered} object.
// The rendered form wins when both are present.
type Text string

type textObject struct {
	Raw      *string `json:"raw" yaml:"raw"`
	Rendered *string `json:"rendered" yaml:"rendered"`
}

func (o textObject) text() Text {
	switch {
	case o.Rendered != nil:
		return Text(*o.Rendered)
	case o.Raw != nil:
		return Text(*o.Raw)
	}
	return ""
}

// UnmarshalJSON accepts a string or a {raw, rendered} object.
func (t *Text) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != nil {
			*t = Text(*s)
		}
		return nil
	}
	var o textObject
	if err := json.Unmarshal(b, &o); err != nil {
		return err
	}
	*t = o.text()
	return nil
}

// UnmarshalYAML accepts a scalar or a {raw, rendered} mapping.
func (t *Text) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		var o textObject
		if err := n.Decode(&o); err != nil {
			return err
		}
		*t = o.text()
		return nil
	}
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	*t = Text(s)
	return nil
}
