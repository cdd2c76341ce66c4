// Package guide embeds the markdown pages shown by "wpblock guide" and served
// to MCP clients through the wpblock_guide tool and wpblock://guide/ URIs.
package guide

import (
	"embed"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var pages embed.FS

// overview is the page shown when no topic is given.
const overview = "guide"

// Get returns the page for topic. An empty topic returns the overview; a
// trailing ".md" is accepted.
func Get(topic string) (string, error) {
	topic = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(topic)), ".md")
	if topic == "" {
		topic = overview
	}
	data, err := pages.ReadFile(topic + ".md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the topics other than the overview, sorted.
func List() ([]string, error) {
	files, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		if t := strings.TrimSuffix(f, ".md"); t != overview {
			topics = append(topics, t)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
