package output_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jpl-au/wpblock/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFields = output.Fields{
	All:     []string{"name", "title", "keywords", "dynamic"},
	Default: []string{"name", "title"},
	Detail:  []string{"keywords"},
}

func testRecords() []output.Record {
	return []output.Record{
		{{"name", "core/paragraph"}, {"title", "Paragraph"}, {"keywords", []string{"text"}}, {"dynamic", false}},
		{{"name", "core/latest-posts"}, {"title", "Latest <Posts>"}, {"keywords", nil}, {"dynamic", true}},
	}
}

func render(t *testing.T, opts output.Options, items []output.Record) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, output.New(opts, testFields).Items(&b, items))
	return b.String()
}

func TestItems_Formats(t *testing.T) {
	items := testRecords()

	t.Run("csv uses default fields", func(t *testing.T) {
		got := render(t, output.Options{Format: output.CSV}, items)
		assert.Equal(t, "name,title\ncore/paragraph,Paragraph\ncore/latest-posts,Latest <Posts>\n", got)
	})

	t.Run("json keeps field order and markup", func(t *testing.T) {
		got := render(t, output.Options{Format: output.JSON, Fields: []string{"title", "name"}}, items)
		assert.Equal(t, `[{"title":"Paragraph","name":"core/paragraph"},{"title":"Latest <Posts>","name":"core/latest-posts"}]`+"\n", got)
	})

	t.Run("yaml", func(t *testing.T) {
		got := render(t, output.Options{Format: output.YAML, Fields: []string{"name", "dynamic"}}, items)
		assert.Equal(t, "- name: core/paragraph\n  dynamic: false\n- name: core/latest-posts\n  dynamic: true\n", got)
	})

	t.Run("count", func(t *testing.T) {
		assert.Equal(t, "2\n", render(t, output.Options{Format: output.Count}, items))
		assert.Equal(t, "0\n", render(t, output.Options{Format: output.Count}, nil))
	})

	t.Run("table", func(t *testing.T) {
		got := render(t, output.Options{Format: output.Table}, items)
		assert.Contains(t, got, "name")
		assert.Contains(t, got, "core/latest-posts")
		assert.Contains(t, got, "+")
		assert.NotContains(t, got, "keywords")
	})

	t.Run("empty table prints header only", func(t *testing.T) {
		got := render(t, output.Options{Format: output.Table}, nil)
		assert.Contains(t, got, "title")
		assert.NotContains(t, got, "core/")
	})
}

func TestItems_Field(t *testing.T) {
	items := testRecords()

	got := render(t, output.Options{Format: output.Table, Field: "name"}, items)
	assert.Equal(t, "core/paragraph\ncore/latest-posts\n", got)

	got = render(t, output.Options{Format: output.Table, Field: "keywords"}, items)
	assert.Equal(t, "[\"text\"]\n\n", got)

	got = render(t, output.Options{Format: output.JSON, Field: "dynamic"}, items)
	assert.Equal(t, "[false,true]\n", got)
}

func TestItem(t *testing.T) {
	item := testRecords()[0]

	t.Run("json includes detail fields", func(t *testing.T) {
		var b bytes.Buffer
		require.NoError(t, output.New(output.Options{Format: output.JSON}, testFields).Item(&b, item))
		assert.Equal(t, `{"name":"core/paragraph","title":"Paragraph","keywords":["text"]}`+"\n", b.String())
	})

	t.Run("explicit fields replace the enriched default", func(t *testing.T) {
		var b bytes.Buffer
		require.NoError(t, output.New(output.Options{Format: output.CSV, Fields: []string{"title"}}, testFields).Item(&b, item))
		assert.Equal(t, "Field,Value\ntitle,Paragraph\n", b.String())
	})

	t.Run("single field", func(t *testing.T) {
		var b bytes.Buffer
		require.NoError(t, output.New(output.Options{Field: "title"}, testFields).Item(&b, item))
		assert.Equal(t, "Paragraph\n", b.String())
	})
}

func TestValidate_UnknownField(t *testing.T) {
	tests := []output.Options{
		{Field: "nope"},
		{Fields: []string{"name", "nope"}},
	}
	for _, opts := range tests {
		err := output.New(opts, testFields).Items(&bytes.Buffer{}, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, output.ErrInvalidField))
		assert.Equal(t, "Invalid field: nope.", err.Error())
	}
}

func TestFormatValue(t *testing.T) {
	v := output.NewFormatValue(output.GetFormats)
	assert.Equal(t, "table", v.String())

	require.NoError(t, v.Set("JSON"))
	assert.Equal(t, output.JSON, v.Format())

	err := v.Set("ids")
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrInvalidFormat))
}

func TestParseFields(t *testing.T) {
	assert.Equal(t, []string{"name", "title"}, output.ParseFields(" name, ,title "))
	assert.Nil(t, output.ParseFields(""))
}

func TestWriteIDs(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, output.WriteIDs(&b, []string{"core/a", "core/b"}))
	assert.Equal(t, "core/a core/b\n", b.String())
}
