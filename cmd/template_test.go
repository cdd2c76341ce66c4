package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateList(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("block", "template", "list", "--format=ids"),
		"twentytwentyfour//index twentytwentyfour//single twentytwentyfour//landing")
	env.equals(env.run("block", "template", "list", "--slug=index,landing", "--format=count"), "2")
	env.equals(env.run("block", "template", "list", "--post-type=page", "--field=slug"), "landing")

	env.equals(env.run("block", "template", "list", "--type=wp_template_part", "--area=footer", "--format=ids"),
		"twentytwentyfour//footer")
	// area only narrows template parts
	env.equals(env.run("block", "template", "list", "--area=footer", "--format=count"), "3")
}

func TestTemplateGet(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("block", "template", "get", "twentytwentyfour//single", "--field=title"), "Single Posts")

	stderr := env.fail("block", "template", "get", "twentytwentyfour//nope")
	env.equals(stderr, "Error: Block template 'twentytwentyfour//nope' not found.")
}

func TestTemplateExport_File(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("block", "template", "export", "twentytwentyfour//single", "--file=a/b/c.html")
	env.equals(out, "Success: Exported template to 'a/b/c.html'.")

	data, err := os.ReadFile(env.path("a", "b", "c.html"))
	require.NoError(t, err)
	assert.Equal(t, "<!-- wp:post-content /-->", string(data))
}

func TestTemplateExport_Dir(t *testing.T) {
	env := newTestEnv(t)

	env.run("block", "template", "export", "twentytwentyfour//header", "--type=wp_template_part", "--dir=parts")
	assert.FileExists(t, env.path("parts", "header.html"))
}

func TestTemplateExport_Stdout(t *testing.T) {
	env := newTestEnv(t)
	out := env.run("block", "template", "export", "twentytwentyfour//single", "--stdout")
	assert.Equal(t, "<!-- wp:post-content /-->", out)
}

func TestTemplateExport_Diff(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.path("single.html"), []byte("<!-- wp:paragraph /-->"), 0644))

	out := env.run("block", "template", "export", "twentytwentyfour//single", "--diff")
	assert.Contains(t, out, "wp:post-content")

	data, err := os.ReadFile(env.path("single.html"))
	require.NoError(t, err)
	assert.Equal(t, "<!-- wp:paragraph /-->", string(data), "diff must not write")
}

func TestTemplateExport_FileAndDir(t *testing.T) {
	env := newTestEnv(t)
	stderr := env.fail("block", "template", "export", "twentytwentyfour//single", "--file=x.html", "--dir=y")
	env.equals(stderr, "Error: The --file and --dir options are mutually exclusive.")
}
