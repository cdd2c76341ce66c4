package template_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpl-au/wpblock/internal/registry"
	"github.com/jpl-au/wpblock/internal/template"
	"github.com/jpl-au/wpblock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleContent = "<!-- wp:post-content /-->"

func TestExport_FileCreatesParents(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "a", "b", "c.html")

	res, err := template.Export(context.Background(), &bytes.Buffer{}, testutil.Site(t), "twentytwentyfour//single",
		template.ExportOptions{File: dst})
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.Equal(t, dst, res.Path)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, singleContent, string(data))
}

func TestExport_DirUsesSlug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "parts")

	res, err := template.Export(context.Background(), &bytes.Buffer{}, testutil.Site(t), "twentytwentyfour//footer",
		template.ExportOptions{Dir: dir, Type: registry.TemplateTypePart})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "footer.html"), res.Path)
	assert.FileExists(t, res.Path)
}

func TestExport_Stdout(t *testing.T) {
	var buf bytes.Buffer
	res, err := template.Export(context.Background(), &buf, testutil.Site(t), "twentytwentyfour//single",
		template.ExportOptions{Stdout: true})
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Equal(t, singleContent, buf.String())
}

func TestExport_FileAndDir(t *testing.T) {
	_, err := template.Export(context.Background(), &bytes.Buffer{}, nil, "x",
		template.ExportOptions{File: "a.html", Dir: "out"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, template.ErrFileAndDir))
	assert.Equal(t, "The --file and --dir options are mutually exclusive.", err.Error())
}

func TestExport_NotFound(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "x.html")
	_, err := template.Export(context.Background(), &bytes.Buffer{}, testutil.Site(t), "twentytwentyfour//missing",
		template.ExportOptions{File: dst})
	assert.EqualError(t, err, "Block template 'twentytwentyfour//missing' not found.")
	assert.NoFileExists(t, dst)
}

func TestExport_Diff(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "single.html")
	require.NoError(t, os.WriteFile(dst, []byte("<!-- wp:paragraph /-->\n"), 0644))

	var buf bytes.Buffer
	res, err := template.Export(context.Background(), &buf, testutil.Site(t), "twentytwentyfour//single",
		template.ExportOptions{File: dst, Diff: true})
	require.NoError(t, err)
	assert.False(t, res.Written)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "--- "+dst+"\n+++ twentytwentyfour//single\n"))
	assert.Contains(t, out, "- <!-- wp:paragraph /-->")
	assert.Contains(t, out, "+ "+singleContent)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<!-- wp:paragraph /-->\n", string(data), "diff must not write")
}

func TestExport_WriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := template.Export(context.Background(), &bytes.Buffer{}, testutil.Site(t), "twentytwentyfour//single",
		template.ExportOptions{File: filepath.Join(blocker, "sub", "x.html")})
	require.Error(t, err)
	var ee *template.ExportError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "Could not create directory '"+filepath.Join(blocker, "sub")+"'.", err.Error())
}
