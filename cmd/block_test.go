package cmd

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/wpblock/internal/testutil"
)

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestTypeList(t *testing.T) {
	env := newTestEnv(t)

	count, err := strconv.Atoi(strings.TrimSpace(env.run("block", "type", "list", "--format=count")))
	require.NoError(t, err)
	ids := strings.Fields(env.run("block", "type", "list", "--format=ids"))
	assert.Equal(t, count, len(ids))

	got := lines(env.run("block", "type", "list", "--namespace=core", "--field=name"))
	want := []string{"core/paragraph", "core/latest-posts", "core/image"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("core block types (-want +got):\n%s", diff)
	}

	env.equals(env.run("block", "type", "list", "--dynamic", "--format=ids"), "core/latest-posts acme/hero")
	env.equals(env.run("block", "type", "list", "--static", "--format=count"), "2")
}

func TestTypeList_DynamicAndStatic(t *testing.T) {
	env := newTestEnv(t)
	stderr := env.fail("block", "type", "list", "--dynamic", "--static")
	env.equals(stderr, "Error: --dynamic and --static are mutually exclusive.")
}

func TestTypeList_Formats(t *testing.T) {
	env := newTestEnv(t)

	csv := env.run("block", "type", "list", "--namespace=acme", "--format=csv", "--fields=name,is_dynamic")
	env.equals(csv, "name,is_dynamic\nacme/hero,true")

	assert.Contains(t, env.run("block", "type", "list", "--format=json"), `"name":"core/paragraph"`)
	assert.Contains(t, env.run("block", "type", "list", "--format=yaml"), "name: core/paragraph")
	assert.Contains(t, env.run("block", "type", "list"), "core/paragraph")
}

func TestInvalidField(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.fail("block", "type", "list", "--field=nope"), "Error: Invalid field: nope.")
	env.equals(env.fail("block", "type", "get", "core/paragraph", "--fields=name,nope"), "Error: Invalid field: nope.")
}

func TestTypeGet(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("block", "type", "get", "core/paragraph", "--field=title"), "Paragraph")
	assert.Contains(t, env.run("block", "type", "get", "core/paragraph", "--format=json"), `"anchor":true`)

	stderr := env.fail("block", "type", "get", "core/nope")
	assert.Contains(t, stderr, "core/nope")
}

func TestTypeExists(t *testing.T) {
	env := newTestEnv(t)

	res := env.exec("", "block", "type", "exists", "core/paragraph")
	assert.Equal(t, 0, res.code)
	env.equals(res.stdout, "Success: Block type 'core/paragraph' is registered.")

	res = env.exec("", "block", "type", "exists", "core/nope")
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Empty(t, res.stderr)
}

func TestVersionGate(t *testing.T) {
	env := newTestEnv(t)
	old := bytes.Replace(testutil.SiteYAML, []byte(`wordpress: "6.5.3"`), []byte(`wordpress: "6.4.2"`), 1)
	require.NoError(t, os.WriteFile(env.path("old.yaml"), old, 0644))

	stderr := env.fail("block", "binding", "list", "--snapshot", env.path("old.yaml"))
	env.equals(stderr, "Error: Requires WordPress 6.5 or greater.")

	// usage errors are reported before the gate
	stderr = env.fail("block", "binding", "list", "--snapshot", env.path("old.yaml"), "--field=nope")
	env.equals(stderr, "Error: Invalid field: nope.")

	env.equals(env.run("block", "style", "list", "--snapshot", env.path("old.yaml"), "--format=count"), "4")
}

func TestPatterns(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("block", "pattern", "list", "--category=featured", "--field=name"), "acme/hero-banner")
	assert.Contains(t, env.run("block", "pattern", "get", "acme/hero-banner", "--field=content"), "wp-block-cover")
	env.equals(env.run("block", "pattern-category", "list", "--format=ids"), "featured banner call-to-action")
}

func TestStyles(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("block", "style", "list", "--block=core/button", "--field=name"), "fill\noutline")
	env.equals(env.run("block", "style", "get", "core/quote", "plain", "--field=style_handle"), "quote-plain")
}

func TestBindings(t *testing.T) {
	env := newTestEnv(t)
	env.equals(env.run("block", "binding", "list", "--format=ids"), "core/post-meta core/pattern-overrides")
}
