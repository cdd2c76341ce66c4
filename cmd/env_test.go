// The cmd/ package tests drive the built binary end to end: flag parsing,
// extension wiring, version gates, the snapshot registry backend and a
// SQLite WordPress database. Each test gets its own HOME and working
// directory so config and audit log never touch the real user files.

package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/wpblock/internal/testutil"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the wpblock binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "wpblock-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "wpblock"
		if os.PathSeparator == '\\' {
			binaryName = "wpblock.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		wd := mustGetwd()
		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = filepath.Dir(wd)
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t        *testing.T
	dir      string
	home     string
	binary   string
	snapshot string
}

// newTestEnv creates a temporary project with the fixture snapshot and an
// initialised SQLite database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	env := &testEnv{
		t:        t,
		dir:      dir,
		home:     t.TempDir(),
		binary:   buildBinary(t),
		snapshot: testutil.WriteSite(t, dir),
	}
	env.run("init")
	return env
}

// result is the outcome of one invocation.
type result struct {
	stdout string
	stderr string
	code   int
}

// exec runs wpblock with stdin and returns both streams and the exit code.
func (e *testEnv) exec(stdin string, args ...string) result {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"WPBLOCK_SNAPSHOT="+e.snapshot,
		"WPBLOCK_URL=",
		"WPBLOCK_DB=",
		"WPBLOCK_APP_PASSWORD=",
	)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := result{stdout: stdout.String(), stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		res.code = exitErr.ExitCode()
	case err != nil:
		e.t.Fatalf("wpblock %v: %v", args, err)
	}
	return res
}

// run executes wpblock, requires success and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	res := e.exec("", args...)
	require.Zero(e.t, res.code, "wpblock %v failed\nstdout: %s\nstderr: %s", args, res.stdout, res.stderr)
	return res.stdout
}

// runStdin executes wpblock with stdin, requires success and returns stdout.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	res := e.exec(input, args...)
	require.Zero(e.t, res.code, "wpblock %v failed\nstdout: %s\nstderr: %s", args, res.stdout, res.stderr)
	return res.stdout
}

// fail executes wpblock, requires exit code 1 and returns stderr.
func (e *testEnv) fail(args ...string) string {
	e.t.Helper()
	res := e.exec("", args...)
	require.Equal(e.t, 1, res.code, "wpblock %v should fail\nstdout: %s\nstderr: %s", args, res.stdout, res.stderr)
	return res.stderr
}

// equals checks output against expected, ignoring surrounding whitespace.
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// path returns a path inside the project directory.
func (e *testEnv) path(parts ...string) string {
	return filepath.Join(append([]string{e.dir}, parts...)...)
}
