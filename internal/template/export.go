// export.go writes a template's content to stdout, a named file or
// <dir>/<slug>.html, or previews the change as a diff.

package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/jpl-au/wpblock/internal/diff"
	"github.com/jpl-au/wpblock/internal/registry"
)

// ErrFileAndDir is returned when both --file and --dir are given.
var ErrFileAndDir = errors.New("The --file and --dir options are mutually exclusive.")

// ExportOptions configures Export.
type ExportOptions struct {
	Type   string
	File   string // explicit output path; parent directories are created
	Dir    string // output directory for <slug>.html (default ".")
	Stdout bool   // write content to w instead of a file
	Diff   bool   // print a diff against the target file instead of writing
	Colour bool   // colour the diff
}

// Validate rejects contradictory flags.
func (o ExportOptions) Validate() error {
	if o.File != "" && o.Dir != "" {
		return ErrFileAndDir
	}
	return nil
}

// ExportResult describes what Export did.
type ExportResult struct {
	Path    string // file written or compared; empty for stdout
	Written bool
}

// Export resolves the template and writes its content verbatim.
func Export(ctx context.Context, w io.Writer, src registry.TemplateSource, id string, opts ExportOptions) (ExportResult, error) {
	var res ExportResult
	if err := opts.Validate(); err != nil {
		return res, err
	}
	t, err := Get(ctx, src, id, opts.Type)
	if err != nil {
		return res, err
	}
	content := string(t.Content)

	// Content goes out byte for byte; no trailing newline is added.
	if opts.Stdout {
		_, err := io.WriteString(w, content)
		return res, err
	}

	res.Path = target(t, opts)
	if opts.Diff {
		// A missing file diffs as empty: the preview shows a pure add.
		current, err := os.ReadFile(res.Path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return res, &ExportError{Msg: fmt.Sprintf("Failed to read file '%s'.", res.Path), Err: err}
		}
		r := diff.Compute(string(current), content, res.Path, t.ID)
		_, err = fmt.Fprint(w, r.Format(opts.Colour))
		return res, err
	}

	dir := filepath.Dir(res.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return res, &ExportError{Msg: fmt.Sprintf("Could not create directory '%s'.", dir), Err: err}
	}
	// Atomic so an editor or theme watcher never sees a half-written file.
	if err := atomic.WriteFile(res.Path, strings.NewReader(content)); err != nil {
		return res, &ExportError{Msg: fmt.Sprintf("Failed to write to '%s'.", res.Path), Err: err}
	}
	res.Written = true
	return res, nil
}

// target returns the output path for t.
func target(t registry.Template, opts ExportOptions) string {
	if opts.File != "" {
		return opts.File
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, t.Slug+".html")
}

// ExportError carries a user-facing message and the underlying I/O error.
type ExportError struct {
	Msg string
	Err error
}

func (e *ExportError) Error() string { return e.Msg }

func (e *ExportError) Unwrap() error { return e.Err }
