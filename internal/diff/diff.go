// Package diff renders line diffs between the file on disk and the content
// that would replace it.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines kept around each change.
// Longer unchanged runs collapse to "...".
const contextLines = 3

// Result holds a computed diff.
type Result struct {
	Old  string // label of the current content
	New  string // label of the replacement
	Diff string // uncoloured diff body
}

// Changed reports whether the two sides differ. Equal content yields only
// context lines, so a prefix scan is enough.
func (r Result) Changed() bool {
	for _, l := range strings.Split(r.Diff, "\n") {
		if strings.HasPrefix(l, "- ") || strings.HasPrefix(l, "+ ") {
			return true
		}
	}
	return false
}

// Compute returns a line diff between oldContent and newContent.
//
// Lines are mapped to runes before diffing so diffmatchpatch compares whole
// lines; a character diff of template markup splits block comments mid-tag.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, lines)

	return Result{
		Old:  oldLabel,
		New:  newLabel,
		Diff: format(d),
	}
}

func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			if len(lines) <= 2*contextLines {
				for _, l := range lines {
					b.WriteString("  " + l + "\n")
				}
				continue
			}
			for _, l := range lines[:contextLines] {
				b.WriteString("  " + l + "\n")
			}
			b.WriteString("  ...\n")
			for _, l := range lines[len(lines)-contextLines:] {
				b.WriteString("  " + l + "\n")
			}
		}
	}
	return b.String()
}

// Colourise marks removed lines red and added lines green.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the diff with a ---/+++ header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
