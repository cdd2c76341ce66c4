package diff

import (
	"strings"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		want    string
		changed bool
	}{
		{
			name:    "identical",
			old:     "a\nb\n",
			new:     "a\nb\n",
			want:    "  a\n  b\n",
			changed: false,
		},
		{
			name:    "new file",
			old:     "",
			new:     "<!-- wp:post-content /-->\n",
			want:    "+ <!-- wp:post-content /-->\n",
			changed: true,
		},
		{
			name:    "replaced line",
			old:     "a\nb\nc\n",
			new:     "a\nx\nc\n",
			want:    "  a\n- b\n+ x\n  c\n",
			changed: true,
		},
		{
			name:    "long equal run collapses",
			old:     "1\n2\n3\n4\n5\n6\n7\n8\n",
			new:     "1\n2\n3\n4\n5\n6\n7\n8\n9\n",
			want:    "  1\n  2\n  3\n  ...\n  6\n  7\n  8\n+ 9\n",
			changed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compute(tt.old, tt.new, "a.html", "template")
			if r.Diff != tt.want {
				t.Errorf("Compute diff = %q, want %q", r.Diff, tt.want)
			}
			if r.Changed() != tt.changed {
				t.Errorf("Changed() = %v, want %v", r.Changed(), tt.changed)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	r := Compute("a\n", "b\n", "old.html", "twentytwentyfour//index")

	plain := r.Format(false)
	if !strings.HasPrefix(plain, "--- old.html\n+++ twentytwentyfour//index\n") {
		t.Errorf("missing header: %q", plain)
	}
	if strings.Contains(plain, "\033[") {
		t.Errorf("plain output contains escape codes: %q", plain)
	}

	coloured := r.Format(true)
	if !strings.Contains(coloured, "\033[31m- a\033[0m") {
		t.Errorf("removed line not red: %q", coloured)
	}
	if !strings.Contains(coloured, "\033[32m+ b\033[0m") {
		t.Errorf("added line not green: %q", coloured)
	}
}
