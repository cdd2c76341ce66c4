// Package blockparse reads serialised block markup: HTML with block
// delimiters of the form
//
//	<!-- wp:namespace/name {"attr":1} -->inner<!-- /wp:namespace/name -->
//	<!-- wp:name /-->
//
// A name without a namespace belongs to "core". Text outside any delimiter
// becomes a freeform block with an empty name.
package blockparse

import (
	"encoding/json"
	"strings"
)

// Block is one parsed block.
type Block struct {
	Name  string         // empty for freeform HTML
	Attrs map[string]any // nil when the delimiter has no attributes
	Inner []Block
	HTML  string // inner HTML with nested blocks removed
}

// token is one block delimiter.
type token struct {
	name   string
	attrs  map[string]any
	closer bool
	void   bool
	start  int // offset of "<!--"
	end    int // offset just past "-->"
}

// Parse returns the top-level blocks of content. Unbalanced delimiters never
// fail: an unclosed opener extends to the end of the content and a stray
// closer is dropped.
func Parse(content string) []Block {
	p := &parser{doc: content}
	return p.blocks()
}

// HasNamedBlock reports whether content contains at least one named block at
// the top level.
func HasNamedBlock(content string) bool {
	for _, b := range Parse(content) {
		if b.Name != "" {
			return true
		}
	}
	return false
}

type parser struct {
	doc string
	pos int
}

// blocks parses the top level. A stray closer is dropped.
func (p *parser) blocks() []Block {
	var out []Block
	for {
		tok, ok := next(p.doc, p.pos)
		if !ok {
			return appendFreeform(out, p.doc[p.pos:])
		}
		out = appendFreeform(out, p.doc[p.pos:tok.start])
		switch {
		case tok.closer:
			p.pos = tok.end
		case tok.void:
			out = append(out, Block{Name: tok.name, Attrs: tok.attrs})
			p.pos = tok.end
		default:
			inner, html := p.nested(tok)
			out = append(out, Block{Name: tok.name, Attrs: tok.attrs, Inner: inner, HTML: html})
		}
	}
}

// nested parses the body of an opener up to its closer and returns its inner
// blocks and the HTML between them. Closers for other names are dropped.
func (p *parser) nested(open token) ([]Block, string) {
	var (
		inner []Block
		html  strings.Builder
	)
	p.pos = open.end
	for {
		tok, ok := next(p.doc, p.pos)
		if !ok {
			html.WriteString(p.doc[p.pos:])
			p.pos = len(p.doc)
			return inner, html.String()
		}
		html.WriteString(p.doc[p.pos:tok.start])
		switch {
		case tok.closer:
			p.pos = tok.end
			if tok.name == open.name {
				return inner, html.String()
			}
		case tok.void:
			inner = append(inner, Block{Name: tok.name, Attrs: tok.attrs})
			p.pos = tok.end
		default:
			b, h := p.nested(tok)
			inner = append(inner, Block{Name: tok.name, Attrs: tok.attrs, Inner: b, HTML: h})
		}
	}
}

func appendFreeform(out []Block, s string) []Block {
	if strings.TrimSpace(s) == "" {
		return out
	}
	return append(out, Block{HTML: s})
}

// next finds the first block delimiter at or after pos.
func next(doc string, pos int) (token, bool) {
	for {
		i := strings.Index(doc[pos:], "<!--")
		if i < 0 {
			return token{}, false
		}
		start := pos + i
		j := strings.Index(doc[start+4:], "-->")
		if j < 0 {
			return token{}, false
		}
		end := start + 4 + j + 3
		if tok, ok := delimiter(doc[start+4 : end-3]); ok {
			tok.start, tok.end = start, end
			return tok, true
		}
		pos = start + 4
	}
}

// delimiter parses the body of an HTML comment as a block delimiter.
func delimiter(body string) (token, bool) {
	var tok token
	if body == "" || !isSpace(body[0]) {
		return tok, false
	}
	s := strings.TrimLeft(body, " \t\r\n")
	if strings.HasPrefix(s, "/") {
		tok.closer = true
		s = s[1:]
	}
	if !strings.HasPrefix(s, "wp:") {
		return tok, false
	}
	s = s[3:]

	n := 0
	for n < len(s) && isNameChar(s[n]) {
		n++
	}
	name := s[:n]
	if !validName(name) {
		return tok, false
	}
	if !strings.Contains(name, "/") {
		name = "core/" + name
	}
	tok.name = name

	s = s[n:]
	if s == "" || !isSpace(s[0]) {
		return tok, false
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "/") {
		tok.void = true
		s = strings.TrimSpace(s[:len(s)-1])
	}
	if s == "" {
		return tok, true
	}
	if tok.closer || s[0] != '{' {
		return tok, false
	}
	if err := json.Unmarshal([]byte(s), &tok.attrs); err != nil {
		return tok, false
	}
	return tok, true
}

// validName accepts "name" or "namespace/name", each part starting with a
// lowercase letter.
func validName(name string) bool {
	ns, local, found := strings.Cut(name, "/")
	if !found {
		local, ns = ns, ""
	} else if !validPart(ns) {
		return false
	}
	return validPart(local) && !strings.Contains(local, "/")
}

func validPart(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '-') {
			return false
		}
	}
	return true
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '-' || c == '/'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
