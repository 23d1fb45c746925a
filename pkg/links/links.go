// Package links renders free text with inline [text](url) links into escaped
// HTML. It never fails: malformed or unsafe spans stay literal text.
package links

import (
	"html/template"
	"strings"
)

// Render converts text into an HTML fragment. Everything that is not a valid
// link with a safe target is escaped verbatim.
func Render(text string) template.HTML {
	var b strings.Builder
	b.Grow(len(text))
	write(&b, text)
	return template.HTML(b.String()) //nolint:gosec
}

// write scans text from left to right, it never moves the cursor back behind
// something already emitted
func write(b *strings.Builder, text string) {
	i := 0
	for {
		rel := strings.IndexByte(text[i:], '[')
		if rel < 0 {
			break
		}
		start := i + rel
		b.WriteString(EscapeText(text[i:start]))

		relClose := strings.IndexByte(text[start+1:], ']')
		if relClose < 0 {
			b.WriteString(EscapeText(text[start:]))
			return
		}
		closeBracket := start + 1 + relClose
		openParen := closeBracket + 1
		if openParen >= len(text) || text[openParen] != '(' {
			b.WriteString(EscapeText(text[start : start+1]))
			i = start + 1
			continue
		}

		relParen := strings.IndexByte(text[openParen+1:], ')')
		if relParen < 0 {
			b.WriteString(EscapeText(text[start:]))
			return
		}
		closeParen := openParen + 1 + relParen

		label := text[start+1 : closeBracket]
		url := strings.TrimSpace(text[openParen+1 : closeParen])
		if strings.TrimSpace(label) == "" || !IsSafeURL(url) {
			b.WriteString(EscapeText(text[start : closeParen+1]))
			i = closeParen + 1
			continue
		}

		b.WriteString(`<a href="`)
		b.WriteString(EscapeAttr(url))
		b.WriteString(`">`)
		b.WriteString(EscapeText(label))
		b.WriteString(`</a>`)
		i = closeParen + 1
	}
	b.WriteString(EscapeText(text[i:]))
}
