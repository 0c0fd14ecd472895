package tmpl

import "strings"

type tokenKind int

const (
	tokText tokenKind = iota
	tokVar
	tokBlock
)

type token struct {
	kind tokenKind
	val  string
	line int
}

const (
	varOpen    = "{{"
	varClose   = "}}"
	blockOpen  = "{%"
	blockClose = "%}"
)

// lex splits src into text, variable and block tokens. Tag contents are
// trimmed of surrounding whitespace.
func lex(name, src string, opts options) ([]token, error) {
	var tokens []token

	pos := 0
	line := 1

	for pos < len(src) {
		start, isBlock := nextTag(src, pos)
		if start < 0 {
			tokens = append(tokens, token{kind: tokText, val: src[pos:], line: line})
			break
		}

		text := src[pos:start]
		textLine := line
		line += strings.Count(text, "\n")

		if isBlock && opts.lstripBlocks {
			text = lstripTail(text, pos == 0 || src[pos-1] == '\n')
		}

		if text != "" {
			tokens = append(tokens, token{kind: tokText, val: text, line: textLine})
		}

		closeDelim := varClose
		kind := tokVar

		if isBlock {
			closeDelim = blockClose
			kind = tokBlock
		}

		end := strings.Index(src[start+2:], closeDelim)
		if end < 0 {
			return nil, &TemplateSyntaxError{
				Template:  name,
				Directive: excerpt(src[start:]),
				Line:      line,
				Reason:    "unterminated tag",
			}
		}

		end += start + 2
		inner := src[start+2 : end]

		tokens = append(tokens, token{kind: kind, val: strings.TrimSpace(inner), line: line})
		line += strings.Count(inner, "\n")
		pos = end + 2

		if isBlock && opts.trimBlocks && pos < len(src) && src[pos] == '\n' {
			pos++
			line++
		}
	}

	return tokens, nil
}

// nextTag returns the index of the next tag opener at or after pos.
func nextTag(src string, pos int) (int, bool) {
	v := strings.Index(src[pos:], varOpen)
	b := strings.Index(src[pos:], blockOpen)

	switch {
	case v < 0 && b < 0:
		return -1, false
	case v < 0:
		return pos + b, true
	case b < 0:
		return pos + v, false
	case b < v:
		return pos + b, true
	default:
		return pos + v, false
	}
}

// lstripTail removes spaces and tabs between the last line start in text and
// the end of text. atLineStart reports whether text itself begins a line.
func lstripTail(text string, atLineStart bool) string {
	cut := strings.LastIndexByte(text, '\n') + 1
	if cut == 0 && !atLineStart {
		return text
	}

	if strings.TrimLeft(text[cut:], " \t") != "" {
		return text
	}

	return text[:cut]
}

func excerpt(s string) string {
	const limit = 32

	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}

	if len(s) > limit {
		return s[:limit] + "..."
	}

	return s
}
