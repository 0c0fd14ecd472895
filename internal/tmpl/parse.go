package tmpl

import (
	"strings"
)

type node interface {
	isNode()
}

type textNode struct {
	text string
}

type varNode struct {
	expr string
	path []string
	line int
}

type forNode struct {
	header   string
	varName  string
	collExpr string
	coll     []string
	body     []node
	line     int
}

func (textNode) isNode() {}
func (varNode) isNode()  {}
func (forNode) isNode()  {}

type parser struct {
	name   string
	tokens []token
	pos    int
}

// parse builds the node tree. open is the enclosing for tag, or nil at the top
// level.
func (p *parser) parse(open *token) ([]node, error) {
	var nodes []node

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		p.pos++

		switch tok.kind {
		case tokText:
			nodes = append(nodes, textNode{text: tok.val})
		case tokVar:
			path, err := p.parsePath(tok.val, tok)
			if err != nil {
				return nil, err
			}

			nodes = append(nodes, varNode{expr: tok.val, path: path, line: tok.line})
		case tokBlock:
			fields := strings.Fields(tok.val)
			if len(fields) == 0 {
				return nil, p.syntaxError(tok, "empty directive")
			}

			switch fields[0] {
			case "for":
				n, err := p.parseFor(tok, fields)
				if err != nil {
					return nil, err
				}

				nodes = append(nodes, n)
			case "endfor":
				if len(fields) != 1 {
					return nil, p.syntaxError(tok, "endfor takes no arguments")
				}

				if open == nil {
					return nil, p.syntaxError(tok, "endfor without matching for")
				}

				return nodes, nil
			default:
				return nil, p.syntaxError(tok, "unknown directive")
			}
		}
	}

	if open != nil {
		return nil, p.syntaxError(*open, "for without matching endfor")
	}

	return nodes, nil
}

func (p *parser) parseFor(tok token, fields []string) (forNode, error) {
	if len(fields) != 4 || fields[2] != "in" {
		return forNode{}, p.syntaxError(tok, "expected 'for NAME in EXPR'")
	}

	if !isIdent(fields[1]) {
		return forNode{}, p.syntaxError(tok, "invalid loop variable")
	}

	coll, err := p.parsePath(fields[3], tok)
	if err != nil {
		return forNode{}, err
	}

	body, err := p.parse(&tok)
	if err != nil {
		return forNode{}, err
	}

	return forNode{
		header:   tok.val,
		varName:  fields[1],
		collExpr: fields[3],
		coll:     coll,
		body:     body,
		line:     tok.line,
	}, nil
}

// parsePath validates a dotted identifier path such as var.property_name.
func (p *parser) parsePath(expr string, tok token) ([]string, error) {
	if expr == "" {
		return nil, p.syntaxError(tok, "empty expression")
	}

	path := strings.Split(expr, ".")
	for _, seg := range path {
		if !isIdent(seg) {
			return nil, p.syntaxError(tok, "invalid expression")
		}
	}

	return path, nil
}

func (p *parser) syntaxError(tok token, reason string) *TemplateSyntaxError {
	directive := tok.val
	if tok.kind == tokBlock {
		directive = blockOpen + " " + tok.val + " " + blockClose
	} else if tok.kind == tokVar {
		directive = varOpen + " " + tok.val + " " + varClose
	}

	return &TemplateSyntaxError{
		Template:  p.name,
		Directive: directive,
		Line:      tok.line,
		Reason:    reason,
	}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
