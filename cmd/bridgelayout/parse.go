package main

import (
	"fmt"

	"github.com/wippyai/bridge/errors"
	"github.com/wippyai/bridge/layout"
)

// scalars maps leaf names to sizes. WIT spellings are accepted as aliases.
var scalars = map[string]struct {
	name string
	size int
}{
	"bool":  {"bool", 1},
	"u8":    {"u8", 1},
	"i8":    {"i8", 1},
	"s8":    {"i8", 1},
	"u16":   {"u16", 2},
	"i16":   {"i16", 2},
	"s16":   {"i16", 2},
	"u32":   {"u32", 4},
	"i32":   {"i32", 4},
	"s32":   {"i32", 4},
	"f32":   {"f32", 4},
	"char":  {"char", 4},
	"u64":   {"u64", 8},
	"i64":   {"i64", 8},
	"s64":   {"i64", 8},
	"f64":   {"f64", 8},
	"usize": {"usize", layout.PointerSize},
	"isize": {"isize", layout.PointerSize},
}

// parseExpr parses a composition expression:
//
//	expr    = scalar | "handle" | "option<" expr ">" | "(" [field {"," field}] ")"
//	field   = [ident ":"] expr
func parseExpr(src string) (layout.Node, error) {
	p := &parser{src: src}
	n, err := p.expr()
	if err != nil {
		return layout.Node{}, err
	}
	p.space()
	if p.pos < len(p.src) {
		return layout.Node{}, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return n, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) expr() (layout.Node, error) {
	p.space()
	if p.peek() == '(' {
		return p.product()
	}

	start := p.pos
	id := p.ident()
	switch id {
	case "":
		if p.pos >= len(p.src) {
			return layout.Node{}, p.errorf("unexpected end of input")
		}
		return layout.Node{}, p.errorf("unexpected %q", p.src[p.pos])
	case "option":
		if err := p.expect('<'); err != nil {
			return layout.Node{}, err
		}
		inner, err := p.expr()
		if err != nil {
			return layout.Node{}, err
		}
		if err := p.expect('>'); err != nil {
			return layout.Node{}, err
		}
		return layout.Optional(inner), nil
	case "handle", "own", "borrow":
		return layout.Handle(""), nil
	}

	s, ok := scalars[id]
	if !ok {
		p.pos = start
		return layout.Node{}, p.errorf("unknown type %q", id)
	}
	return layout.Leaf(s.name, s.size), nil
}

func (p *parser) product() (layout.Node, error) {
	p.pos++ // '('
	var fields []layout.Node

	p.space()
	if p.peek() == ')' {
		p.pos++
		return layout.Product(), nil
	}

	for {
		f, err := p.field()
		if err != nil {
			return layout.Node{}, err
		}
		fields = append(fields, f)

		p.space()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return layout.Product(fields...), nil
		default:
			return layout.Node{}, p.errorf("expected ',' or ')'")
		}
	}
}

func (p *parser) field() (layout.Node, error) {
	p.space()
	start := p.pos
	label := p.ident()
	p.space()
	if label != "" && p.peek() == ':' {
		p.pos++
		n, err := p.expr()
		if err != nil {
			return layout.Node{}, err
		}
		return n.WithLabel(label), nil
	}
	p.pos = start
	return p.expr()
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '_' || c == '-' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || p.pos > start && '0' <= c && c <= '9' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *parser) expect(c byte) error {
	p.space()
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) space() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Value(p.pos).
		Detail("column %d: %s", p.pos+1, fmt.Sprintf(format, args...)).
		Build()
}
