package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/token"
)

type snbtParser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func parseSNBT(d []byte, opts *parseOpts) (*ir.Node, error) {
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	p := &snbtParser{toks: toks, opts: opts}
	res, err := p.value(1)
	if err != nil {
		return nil, err
	}
	if p.i != len(toks) {
		return nil, p.unexpected(&toks[p.i])
	}
	return res, nil
}

func (p *snbtParser) next() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	t := &p.toks[p.i]
	p.i++
	return t
}

func (p *snbtParser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *snbtParser) unexpected(t *token.Token) error {
	if t == nil {
		return fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	return fmt.Errorf("%w: %w", ErrParse, token.UnexpectedErr(string(t.Bytes), t.Pos))
}

func (p *snbtParser) value(depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w: %w: depth exceeds %d", ErrParse, ir.ErrTooDeep, p.opts.maxDepth)
	}
	t := p.next()
	if t == nil {
		return nil, p.unexpected(nil)
	}
	switch t.Type {
	case token.TLCurl:
		return p.compound(depth)
	case token.TLSquare:
		return p.list(depth)
	case token.TString:
		return ir.FromString(t.String()), nil
	case token.TLiteral:
		return literal(string(t.Bytes)), nil
	}
	return nil, p.unexpected(t)
}

func (p *snbtParser) compound(depth int) (*ir.Node, error) {
	res := ir.NewCompound()
	for {
		t := p.next()
		if t == nil {
			return nil, p.unexpected(nil)
		}
		if t.Type == token.TRCurl {
			return res, nil
		}
		if t.Type != token.TLiteral && t.Type != token.TString {
			return nil, p.unexpected(t)
		}
		key := t.String()
		if c := p.next(); c == nil || c.Type != token.TColon {
			return nil, p.unexpected(c)
		}
		v, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		res.Set(key, v)
		if err := p.separator(token.TRCurl); err != nil {
			return nil, err
		}
	}
}

// separator consumes a comma, or leaves the closing token in place.
func (p *snbtParser) separator(closing token.TokenType) error {
	t := p.peek()
	switch {
	case t == nil:
		return p.unexpected(nil)
	case t.Type == token.TComma:
		p.i++
		return nil
	case t.Type == closing:
		return nil
	}
	return p.unexpected(t)
}

func (p *snbtParser) list(depth int) (*ir.Node, error) {
	res := ir.NewList()
	var width *ir.Width
	if p.i+1 < len(p.toks) && p.toks[p.i].Type == token.TLiteral && p.toks[p.i+1].Type == token.TSemi {
		w, ok := map[string]ir.Width{"B": ir.ByteWidth, "I": ir.IntWidth, "L": ir.LongWidth}[string(p.toks[p.i].Bytes)]
		if !ok {
			return nil, p.unexpected(&p.toks[p.i])
		}
		width = &w
		p.i += 2
	}
	for {
		t := p.peek()
		if t == nil {
			return nil, p.unexpected(nil)
		}
		if t.Type == token.TRSquare {
			p.i++
			return res, nil
		}
		v, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if width != nil {
			if v.Type != ir.NumberType || v.Width.IsFloat() {
				return nil, fmt.Errorf("%w: %s: %s array holds a non integer", ErrParse, t.Pos, width)
			}
			v = v.Retype(*width)
		}
		res.Values = append(res.Values, v)
		if err := p.separator(token.TRSquare); err != nil {
			return nil, err
		}
	}
}

// literal reads a bare word as a number, a boolean or a string.
func literal(s string) *ir.Node {
	switch s {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if y := number(s); y != nil {
		return y
	}
	return ir.FromString(s)
}

func number(s string) *ir.Node {
	if s == "" {
		return nil
	}
	body, w, suffixed := s, ir.IntWidth, false
	switch s[len(s)-1] {
	case 'b', 'B':
		w, suffixed = ir.ByteWidth, true
	case 's', 'S':
		w, suffixed = ir.ShortWidth, true
	case 'l', 'L':
		w, suffixed = ir.LongWidth, true
	case 'f', 'F':
		w, suffixed = ir.FloatWidth, true
	case 'd', 'D':
		w, suffixed = ir.DoubleWidth, true
	}
	if suffixed {
		body = s[:len(s)-1]
	}
	if !numeric(body) {
		return nil
	}
	if i, err := strconv.ParseInt(body, 10, 64); err == nil {
		if !suffixed && (i < -1<<31 || i > 1<<31-1) {
			w = ir.LongWidth
		}
		if !w.IsFloat() && !fits(w, i) {
			return nil
		}
		return ir.FromInteger(w, i)
	}
	f, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return nil
	}
	switch {
	case !suffixed:
		w = ir.DoubleWidth
	case !w.IsFloat():
		return nil
	}
	return ir.FromReal(w, f)
}

// numeric rejects words strconv would read as numbers but SNBT does not,
// such as "inf", "NaN" and hex or underscore forms.
func numeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" || s[0] == '.' && len(s) == 1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('0' <= c && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			continue
		}
		return false
	}
	return s[0] != 'e' && s[0] != 'E'
}

func fits(w ir.Width, i int64) bool {
	switch w {
	case ir.ByteWidth:
		return -1<<7 <= i && i <= 1<<7-1
	case ir.ShortWidth:
		return -1<<15 <= i && i <= 1<<15-1
	case ir.IntWidth:
		return -1<<31 <= i && i <= 1<<31-1
	}
	return true
}
