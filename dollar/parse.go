package dollar

import (
	"fmt"
	"strings"

	"github.com/signadot/nbtc/ir/kpath"
	"github.com/signadot/nbtc/parse"
	"github.com/signadot/nbtc/token"
)

var casts = map[string]bool{
	"byte":   true,
	"short":  true,
	"int":    true,
	"long":   true,
	"float":  true,
	"double": true,
	"string": true,
	"bool":   true,
}

// parseLeaf parses the text of a string leaf. It returns nil without an
// error for plain text.
func parseLeaf(src string) (*Dollar, error) {
	s := strings.TrimSpace(src)
	if !strings.HasPrefix(s, Sigil) || s == Reserved || strings.HasPrefix(s, "$$") {
		if hasExpr(src) {
			return parseText(src)
		}
		return nil, nil
	}
	switch {
	case len(s) > 1 && s[1] == '[':
		code, n, err := scanExpr(s, 2)
		if err != nil {
			return nil, err
		}
		rest := strings.TrimSpace(s[n:])
		if rest != "" && !isDirective(rest) {
			return parseText(src)
		}
		d := &Dollar{Source: src, Kind: ExprKind, Code: code}
		if d.program, err = compileExpr(code); err != nil {
			return nil, err
		}
		if err := parseDirectives(d, rest); err != nil {
			return nil, err
		}
		return d, nil
	case len(s) > 1 && isNameStart(s[1]):
		return parseRef(src, s)
	}
	if hasExpr(src) {
		return parseText(src)
	}
	return nil, nil
}

func parseRef(src, s string) (*Dollar, error) {
	i := 2
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	d := &Dollar{Source: src, Kind: RefKind, Ref: s[1:i]}
	j, err := scanPath(s, i)
	if err != nil {
		return nil, err
	}
	if j > i {
		p := s[i:j]
		if p[0] != '.' && p[0] != '[' {
			return nil, fmt.Errorf("%w: expected '.' or '[' after $%s, got %q", ErrSyntax, d.Ref, p)
		}
		if p == "." {
			return nil, fmt.Errorf("%w: expected field after $%s.", ErrSyntax, d.Ref)
		}
		d.Path, err = kpath.Parse(strings.TrimPrefix(p, "."))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
	}
	if err := parseDirectives(d, strings.TrimSpace(s[j:])); err != nil {
		return nil, err
	}
	return d, nil
}

// scanPath returns the end of the path text starting at i: the first
// space or '?' outside quotes.
func scanPath(s string, i int) (int, error) {
	var quote byte
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ' ' || c == '\t' || c == '\n' || c == '?':
			return i, nil
		}
	}
	if quote != 0 {
		return 0, fmt.Errorf("%w: unterminated quote in path", ErrSyntax)
	}
	return i, nil
}

// scanExpr scans the expr-lang code of "$[" ... "]" starting after the
// opening bracket. Nested brackets and quoted strings are skipped. It
// returns the code and the offset just past the closing bracket.
func scanExpr(s string, i int) (string, int, error) {
	start, depth := i, 0
	var quote byte
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			if depth == 0 {
				code := strings.TrimSpace(s[start:i])
				if code == "" {
					return "", 0, fmt.Errorf("%w: empty $[]", ErrSyntax)
				}
				return code, i + 1, nil
			}
			depth--
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated $[", ErrSyntax)
}

func isDirective(rest string) bool {
	return strings.HasPrefix(rest, "??") || strings.HasPrefix(rest, "as ")
}

// parseDirectives reads "?? <literal>" and "as <cast>" from the text
// following an expression. The fallback literal is a single SNBT value
// and a cast may only follow it.
func parseDirectives(d *Dollar, rest string) error {
	if rest == "" {
		return nil
	}
	src := rest
	lit, hasFallback := strings.CutPrefix(rest, "??")
	if hasFallback {
		src = lit
	}
	toks, err := token.Tokenize([]byte(src))
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrSyntax, rest, err)
	}
	if hasFallback {
		n, err := valueLen(toks)
		if err != nil {
			return err
		}
		last := toks[n-1]
		lit = strings.TrimSpace(src[:last.Pos.I+len(last.Bytes)])
		fb, err := parse.ParseString(lit)
		if err != nil {
			return fmt.Errorf("%w: fallback %q: %w", ErrSyntax, lit, err)
		}
		d.Fallback = fb
		toks = toks[n:]
	}
	switch {
	case len(toks) == 0:
		return nil
	case len(toks) == 2 && toks[0].Type == token.TLiteral && toks[0].String() == "as":
		cast := toks[1].String()
		if toks[1].Type != token.TLiteral || !casts[cast] {
			return fmt.Errorf("%w: unknown cast %q", ErrSyntax, cast)
		}
		d.Cast = cast
		return nil
	}
	return fmt.Errorf("%w: unexpected %q", ErrSyntax, src[toks[0].Pos.I:])
}

// valueLen returns the number of tokens making up the first value of
// toks.
func valueLen(toks []token.Token) (int, error) {
	if len(toks) == 0 {
		return 0, fmt.Errorf("%w: missing fallback after ??", ErrSyntax)
	}
	switch toks[0].Type {
	case token.TLiteral, token.TString:
		return 1, nil
	case token.TLCurl, token.TLSquare:
	default:
		return 0, fmt.Errorf("%w: unexpected %q in fallback", ErrSyntax, toks[0].Bytes)
	}
	depth := 0
	for i := range toks {
		switch toks[i].Type {
		case token.TLCurl, token.TLSquare:
			depth++
		case token.TRCurl, token.TRSquare:
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unterminated fallback", ErrSyntax)
}

// hasExpr reports whether s holds an unescaped "$[".
func hasExpr(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] != '$' {
			continue
		}
		if s[i+1] == '$' {
			i++
			continue
		}
		if s[i+1] == '[' {
			return true
		}
	}
	return false
}

// parseText splits an interpolated string into literal text and
// programs. "$$" writes a single "$".
func parseText(src string) (*Dollar, error) {
	d := &Dollar{Source: src, Kind: TextKind}
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			d.parts = append(d.parts, part{text: text.String()})
			text.Reset()
		}
	}
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c != '$' || i+1 == len(src) {
			text.WriteByte(c)
			continue
		}
		switch src[i+1] {
		case '$':
			text.WriteByte('$')
			i++
		case '[':
			code, n, err := scanExpr(src, i+2)
			if err != nil {
				return nil, err
			}
			prog, err := compileExpr(code)
			if err != nil {
				return nil, err
			}
			flush()
			d.parts = append(d.parts, part{code: code, program: prog})
			i = n - 1
		default:
			text.WriteByte(c)
		}
	}
	flush()
	return d, nil
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isNameStart(c) || ('0' <= c && c <= '9')
}
