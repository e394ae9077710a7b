package token

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// IsBareByte reports whether c may appear in an unquoted word.
func IsBareByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '-', '.', '+':
		return true
	}
	return false
}

// NeedsQuote reports whether v must be quoted to be read back as the
// same key.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for i := 0; i < len(v); i++ {
		if !IsBareByte(v[i]) {
			return true
		}
	}
	return false
}

// KPathQuoteField returns true if a field name needs to be quoted in a
// path: it needs quoting as a key or contains path syntax.
func KPathQuoteField(v string) bool {
	return NeedsQuote(v) || strings.ContainsAny(v, ".[]")
}

// Quote returns v in double quotes with backslash escapes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 {
				d = append(d, []byte(`\u`+leftPad(strconv.FormatInt(int64(r), 16), 4))...)
				continue
			}
			d = utf8.AppendRune(d, r)
		}
	}
	return string(append(d, '"'))
}

func leftPad(s string, n int) string {
	for len(s) < n {
		s = "0" + s
	}
	return s
}

// QuotedLen returns the length of the quoted string starting at d[0],
// closing quote included.
func QuotedLen(d []byte) (int, error) {
	if len(d) == 0 || (d[0] != '"' && d[0] != '\'') {
		return 0, ErrUnterminated
	}
	q := d[0]
	escaped := false
	for i := 1; i < len(d); i++ {
		c := d[i]
		switch {
		case escaped:
			if !isEscapable(c) {
				return 0, ErrBadEscape
			}
			escaped = false
		case c == '\\':
			escaped = true
		case c == q:
			return i + 1, nil
		}
	}
	return 0, ErrUnterminated
}

func isEscapable(c byte) bool {
	switch c {
	case '"', '\'', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	}
	return false
}

// QuotedToString unquotes a single or double quoted string. The input
// is expected to have passed QuotedLen.
func QuotedToString(d []byte) string {
	if len(d) < 2 {
		return ""
	}
	d = d[1 : len(d)-1]
	var b strings.Builder
	b.Grow(len(d))
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c != '\\' || i+1 == len(d) {
			b.WriteByte(c)
			continue
		}
		i++
		switch d[i] {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+5 <= len(d) {
				if r, err := strconv.ParseUint(string(d[i+1:i+5]), 16, 32); err == nil {
					b.WriteRune(rune(r))
					i += 4
					continue
				}
			}
			b.WriteByte('u')
		default:
			b.WriteByte(d[i])
		}
	}
	return b.String()
}
