package token

import "unicode/utf8"

// Tokenize splits stringified tree text into tokens. Whitespace
// separates tokens and is otherwise ignored.
func Tokenize(d []byte) ([]Token, error) {
	if !utf8.Valid(d) {
		return nil, ErrBadUTF8
	}
	posDoc := NewPosDoc(d)
	var toks []Token
	i, n := 0, len(d)
	for i < n {
		c := d[i]
		var tt TokenType
		switch c {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		case '{':
			tt = TLCurl
		case '}':
			tt = TRCurl
		case '[':
			tt = TLSquare
		case ']':
			tt = TRSquare
		case ',':
			tt = TComma
		case ':':
			tt = TColon
		case ';':
			tt = TSemi
		case '"', '\'':
			sz, err := QuotedLen(d[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			toks = append(toks, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: d[i : i+sz]})
			i += sz
			continue
		default:
			if !IsBareByte(c) {
				r, _ := utf8.DecodeRune(d[i:])
				return nil, UnexpectedErr(string(r), posDoc.Pos(i))
			}
			j := i + 1
			for j < n && IsBareByte(d[j]) {
				j++
			}
			toks = append(toks, Token{Type: TLiteral, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
			continue
		}
		toks = append(toks, Token{Type: tt, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
		i++
	}
	return toks, nil
}
