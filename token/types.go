package token

import "fmt"

type TokenType int

const (
	TLiteral TokenType = iota
	TString
	TColon
	TSemi
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLiteral: "TLiteral",
		TString:  "TString",
		TColon:   "TColon",
		TSemi:    "TSemi",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the text of the token, unquoted for TString.
func (t *Token) String() string {
	if t.Type == TString {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}
