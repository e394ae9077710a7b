package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrUnexpected   = errors.New("unexpected character")
)

type TokenizeErr struct {
	Err error
	Pos *Pos
}

func NewTokenizeErr(err error, pos *Pos) *TokenizeErr {
	return &TokenizeErr{Err: err, Pos: pos}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func UnexpectedErr(what string, pos *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %q", ErrUnexpected, what), pos)
}
