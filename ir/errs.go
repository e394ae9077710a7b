package ir

import (
	"errors"
	"fmt"
)

// MaxDepth bounds the nesting of trees accepted by parsers and template
// compilation.
const MaxDepth = 512

var (
	ErrPath    = errors.New("path resolution")
	ErrTooDeep = errors.New("tree too deep")
)

// PathError reports a path that cannot be resolved for writing in Tree.
type PathError struct {
	Path   string
	Tree   *Node
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrPath, e.Path, e.Reason)
}

func (e *PathError) Unwrap() error {
	return ErrPath
}

// CheckDepth returns an error wrapping ErrTooDeep if y nests deeper
// than max.
func CheckDepth(y *Node, max int) error {
	if d := y.Depth(); d > max {
		return fmt.Errorf("%w: depth %d exceeds %d", ErrTooDeep, d, max)
	}
	return nil
}
