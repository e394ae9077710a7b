package gomap

import "fmt"

// UnmarshalError reports a value that cannot be read into its Go
// destination.
type UnmarshalError struct {
	FieldPath string // e.g. "inputs.base.items[0]"
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("unmarshal error: %s", msg)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}
