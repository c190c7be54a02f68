package objmesh

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedVertex is returned for a v, vn or vt record with the wrong
	// number of fields or a field that is not a number.
	ErrMalformedVertex = errors.New("malformed vertex record")
	// ErrMalformedFace is returned for an f record that is not exactly three
	// v/t/n groups of positive integers.
	ErrMalformedFace = errors.New("malformed face record")
)

// ParseError reports the line that stopped parsing
type ParseError struct {
	Line int
	Tag  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Tag, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
