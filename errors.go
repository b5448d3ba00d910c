package cssinline

import (
	"errors"
	"fmt"
)

// DocumentError is returned if the input document cannot be processed at
// all, i.e. it is missing or cannot be parsed as HTML.
type DocumentError struct {
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("cannot inline styles of document: %v", e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// ErrNilDocument is wrapped by a DocumentError if Inline is called without
// a document.
var ErrNilDocument = errors.New("nil document")
