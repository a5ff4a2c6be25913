package client

import (
	"fmt"

	"github.com/lzjever/chimpgate/internal/catalog"
	"github.com/lzjever/chimpgate/internal/core"
)

// TransportError means no usable answer came back: the connection failed,
// the context ended, or the body could not be read.
type TransportError struct {
	API catalog.API
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to connect to the %s endpoint: %v", e.API.Title(), e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{core.ErrUnreachable, e.Err} }

// DecodeError means the remote answered with something that is not the JSON
// it promised. Body holds the raw answer for diagnostics.
type DecodeError struct {
	API    catalog.API
	Status int
	Body   []byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error parsing JSON answer from %s (status %d): %v", e.API.Title(), e.Status, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{core.ErrBadResponse, e.Err} }
