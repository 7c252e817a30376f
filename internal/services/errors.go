package services

import (
	"errors"
	"fmt"
)

// Every error returned by TriviaService wraps exactly one of these kinds.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("not found")
	ErrUnprocessable = errors.New("unprocessable entity")
)

// storageFault reports a storage error as ErrUnprocessable, keeping the
// cause in the chain for logs.
func storageFault(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnprocessable, err)
}
