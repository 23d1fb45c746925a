package repo

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies why a load failed
type ErrorKind int

const (
	// KindIO missing or unreadable file or directory
	KindIO ErrorKind = iota + 1
	// KindFormat malformed document
	KindFormat
	// KindValidation document parsed but violates a content rule
	KindValidation
)

var (
	ErrIO         = errors.New("io error")
	ErrFormat     = errors.New("format error")
	ErrValidation = errors.New("validation error")
)

// Error is returned for every failed load. It matches its kind sentinel with
// errors.Is and unwraps to the underlying cause.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindIO:
		return ErrIO
	case KindFormat:
		return ErrFormat
	case KindValidation:
		return ErrValidation
	default:
		return nil
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind.sentinel(), e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
