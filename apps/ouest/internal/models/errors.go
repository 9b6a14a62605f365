package models

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindLoad ErrorKind = iota
	KindUndefinedLocation
)

var (
	ErrLoad              = errors.New("failed to load schedule")
	ErrUndefinedLocation = errors.New("undefined location")
)

// Error is returned by everything that can fail while answering which
// event is current. Kind tells callers how it failed.
type Error struct {
	Kind ErrorKind
	Key  string
	Err  error
}

func NewLoadError(err error) *Error {
	return &Error{Kind: KindLoad, Err: err}
}

func NewUndefinedLocationError(key string) *Error {
	return &Error{Kind: KindUndefinedLocation, Key: key}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUndefinedLocation:
		return fmt.Sprintf("%s: %q", ErrUndefinedLocation, e.Key)
	default:
		return fmt.Sprintf("%s: %v", ErrLoad, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrLoad:
		return e.Kind == KindLoad
	case ErrUndefinedLocation:
		return e.Kind == KindUndefinedLocation
	default:
		return false
	}
}
