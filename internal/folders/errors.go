package folders

import (
	"errors"
	"fmt"
)

// MoveErrorKind identifies which precondition of a move was violated.
type MoveErrorKind int

const (
	InvalidSource MoveErrorKind = iota + 1
	InvalidDestination
	SourceNotFound
	DestinationNotFound
	AlreadyInDestination
)

var (
	ErrInvalidSource        = errors.New("you cannot move a folder")
	ErrInvalidDestination   = errors.New("you cannot specify a file as the destination")
	ErrSourceNotFound       = errors.New("source file cannot be found")
	ErrDestinationNotFound  = errors.New("destination folder cannot be found")
	ErrAlreadyInDestination = errors.New("source file is already in destination folder")
)

func (k MoveErrorKind) String() string {
	switch k {
	case InvalidSource:
		return "InvalidSource"
	case InvalidDestination:
		return "InvalidDestination"
	case SourceNotFound:
		return "SourceNotFound"
	case DestinationNotFound:
		return "DestinationNotFound"
	case AlreadyInDestination:
		return "AlreadyInDestination"
	default:
		return fmt.Sprintf("MoveErrorKind(%d)", int(k))
	}
}

func (k MoveErrorKind) sentinel() error {
	switch k {
	case InvalidSource:
		return ErrInvalidSource
	case InvalidDestination:
		return ErrInvalidDestination
	case SourceNotFound:
		return ErrSourceNotFound
	case DestinationNotFound:
		return ErrDestinationNotFound
	case AlreadyInDestination:
		return ErrAlreadyInDestination
	default:
		return nil
	}
}

// MoveError is returned by Move when the request is rejected.
type MoveError struct {
	Kind MoveErrorKind
	ID   string // the identifier that triggered the failure
}

func (e *MoveError) Error() string {
	if s := e.Kind.sentinel(); s != nil {
		return fmt.Sprintf("%s: %s", s, e.ID)
	}
	return fmt.Sprintf("move failed: %s", e.ID)
}

// Unwrap lets errors.Is match the per-kind sentinel.
func (e *MoveError) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf returns the kind of a move error, or 0 if err is not one.
func KindOf(err error) MoveErrorKind {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Kind
	}
	return 0
}
