package seed

import (
	"errors"
	"fmt"
)

// Sentinel errors for connection settings.
var (
	ErrMissingURL        = errors.New("database URL is empty")
	ErrInvalidURL        = errors.New("invalid database URL")
	ErrUnsupportedScheme = errors.New("unsupported database scheme")
	ErrInvalidLesson     = errors.New("invalid lesson")
)

// Kind names the seeding stage that failed.
type Kind int

// Failure kinds.
const (
	ConnectionError Kind = iota + 1
	DeleteError
	InsertError
)

func (k Kind) String() string {
	switch k {
	case ConnectionError:
		return "ConnectionError"
	case DeleteError:
		return "DeleteError"
	case InsertError:
		return "InsertError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a seeding failure. Nothing was committed when it is returned.
type Error struct {
	Kind Kind
	Op   string // e.g. "connect", "count", "insert day 3", "commit"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
