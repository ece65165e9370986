package session

import "errors"

var (
	// ErrNoItems means a session was started with an empty item list.
	// Fatal to that session's construction; not retried.
	ErrNoItems = errors.New("session needs at least one item")

	// ErrSessionCompleted means an operation was attempted on a
	// completed session. Programmer error: callers must check Phase
	// before calling Answer or Reveal.
	ErrSessionCompleted = errors.New("session already completed")
)
