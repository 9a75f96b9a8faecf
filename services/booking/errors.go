package booking

import "fmt"

// ValidationError reports canonical schema violations on an intake payload.
// Fields maps each offending field to a human-readable cause.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking validation failed on %d field(s)", len(e.Fields))
}

// PersistenceError wraps a store failure: unreachable, write or read error.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
