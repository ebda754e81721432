package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a request id is absent from the store
	ErrNotFound = errors.New("request not found")
	// ErrLocked is returned for any mutation of a complete request
	ErrLocked = errors.New("request is complete and locked for editing")
	// ErrInvalidTransition matches every *TransitionError
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError lists form problems found before anything is persisted
type ValidationError struct {
	Missing []string          // labels of required fields left blank
	Invalid map[string]string // label -> reason
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "please fill in required fields: "+strings.Join(e.Missing, ", "))
	}
	for _, f := range sortedKeys(e.Invalid) {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Invalid[f]))
	}
	return strings.Join(parts, "; ")
}

// Empty reports whether no problems were collected
func (e *ValidationError) Empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

// invalid records a reason for a field
func (e *ValidationError) invalid(label, reason string) {
	if e.Invalid == nil {
		e.Invalid = map[string]string{}
	}
	e.Invalid[label] = reason
}

// TransitionError reports a status change outside the lifecycle
type TransitionError struct {
	From, To Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("can't move request from %s to %s", e.From, e.To)
}

// Is makes errors.Is(err, ErrInvalidTransition) work
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// StorageError wraps an underlying read or write failure
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure on %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
