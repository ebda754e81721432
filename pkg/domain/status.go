package domain

import "fmt"

// Status represents lifecycle state of an intake request
type Status string

// lifecycle states, in the only order a request may move through them
const (
	StatusNone      Status = "" // not persisted yet
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusComplete  Status = "complete"
)

// transitions lists every legal move. complete has no outgoing edges.
var transitions = map[Status][]Status{
	StatusNone:      {StatusDraft, StatusSubmitted},
	StatusDraft:     {StatusDraft, StatusSubmitted},
	StatusSubmitted: {StatusSubmitted, StatusComplete},
}

// ParseStatus converts stored value to Status
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusDraft, StatusSubmitted, StatusComplete:
		return st, nil
	default:
		return StatusNone, fmt.Errorf("unknown status %q", s)
	}
}

// CanTransition reports whether moving from s to next is allowed
func (s Status) CanTransition(next Status) bool {
	for _, st := range transitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

// CheckTransition returns ErrLocked for any move out of complete and a *TransitionError for
// any other move not in the transition table.
func CheckTransition(from, to Status) error {
	if from == StatusComplete {
		return ErrLocked
	}
	if !from.CanTransition(to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// Icon returns the marker shown next to a request in lists
func (s Status) Icon() string {
	switch s {
	case StatusDraft:
		return "📝"
	case StatusSubmitted:
		return "📤"
	case StatusComplete:
		return "✅"
	default:
		return "❓"
	}
}

func (s Status) String() string {
	if s == StatusNone {
		return "new"
	}
	return string(s)
}
