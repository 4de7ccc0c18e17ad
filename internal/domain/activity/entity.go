package activity

import (
	"fmt"
	"net/http"
	"slices"

	"signupservice/internal/domain"
)

type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Validate checks the invariants a seeded activity must hold, including
// that the roster fits the capacity.
func (a Activity) Validate() error {
	if err := a.ValidateMembership(); err != nil {
		return err
	}
	if len(a.Participants) > a.MaxParticipants {
		return invalid(fmt.Sprintf("activity %q: %d participants exceed capacity %d",
			a.Name, len(a.Participants), a.MaxParticipants))
	}
	return nil
}

// ValidateMembership checks the invariants that hold regardless of capacity
// policy: a name, a positive capacity and distinct non-empty emails.
func (a Activity) ValidateMembership() error {
	if a.Name == "" {
		return invalid("activity name is required")
	}
	if a.MaxParticipants <= 0 {
		return invalid(fmt.Sprintf("activity %q: max_participants must be positive", a.Name))
	}

	seen := make(map[string]struct{}, len(a.Participants))
	for _, p := range a.Participants {
		if p == "" {
			return invalid(fmt.Sprintf("activity %q: empty participant email", a.Name))
		}
		if _, dup := seen[p]; dup {
			return invalid(fmt.Sprintf("activity %q: duplicate participant %s", a.Name, p))
		}
		seen[p] = struct{}{}
	}
	return nil
}

func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

func (a Activity) SpotsLeft() int {
	if n := a.MaxParticipants - len(a.Participants); n > 0 {
		return n
	}
	return 0
}

// Clone returns a copy that shares no participant storage with a.
func (a Activity) Clone() Activity {
	a.Participants = append([]string{}, a.Participants...)
	return a
}

func invalid(msg string) error {
	return &domain.DomainError{
		Code:       domain.ErrorCodeInvalidActivity,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}
