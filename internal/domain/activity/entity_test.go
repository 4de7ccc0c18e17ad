package activity

import (
	"testing"

	"signupservice/internal/domain"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		a       Activity
		wantErr bool
	}{
		{"ok", Activity{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@x.io"}}, false},
		{"empty roster", Activity{Name: "Chess Club", MaxParticipants: 1}, false},
		{"no name", Activity{MaxParticipants: 2}, true},
		{"zero capacity", Activity{Name: "Chess Club"}, true},
		{"over capacity", Activity{Name: "Chess Club", MaxParticipants: 1, Participants: []string{"a@x.io", "b@x.io"}}, true},
		{"duplicate", Activity{Name: "Chess Club", MaxParticipants: 3, Participants: []string{"a@x.io", "a@x.io"}}, true},
		{"empty email", Activity{Name: "Chess Club", MaxParticipants: 3, Participants: []string{""}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.a.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !domain.IsCode(err, domain.ErrorCodeInvalidActivity) {
				t.Fatalf("expected INVALID_ACTIVITY, got %v", err)
			}
		})
	}
}

func TestValidateMembership_AllowsOverCapacity(t *testing.T) {
	a := Activity{Name: "Gym Class", MaxParticipants: 1, Participants: []string{"a@x.io", "b@x.io"}}
	if err := a.ValidateMembership(); err != nil {
		t.Fatalf("ValidateMembership: %v", err)
	}
}

func TestClone_DoesNotShareParticipants(t *testing.T) {
	a := Activity{Name: "Gym Class", MaxParticipants: 3, Participants: []string{"a@x.io"}}
	c := a.Clone()
	c.Participants[0] = "z@x.io"
	c.Participants = append(c.Participants, "b@x.io")

	if a.Participants[0] != "a@x.io" || len(a.Participants) != 1 {
		t.Fatalf("original mutated: %v", a.Participants)
	}
}

func TestSpotsLeft(t *testing.T) {
	a := Activity{Name: "Gym Class", MaxParticipants: 2, Participants: []string{"a@x.io"}}
	if a.SpotsLeft() != 1 || a.IsFull() {
		t.Fatalf("unexpected spots %d full=%v", a.SpotsLeft(), a.IsFull())
	}
	a.Participants = append(a.Participants, "b@x.io", "c@x.io")
	if a.SpotsLeft() != 0 || !a.IsFull() {
		t.Fatalf("unexpected spots %d full=%v", a.SpotsLeft(), a.IsFull())
	}
}
