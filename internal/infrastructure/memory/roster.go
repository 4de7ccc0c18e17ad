package memory

import (
	"context"
	"net/http"
	"slices"
	"sync"

	"signupservice/internal/domain"
	"signupservice/internal/domain/activity"
)

// RosterStore keeps every activity in process memory. A single lock
// serializes mutations, so each Update is atomic with respect to the roster.
type RosterStore struct {
	mu    sync.RWMutex
	byKey map[string]*activity.Activity
	order []string
}

func NewRosterStore() *RosterStore {
	return &RosterStore{byKey: map[string]*activity.Activity{}}
}

func (s *RosterStore) List(ctx context.Context) ([]activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]activity.Activity, 0, len(s.order))
	for _, name := range s.order {
		res = append(res, s.byKey[name].Clone())
	}
	return res, nil
}

func (s *RosterStore) Get(ctx context.Context, name string) (activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byKey[name]
	if !ok {
		return activity.Activity{}, activityNotFound()
	}
	return a.Clone(), nil
}

// Update applies fn to a copy of the named activity and commits the copy
// only when fn succeeds and the result still holds its membership invariants.
func (s *RosterStore) Update(ctx context.Context, name string, fn activity.MutateFunc) (activity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byKey[name]
	if !ok {
		return activity.Activity{}, activityNotFound()
	}

	draft := current.Clone()
	if err := fn(&draft); err != nil {
		return activity.Activity{}, err
	}
	draft.Name = current.Name
	if err := draft.ValidateMembership(); err != nil {
		return activity.Activity{}, err
	}

	*current = draft
	return draft.Clone(), nil
}

// Seed inserts a or replaces the activity with the same name.
func (s *RosterStore) Seed(ctx context.Context, a activity.Activity) error {
	if err := a.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := a.Clone()
	if _, exists := s.byKey[a.Name]; !exists {
		s.order = append(s.order, a.Name)
	}
	s.byKey[a.Name] = &c
	return nil
}

func (s *RosterStore) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byKey[name]; !ok {
		return activityNotFound()
	}
	delete(s.byKey, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
	return nil
}

func (s *RosterStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func activityNotFound() error {
	return &domain.DomainError{
		Code:       domain.ErrorCodeActivityNotFound,
		Message:    "Activity not found",
		HTTPStatus: http.StatusNotFound,
	}
}
