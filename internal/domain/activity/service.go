package activity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"signupservice/internal/domain"
)

type Service interface {
	ListActivities(ctx context.Context) ([]Activity, error)
	Join(ctx context.Context, name, email string) (string, error)
	Leave(ctx context.Context, name, email string) (string, error)
}

// Recorder receives the outcome of every roster mutation.
type Recorder interface {
	Joined(activity string)
	Left(activity string)
	Rejected(op string, code domain.ErrorCode)
}

type service struct {
	activities Repository
	events     domain.EventBus
	metrics    Recorder
	policy     CapacityPolicy
}

func NewService(
	activities Repository,
	events domain.EventBus,
	metrics Recorder,
	policy CapacityPolicy,
) Service {
	return &service{
		activities: activities,
		events:     events,
		metrics:    metrics,
		policy:     policy,
	}
}

func (s *service) ListActivities(ctx context.Context) ([]Activity, error) {
	return s.activities.List(ctx)
}

func (s *service) Join(ctx context.Context, name, email string) (string, error) {
	_, err := s.activities.Update(ctx, name, func(a *Activity) error {
		if a.HasParticipant(email) {
			return &domain.DomainError{
				Code:       domain.ErrorCodeAlreadySignedUp,
				Message:    "Student is already signed up",
				HTTPStatus: http.StatusBadRequest,
			}
		}
		if s.policy == CapacityEnforce && a.IsFull() {
			return &domain.DomainError{
				Code:       domain.ErrorCodeActivityFull,
				Message:    "Activity is full",
				HTTPStatus: http.StatusBadRequest,
			}
		}

		a.Participants = append(a.Participants, email)
		return nil
	})
	if err != nil {
		s.reject("join", err)
		return "", err
	}

	if s.metrics != nil {
		s.metrics.Joined(name)
	}
	if s.events != nil {
		s.events.Publish(ctx, domain.Event{
			Type:     domain.EventActivityJoined,
			Activity: name,
			Payload:  map[string]any{"email": email},
		})
	}

	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

func (s *service) Leave(ctx context.Context, name, email string) (string, error) {
	_, err := s.activities.Update(ctx, name, func(a *Activity) error {
		idx := slices.Index(a.Participants, email)
		if idx < 0 {
			return &domain.DomainError{
				Code:       domain.ErrorCodeParticipantNotFound,
				Message:    "Student is not signed up for this activity",
				HTTPStatus: http.StatusNotFound,
			}
		}

		a.Participants = slices.Delete(a.Participants, idx, idx+1)
		return nil
	})
	if err != nil {
		s.reject("leave", err)
		return "", err
	}

	if s.metrics != nil {
		s.metrics.Left(name)
	}
	if s.events != nil {
		s.events.Publish(ctx, domain.Event{
			Type:     domain.EventActivityLeft,
			Activity: name,
			Payload:  map[string]any{"email": email},
		})
	}

	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

func (s *service) reject(op string, err error) {
	if s.metrics == nil {
		return
	}
	code := domain.ErrorCode("INTERNAL_ERROR")
	var de *domain.DomainError
	if errors.As(err, &de) {
		code = de.Code
	}
	s.metrics.Rejected(op, code)
}
