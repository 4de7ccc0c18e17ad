package activity

import "context"

// MutateFunc edits an activity in place. Returning an error discards the edit.
type MutateFunc func(a *Activity) error

type Repository interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, name string) (Activity, error)
	Update(ctx context.Context, name string, fn MutateFunc) (Activity, error)
	Seed(ctx context.Context, a Activity) error
	Remove(ctx context.Context, name string) error
}
