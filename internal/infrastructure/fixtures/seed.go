// Package fixtures loads the activity roster the service starts with.
package fixtures

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"signupservice/internal/domain/activity"
)

//go:embed activities.yaml
var defaultSeed []byte

type seedFile struct {
	Activities []seedActivity `yaml:"activities"`
}

type seedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// Seeder is the fixture side of the roster store.
type Seeder interface {
	Seed(ctx context.Context, a activity.Activity) error
}

// Load reads activities from path, or the built-in roster when path is empty.
func Load(path string) ([]activity.Activity, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) ([]activity.Activity, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Activities))
	out := make([]activity.Activity, 0, len(f.Activities))
	for _, sa := range f.Activities {
		if _, dup := seen[sa.Name]; dup {
			return nil, fmt.Errorf("seed file: duplicate activity %q", sa.Name)
		}
		seen[sa.Name] = struct{}{}

		a := activity.Activity{
			Name:            sa.Name,
			Description:     sa.Description,
			Schedule:        sa.Schedule,
			MaxParticipants: sa.MaxParticipants,
			Participants:    append([]string{}, sa.Participants...),
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("seed file: %w", err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Apply seeds every activity into the store and returns how many were stored.
func Apply(ctx context.Context, store Seeder, acts []activity.Activity) (int, error) {
	for i, a := range acts {
		if err := store.Seed(ctx, a); err != nil {
			return i, fmt.Errorf("seed %q: %w", a.Name, err)
		}
	}
	return len(acts), nil
}
