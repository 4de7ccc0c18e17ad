package domain

import "context"

type EventType string

const (
	EventActivityJoined EventType = "activity.joined"
	EventActivityLeft   EventType = "activity.left"
)

type Event struct {
	Type     EventType
	Activity string
	Payload  map[string]any
}

type EventBus interface {
	Publish(ctx context.Context, e Event)
}
