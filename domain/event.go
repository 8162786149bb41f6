package domain

import "time"

// Event is something that happened in the domain. Implementations are
// immutable once built.
type Event interface {
	// EventName is the routing key handlers are registered under. By
	// convention it is the name of the concrete event type.
	EventName() string
	DateTimeOccurred() time.Time
	EventData() any
}

// BaseEvent carries the fields shared by every concrete event. Embed it and
// build it with NewBaseEvent.
type BaseEvent struct {
	name       string
	occurredAt time.Time
	data       any
}

func NewBaseEvent(name string, data any) BaseEvent {
	return BaseEvent{
		name:       name,
		occurredAt: time.Now(),
		data:       data,
	}
}

func (e BaseEvent) EventName() string {
	return e.name
}

func (e BaseEvent) DateTimeOccurred() time.Time {
	return e.occurredAt
}

func (e BaseEvent) EventData() any {
	return e.data
}
