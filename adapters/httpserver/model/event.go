package model

// EventHandlersResponse maps every event name to the type names of its
// handlers, in invocation order.
type EventHandlersResponse map[string][]string // @name model.EventHandlersResponse
