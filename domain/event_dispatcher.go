package domain

// EventHandler reacts to a dispatched event. A returned error stops the
// dispatch of the current event unless the dispatcher was configured to
// continue on error.
type EventHandler interface {
	Handle(event Event) error
}

type EventDispatcher interface {
	Register(eventName string, handler EventHandler)
	Unregister(eventName string, handler EventHandler)
	UnregisterAll()
	Notify(event Event) error
	GetEventHandlers() map[string][]EventHandler
	HandlerCount(eventName string) int
}
