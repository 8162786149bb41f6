package event

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dddlab/backend/domain"
	"github.com/dddlab/backend/pkg/metrics"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Option func(ed *eventDispatcher)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(ed *eventDispatcher) {
		if logger != nil {
			ed.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Dispatcher) Option {
	return func(ed *eventDispatcher) {
		ed.metrics = m
	}
}

// WithContinueOnError makes Notify invoke every handler even after one
// fails. The failures are returned combined once all handlers ran.
func WithContinueOnError() Option {
	return func(ed *eventDispatcher) {
		ed.continueOnError = true
	}
}

// eventDispatcher routes events to handlers by event name. Handlers run
// synchronously on the caller's goroutine, in registration order.
type eventDispatcher struct {
	handlers map[string][]domain.EventHandler
	mutex    sync.RWMutex

	logger          *zap.SugaredLogger
	metrics         *metrics.Dispatcher
	continueOnError bool
}

func NewEventDispatcher(opts ...Option) *eventDispatcher {
	ed := &eventDispatcher{
		handlers: make(map[string][]domain.EventHandler),
		logger:   zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(ed)
	}

	return ed
}

// Register appends handler to the handlers of eventName. Registering the same
// handler twice makes it run twice.
func (ed *eventDispatcher) Register(eventName string, handler domain.EventHandler) {
	if eventName == "" || handler == nil {
		ed.logger.Warnw("ignoring event handler registration",
			zap.String("event", eventName),
			zap.Bool("nil_handler", handler == nil),
		)
		return
	}

	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers[eventName] = append(ed.handlers[eventName], handler)
}

// Unregister removes the first registration of handler under eventName.
// Unknown events and handlers are ignored.
func (ed *eventDispatcher) Unregister(eventName string, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	handlers := ed.handlers[eventName]
	for i, h := range handlers {
		if !sameHandler(h, handler) {
			continue
		}

		// the capped slice forces append to copy, snapshots taken by
		// Notify keep their backing array
		remaining := append(handlers[:i:i], handlers[i+1:]...)
		if len(remaining) == 0 {
			delete(ed.handlers, eventName)
		} else {
			ed.handlers[eventName] = remaining
		}

		return
	}
}

func (ed *eventDispatcher) UnregisterAll() {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers = make(map[string][]domain.EventHandler)
}

// Notify invokes every handler registered under the event name. The first
// handler error is returned and the remaining handlers are skipped, unless
// the dispatcher was built with WithContinueOnError.
func (ed *eventDispatcher) Notify(event domain.Event) error {
	if event == nil {
		return nil
	}

	eventName := event.EventName()

	// handlers run without the lock so they may register or notify
	ed.mutex.RLock()
	handlers := slices.Clone(ed.handlers[eventName])
	ed.mutex.RUnlock()

	if len(handlers) == 0 {
		ed.logger.Debugw("no event handlers registered", zap.String("event", eventName))
		return nil
	}

	ed.metrics.Notified(eventName)
	ed.logger.Debugw("notifying event handlers",
		zap.String("event", eventName),
		zap.Int("handlers", len(handlers)),
	)

	var errs error
	for _, handler := range handlers {
		if err := ed.handle(eventName, handler, event); err != nil {
			if !ed.continueOnError {
				return err
			}

			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

func (ed *eventDispatcher) handle(eventName string, handler domain.EventHandler, event domain.Event) error {
	name := HandlerName(handler)

	start := time.Now()
	err := handler.Handle(event)
	ed.metrics.ObserveHandler(eventName, name, time.Since(start), err)

	if err != nil {
		ed.logger.Warnw("event handler failed",
			zap.String("event", eventName),
			zap.String("handler", name),
			zap.Error(err),
		)

		return fmt.Errorf("handle %q with %s: %w", eventName, name, err)
	}

	return nil
}

// GetEventHandlers returns a copy of the registry.
func (ed *eventDispatcher) GetEventHandlers() map[string][]domain.EventHandler {
	ed.mutex.RLock()
	defer ed.mutex.RUnlock()

	handlers := make(map[string][]domain.EventHandler, len(ed.handlers))
	for eventName, hs := range ed.handlers {
		handlers[eventName] = slices.Clone(hs)
	}

	return handlers
}

func (ed *eventDispatcher) HandlerCount(eventName string) int {
	ed.mutex.RLock()
	defer ed.mutex.RUnlock()

	return len(ed.handlers[eventName])
}

// HandlerName is the handler's type name without the pointer marker, e.g.
// "listeners.SendConsoleLogHandler".
func HandlerName(handler domain.EventHandler) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", handler), "*")
}

// sameHandler compares by identity. Handlers holding a non comparable value,
// directly or inside an interface field, never match instead of panicking.
func sameHandler(a, b domain.EventHandler) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) {
		return false
	}

	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}

	return a == b
}
