package services

import (
	"errors"
	"fmt"

	"github.com/dddlab/backend/domain"
)

// ErrNotify is returned alongside the saved entity when an event handler
// failed after the change was persisted. The change is not rolled back.
var ErrNotify = errors.New("notify event handlers")

func notify(dispatcher domain.EventDispatcher, event domain.Event) error {
	if err := dispatcher.Notify(event); err != nil {
		return fmt.Errorf("%w: %w", ErrNotify, err)
	}

	return nil
}
