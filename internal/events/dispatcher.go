package events

import (
	"context"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Unsubscribe removes a previously registered handler. Safe to call more
// than once.
type Unsubscribe func()

// Dispatcher is the abstract change feed consumers register against. The
// core depends only on this contract, not on any transport.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler) Unsubscribe
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[EventType]map[int]EventHandler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[EventType]map[int]EventHandler),
	}
}

// Publish synchronously invokes handlers for the given event. Handler
// errors do not stop the remaining handlers.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := make([]EventHandler, 0, len(d.listeners[event.Type]))
	for _, handler := range d.listeners[event.Type] {
		handlers = append(handlers, handler)
	}
	d.mu.RUnlock()

	for _, handler := range handlers {
		_ = handler(ctx, event)
	}
	return nil
}

// Subscribe registers a handler and returns the handle that removes it.
func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) Unsubscribe {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listeners[eventType] == nil {
		d.listeners[eventType] = make(map[int]EventHandler)
	}
	id := d.nextID
	d.nextID++
	d.listeners[eventType][id] = handler

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners[eventType], id)
	}
}
