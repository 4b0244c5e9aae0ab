package service

import (
	"sync"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/models"
)

// Bus fans sync lifecycle events out to subscribers. Publishing never
// blocks the drain cycle: callbacks run synchronously but a panic in one
// subscriber is recovered and logged, and the remaining subscribers still
// receive the event.
type Bus struct {
	log *logger.Logger

	mu          sync.RWMutex
	nextID      int64
	subscribers map[int64]func(models.SyncEvent)
}

func NewBus(log *logger.Logger) *Bus {
	return &Bus{
		log:         log,
		subscribers: make(map[int64]func(models.SyncEvent)),
	}
}

// Subscribe registers fn and returns a function that removes the
// subscription. Unsubscribing twice is harmless.
func (b *Bus) Subscribe(fn func(models.SyncEvent)) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subscribers[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()
	}
}

// Publish delivers event to every current subscriber.
func (b *Bus) Publish(event models.SyncEvent) {
	b.mu.RLock()
	fns := make([]func(models.SyncEvent), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		b.notify(fn, event)
	}
}

func (b *Bus) notify(fn func(models.SyncEvent), event models.SyncEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().
				Str("func", "Bus.notify").
				Str("kind", string(event.Kind)).
				Any("panic", r).
				Msg("sync event subscriber panicked")
		}
	}()
	fn(event)
}
