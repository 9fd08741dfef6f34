package broker

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"bitbucket.org/novatechnologies/chartview/domain"
)

var _ domain.EventsBroker = new(EventsInMemory)

// EventsInMemory is an in-process broker which stores subscriptions and runs
// handlers synchronously in publish order. Ordered delivery matters here:
// crosshair state must never be computed from a stale pointer event that
// overtook a newer one.
type EventsInMemory struct {
	mu          sync.RWMutex
	subscribers map[domain.EventType]map[int]domain.EventHandler
	nextID      int
}

func NewInMemory() *EventsInMemory {
	return &EventsInMemory{
		subscribers: make(map[domain.EventType]map[int]domain.EventHandler),
	}
}

func (ps *EventsInMemory) Subscribe(
	tp domain.EventType,
	h domain.EventHandler,
) func() {
	if tp == "" || h == nil {
		return func() {}
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subscribers[tp] == nil {
		ps.subscribers[tp] = make(map[int]domain.EventHandler)
	}
	ps.nextID++
	id := ps.nextID
	ps.subscribers[tp][id] = h

	return func() {
		ps.mu.Lock()
		defer ps.mu.Unlock()
		delete(ps.subscribers[tp], id)
	}
}

func (ps *EventsInMemory) Publish(tp domain.EventType, ev *domain.Event) {
	ps.mu.RLock()
	handlers := make([]domain.EventHandler, 0, len(ps.subscribers[tp]))
	for _, handler := range ps.subscribers[tp] {
		handlers = append(handlers, handler)
	}
	ps.mu.RUnlock()

	for _, handler := range handlers {
		ps.run(tp, handler, ev)
	}
}

func (ps *EventsInMemory) run(
	tp domain.EventType,
	h domain.EventHandler,
	ev *domain.Event,
) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic while executing handler for %s tp: %+v", tp, r)
		}
	}()

	if err := h(ev); err != nil {
		log.Errorf("error while executing handler for %s tp: %v", tp, err)
	}
}
