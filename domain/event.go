package domain

import "context"

type EventType = string

const (
	EvTypePointer = "pointer"
	EvTypeResize  = "resize"
)

type EventHandler = func(m *Event) error

// EventsBroker describes abstract pub-sub messaging for internal events
// among components. Handlers run synchronously in publish order, so a
// subscriber never observes events out of delivery order. The returned
// unsubscribe func detaches the handler; no delivery happens after it
// returns.
type EventsBroker interface {
	Subscribe(tp EventType, h EventHandler) (unsubscribe func())
	Publish(tp EventType, data *Event)
}

type (
	meta  map[string]string
	Event struct {
		Ctx     context.Context
		payload interface{}
		meta    meta
	}
)

func NewEvent(ctx context.Context, payload interface{}) *Event {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Event{
		payload: payload,
		Ctx:     ctx,
		meta:    nil,
	}
}

func (m *Event) WithMetaKV(key, value string) *Event {
	if m.meta == nil {
		m.meta = make(meta)
	}
	m.meta[key] = value

	return m
}

func (m *Event) GetMeta(key string) string {
	if m.meta == nil {
		return ""
	}

	return m.meta[key]
}

func (m *Event) Payload() interface{} {
	return m.payload
}
