package remote

import (
	"sync"

	"github.com/google/uuid"

	"bitbucket.org/novatechnologies/chartview/domain"
	"bitbucket.org/novatechnologies/chartview/engine"
)

// ViewEvent is one event reported by the browser client over the events
// channel. ChartID scopes it to a container/engine pair.
type ViewEvent struct {
	ChartID string               `json:"chartId"`
	Pointer *engine.PointerEvent `json:"pointer,omitempty"`
	Size    *engine.Size         `json:"size,omitempty"`
}

// Container represents the browser-side mount element of one chart. It
// learns its box size from resize events relayed through the broker.
type Container struct {
	id     string
	broker domain.EventsBroker

	mu     sync.Mutex
	width  int
	closed bool
	subs   map[int]func(engine.Size)
	subID  int
	unsub  func()
}

func NewContainer(broker domain.EventsBroker, initialWidth int) *Container {
	c := &Container{
		id:     uuid.New().String(),
		broker: broker,
		width:  initialWidth,
		subs:   make(map[int]func(engine.Size)),
	}
	c.unsub = broker.Subscribe(domain.EvTypeResize, c.onResizeEvent)

	return c
}

func (c *Container) ID() string { return c.id }

func (c *Container) Attached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

func (c *Container) Width() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

func (c *Container) SubscribeResize(h func(sz engine.Size)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subID++
	id := c.subID
	c.subs[id] = h
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Close detaches the container from the events channel. Subsequent Attached
// calls report false, so a mount against it becomes a no-op.
func (c *Container) Close() {
	c.mu.Lock()
	unsub := c.unsub
	c.unsub = nil
	c.closed = true
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (c *Container) onResizeEvent(m *domain.Event) error {
	ev, ok := m.Payload().(*ViewEvent)
	if !ok || ev.ChartID != c.id || ev.Size == nil {
		return nil
	}

	c.mu.Lock()
	c.width = ev.Size.Width
	handlers := make([]func(engine.Size), 0, len(c.subs))
	for _, h := range c.subs {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(*ev.Size)
	}

	return nil
}
