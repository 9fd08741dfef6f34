// Package enginetest provides in-memory doubles for the engine boundary so
// the chart controller can be exercised without a real rendering backend.
package enginetest

import (
	"sync"

	"bitbucket.org/novatechnologies/chartview/engine"
)

// Fake implements engine.Factory and engine.Engine, recording every call
// for assertions.
type Fake struct {
	mu sync.Mutex

	CreateErr error

	CreateCalls     int
	Options         engine.Options
	SeriesOpts      engine.SeriesOptions
	SetDataCalls    [][]engine.Bar
	AppliedOptions  []engine.EngineOptions
	FitContentCalls int
	PriceScaleID    string
	PriceScaleOpts  []engine.PriceScaleOptions
	RemoveCalls     int

	subs  map[int]func(engine.PointerEvent)
	subID int
}

func NewFake() *Fake {
	return &Fake{subs: make(map[int]func(engine.PointerEvent))}
}

func (f *Fake) Create(_ engine.Container, opts engine.Options) (engine.Engine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.CreateCalls++
	f.Options = opts
	return f, nil
}

func (f *Fake) AddCandleSeries(opts engine.SeriesOptions) engine.Series {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SeriesOpts = opts
	return fakeSeries{f}
}

func (f *Fake) ApplyOptions(opts engine.EngineOptions) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AppliedOptions = append(f.AppliedOptions, opts)
}

func (f *Fake) SubscribeCrosshairMove(h func(ev engine.PointerEvent)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subID++
	id := f.subID
	f.subs[id] = h
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
}

func (f *Fake) TimeScale() engine.TimeScale { return fakeTimeScale{f} }

func (f *Fake) PriceScale(id string) engine.PriceScale {
	f.mu.Lock()
	f.PriceScaleID = id
	f.mu.Unlock()
	return fakePriceScale{f}
}

func (f *Fake) Remove() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RemoveCalls++
}

// EmitPointer delivers a pointer-move notification to current subscribers.
func (f *Fake) EmitPointer(ev engine.PointerEvent) {
	f.mu.Lock()
	handlers := make([]func(engine.PointerEvent), 0, len(f.subs))
	for _, h := range f.subs {
		handlers = append(handlers, h)
	}
	f.mu.Unlock()
	for _, h := range handlers {
		h(ev)
	}
}

// Subscribers reports how many pointer-move handlers are registered.
func (f *Fake) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

type fakeSeries struct{ f *Fake }

func (s fakeSeries) SetData(bars []engine.Bar) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	copied := make([]engine.Bar, len(bars))
	copy(copied, bars)
	s.f.SetDataCalls = append(s.f.SetDataCalls, copied)
}

type fakeTimeScale struct{ f *Fake }

func (t fakeTimeScale) FitContent() {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	t.f.FitContentCalls++
}

type fakePriceScale struct{ f *Fake }

func (p fakePriceScale) ApplyOptions(opts engine.PriceScaleOptions) {
	p.f.mu.Lock()
	defer p.f.mu.Unlock()
	p.f.PriceScaleOpts = append(p.f.PriceScaleOpts, opts)
}

// Container is a fake mountable display region.
type Container struct {
	mu sync.Mutex

	W        int
	Detached bool

	subs  map[int]func(engine.Size)
	subID int
}

func NewContainer(width int) *Container {
	return &Container{W: width, subs: make(map[int]func(engine.Size))}
}

func (c *Container) Attached() bool { return !c.Detached }

func (c *Container) Width() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.W
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

// Resize changes the box size and notifies subscribers.
func (c *Container) Resize(sz engine.Size) {
	c.mu.Lock()
	c.W = sz.Width
	handlers := make([]func(engine.Size), 0, len(c.subs))
	for _, h := range c.subs {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()
	for _, h := range handlers {
		h(sz)
	}
}

// Subscribers reports how many resize handlers are registered.
func (c *Container) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
