// Package chart binds a candle series to a rendering engine instance and
// keeps the view synchronized across data updates, symbol switches, resizes
// and pointer moves.
package chart

import (
	"sync"

	"github.com/AlekSi/pointer"

	"bitbucket.org/novatechnologies/chartview/domain"
	"bitbucket.org/novatechnologies/chartview/engine"
)

const (
	chartHeight  = 420
	priceScaleID = "right"

	upColor       = "#26a69a"
	downColor     = "#ef5350"
	backgroundHex = "#131722"
	textColorHex  = "#d1d4dc"
	gridColorHex  = "#1e222d"
)

// Controller owns one engine instance per mounted container lifetime. The
// four stimuli (mount, data/symbol update, resize, pointer move) are
// serialized by mu, so each handler runs to completion before the next one
// observes state. The boundary set has its own lock because the engine may
// call the tick formatter from inside an engine call made under mu.
type Controller struct {
	factory engine.Factory

	mu           sync.Mutex
	eng          engine.Engine
	series       engine.Series
	unsubResize  func()
	unsubPointer func()
	prevSymbol   string
	hasSymbol    bool
	view         domain.ViewState

	bmu        sync.Mutex
	boundaries map[int64]struct{}
}

func NewController(factory engine.Factory) *Controller {
	return &Controller{factory: factory}
}

// Mount creates the engine bound to the container. An absent or unattached
// container is a silent no-op: later reconciliation observes "no engine" and
// reports HasData=false. An engine construction failure is the renderer's
// own and is returned unmodified; it leaves no subscription behind.
func (c *Controller) Mount(container engine.Container) error {
	if container == nil || !container.Attached() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.eng != nil {
		return nil
	}

	eng, err := c.factory.Create(container, engine.Options{
		Width:            container.Width(),
		Height:           chartHeight,
		CrosshairEnabled: true,
		Theme: engine.Theme{
			Background: backgroundHex,
			TextColor:  textColorHex,
			GridColor:  gridColorHex,
		},
		TickFormatter: c.tickLabel,
	})
	if err != nil {
		return err
	}

	c.eng = eng
	c.series = eng.AddCandleSeries(engine.SeriesOptions{
		UpColor:   upColor,
		DownColor: downColor,
	})
	c.unsubPointer = eng.SubscribeCrosshairMove(c.onCrosshairMove)
	c.unsubResize = container.SubscribeResize(c.onResize)

	return nil
}

// Unmount detaches subscriptions, disposes the engine and resets observable
// state. Idempotent; safe when Mount never completed. After it returns no
// callback created by Mount fires again.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unsubResize != nil {
		c.unsubResize()
		c.unsubResize = nil
	}
	if c.unsubPointer != nil {
		c.unsubPointer()
		c.unsubPointer = nil
	}
	if c.eng != nil {
		c.eng.Remove()
		c.eng = nil
	}
	c.series = nil
	c.prevSymbol = ""
	c.hasSymbol = false
	c.view = domain.ViewState{}

	c.bmu.Lock()
	c.boundaries = nil
	c.bmu.Unlock()
}

// ViewState returns a copy of the caller-observable state.
func (c *Controller) ViewState() domain.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// tickLabel is handed to the engine at creation time and consumes the
// boundary set of the current reconciliation pass.
func (c *Controller) tickLabel(ts int64) string {
	c.bmu.Lock()
	_, boundary := c.boundaries[ts]
	c.bmu.Unlock()
	return domain.TickLabel(ts, boundary)
}

func (c *Controller) onResize(sz engine.Size) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.eng == nil {
		return
	}
	// Height stays fixed, only the width follows the container box.
	c.eng.ApplyOptions(engine.EngineOptions{Width: pointer.ToInt(sz.Width)})
}
