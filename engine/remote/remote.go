// Package remote implements the engine boundary on top of Centrifugo: a
// browser client subscribed to the per-chart render channel owns the
// pixels, every engine call is published to it as a command, and pointer
// and resize events travel back through the shared events channel.
package remote

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bitbucket.org/novatechnologies/chartview/domain"
	"bitbucket.org/novatechnologies/chartview/engine"
)

const (
	renderChannelPrefix = "chart-render"
	wsChannelSep        = "_"

	publishTimeout = 4 * time.Second
)

const (
	opCreate          = "create"
	opAddSeries       = "addSeries"
	opSetData         = "setData"
	opApplyOptions    = "applyOptions"
	opFitContent      = "fitContent"
	opApplyPriceScale = "applyPriceScale"
	opRemove          = "remove"
)

// Publisher pushes one render command payload into a channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, data interface{}) error
}

// command is the wire form consumed by the browser-side renderer.
type command struct {
	Op      string      `json:"op"`
	ChartID string      `json:"chartId"`
	Params  interface{} `json:"params,omitempty"`
}

type createParams struct {
	Width            int          `json:"width"`
	Height           int          `json:"height"`
	Theme            engine.Theme `json:"theme"`
	CrosshairEnabled bool         `json:"crosshairEnabled"`
}

type priceScaleParams struct {
	ID      string                   `json:"id"`
	Options engine.PriceScaleOptions `json:"options"`
}

// labeledBar ships the precomputed axis tick label with each bar, since the
// tick formatter lives on this side of the wire.
type labeledBar struct {
	engine.Bar
	Label string `json:"label"`
}

type Factory struct {
	publisher Publisher
	broker    domain.EventsBroker
}

func NewFactory(publisher Publisher, broker domain.EventsBroker) *Factory {
	return &Factory{publisher: publisher, broker: broker}
}

// Create publishes the create command and binds the engine to the
// container's event scope. A publish failure is returned unmodified and
// leaves no subscription behind.
func (f *Factory) Create(
	container engine.Container,
	opts engine.Options,
) (engine.Engine, error) {
	rc, ok := container.(*Container)
	if !ok {
		return nil, errors.New("remote factory requires a remote container")
	}

	e := &remoteEngine{
		publisher: f.publisher,
		chartID:   rc.ID(),
		channel:   renderChannelPrefix + wsChannelSep + rc.ID(),
		format:    opts.TickFormatter,
		subs:      make(map[int]func(engine.PointerEvent)),
	}

	err := e.publish(opCreate, createParams{
		Width:            opts.Width,
		Height:           opts.Height,
		Theme:            opts.Theme,
		CrosshairEnabled: opts.CrosshairEnabled,
	})
	if err != nil {
		return nil, err
	}

	e.unsubEvents = f.broker.Subscribe(domain.EvTypePointer, e.onPointerEvent)

	return e, nil
}

type remoteEngine struct {
	publisher Publisher
	chartID   string
	channel   string
	format    engine.TickFormatter

	mu          sync.Mutex
	subs        map[int]func(engine.PointerEvent)
	subID       int
	unsubEvents func()
}

func (e *remoteEngine) AddCandleSeries(opts engine.SeriesOptions) engine.Series {
	e.publishLogged(opAddSeries, opts)
	return remoteSeries{e}
}

func (e *remoteEngine) ApplyOptions(opts engine.EngineOptions) {
	e.publishLogged(opApplyOptions, opts)
}

func (e *remoteEngine) SubscribeCrosshairMove(
	h func(ev engine.PointerEvent),
) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subID++
	id := e.subID
	e.subs[id] = h
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs, id)
	}
}

func (e *remoteEngine) TimeScale() engine.TimeScale { return remoteTimeScale{e} }

func (e *remoteEngine) PriceScale(id string) engine.PriceScale {
	return remotePriceScale{e: e, id: id}
}

func (e *remoteEngine) Remove() {
	e.mu.Lock()
	if e.unsubEvents != nil {
		e.unsubEvents()
		e.unsubEvents = nil
	}
	e.subs = make(map[int]func(engine.PointerEvent))
	e.mu.Unlock()

	e.publishLogged(opRemove, nil)
}

// onPointerEvent relays browser pointer events of this chart to crosshair
// subscribers.
func (e *remoteEngine) onPointerEvent(m *domain.Event) error {
	ev, ok := m.Payload().(*ViewEvent)
	if !ok || ev.ChartID != e.chartID || ev.Pointer == nil {
		return nil
	}

	e.mu.Lock()
	handlers := make([]func(engine.PointerEvent), 0, len(e.subs))
	for _, h := range e.subs {
		handlers = append(handlers, h)
	}
	e.mu.Unlock()

	for _, h := range handlers {
		h(*ev.Pointer)
	}

	return nil
}

func (e *remoteEngine) publish(op string, params interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return e.publisher.Publish(ctx, e.channel, command{
		Op:      op,
		ChartID: e.chartID,
		Params:  params,
	})
}

func (e *remoteEngine) publishLogged(op string, params interface{}) {
	if err := e.publish(op, params); err != nil {
		log.WithField("chartId", e.chartID).
			Errorf("can't publish %s command: %v", op, err)
	}
}

type remoteSeries struct{ e *remoteEngine }

func (s remoteSeries) SetData(bars []engine.Bar) {
	labeled := make([]labeledBar, len(bars))
	for i, bar := range bars {
		labeled[i] = labeledBar{Bar: bar}
		if s.e.format != nil {
			labeled[i].Label = s.e.format(bar.Time)
		}
	}
	s.e.publishLogged(opSetData, labeled)
}

type remoteTimeScale struct{ e *remoteEngine }

func (t remoteTimeScale) FitContent() {
	t.e.publishLogged(opFitContent, nil)
}

type remotePriceScale struct {
	e  *remoteEngine
	id string
}

func (p remotePriceScale) ApplyOptions(opts engine.PriceScaleOptions) {
	p.e.publishLogged(opApplyPriceScale, priceScaleParams{ID: p.id, Options: opts})
}
