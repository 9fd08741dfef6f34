// Package engine defines the capability surface required from a chart
// rendering backend. The chart controller is written against this boundary,
// so any conforming implementation, a test double included, can stand in
// for the real renderer.
package engine

// Bar is one candle in the format the renderer accepts.
type Bar struct {
	Time  int64   `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointerEvent is one pointer-move notification. Time or Point is nil when
// the pointer is outside the plottable area (over an axis or empty region).
type PointerEvent struct {
	Time  *int64 `json:"time"`
	Point *Point `json:"point"`
}

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TickFormatter produces the time-axis tick label for a bar timestamp.
type TickFormatter func(ts int64) string

type Theme struct {
	Background string `json:"background"`
	TextColor  string `json:"textColor"`
	GridColor  string `json:"gridColor"`
}

// Options configure an engine instance at creation time.
type Options struct {
	Width            int
	Height           int
	Theme            Theme
	CrosshairEnabled bool
	TickFormatter    TickFormatter
}

// EngineOptions carry partial updates for a live engine. Nil fields are
// left untouched.
type EngineOptions struct {
	Width *int `json:"width,omitempty"`
}

type SeriesOptions struct {
	UpColor   string `json:"upColor"`
	DownColor string `json:"downColor"`
}

type PriceScaleOptions struct {
	AutoScale *bool `json:"autoScale,omitempty"`
}

type Series interface {
	// SetData replaces the series content wholesale.
	SetData(bars []Bar)
}

type TimeScale interface {
	// FitContent adjusts the visible time range to cover all loaded data.
	FitContent()
}

type PriceScale interface {
	ApplyOptions(opts PriceScaleOptions)
}

type Engine interface {
	AddCandleSeries(opts SeriesOptions) Series
	ApplyOptions(opts EngineOptions)
	// SubscribeCrosshairMove registers a pointer-move handler. The returned
	// unsubscribe func is synchronous: no notification is delivered after
	// it returns.
	SubscribeCrosshairMove(h func(ev PointerEvent)) (unsubscribe func())
	TimeScale() TimeScale
	PriceScale(id string) PriceScale
	// Remove disposes the instance. Every handle obtained from it becomes
	// invalid.
	Remove()
}

type Factory interface {
	Create(container Container, opts Options) (Engine, error)
}

// Container is a mountable display region: current pixel width plus a
// size-change subscription.
type Container interface {
	Attached() bool
	Width() int
	SubscribeResize(h func(sz Size)) (unsubscribe func())
}
