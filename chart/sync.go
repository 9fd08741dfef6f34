package chart

import (
	"bitbucket.org/novatechnologies/chartview/domain"
	"bitbucket.org/novatechnologies/chartview/engine"
)

// SetCandles reconciles a fresh candle snapshot into the mounted engine.
// The snapshot may be empty, arbitrarily large or a wholesale replacement
// of the previous one. A symbol switch resets the viewport exactly once;
// a data update under the same symbol never disturbs the user's pan/zoom.
func (c *Controller) SetCandles(symbol string, candles []domain.Candle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.eng == nil || len(candles) == 0 {
		c.view.HasData = false
		return
	}

	c.setBoundaries(domain.DayBoundaries(candles))

	bars := make([]engine.Bar, len(candles))
	for i, candle := range candles {
		bars[i] = engine.Bar{
			Time:  candle.Timestamp,
			Open:  candle.Open,
			High:  candle.High,
			Low:   candle.Low,
			Close: candle.Close,
		}
	}
	c.series.SetData(bars)
	c.view.HasData = true

	if !c.hasSymbol || c.prevSymbol != symbol {
		c.resetLocked()
		c.prevSymbol = symbol
		c.hasSymbol = true
	}
}

func (c *Controller) setBoundaries(boundaries map[int64]struct{}) {
	c.bmu.Lock()
	c.boundaries = boundaries
	c.bmu.Unlock()
}
