package chart

import (
	"github.com/AlekSi/pointer"

	"bitbucket.org/novatechnologies/chartview/engine"
)

// ResetView fits the visible time range to all loaded data and re-enables
// price-axis autoscaling. Idempotent; a no-op when nothing is mounted.
// Invoked automatically on a symbol switch and available as a manual
// command.
func (c *Controller) ResetView() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Controller) resetLocked() {
	if c.eng == nil {
		return
	}
	c.eng.TimeScale().FitContent()
	c.eng.PriceScale(priceScaleID).ApplyOptions(engine.PriceScaleOptions{
		AutoScale: pointer.ToBool(true),
	})
}
