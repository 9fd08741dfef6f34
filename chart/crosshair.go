package chart

import (
	"github.com/AlekSi/pointer"

	"bitbucket.org/novatechnologies/chartview/domain"
	"bitbucket.org/novatechnologies/chartview/engine"
)

// onCrosshairMove tracks the hovered data point. A notification without a
// pixel point or a time coordinate means the pointer left the plottable
// area: both crosshair fields are cleared rather than left stale.
func (c *Controller) onCrosshairMove(ev engine.PointerEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.eng == nil {
		return
	}

	if ev.Point == nil || ev.Time == nil {
		c.view.CrosshairTime = nil
		c.view.CrosshairX = nil
		return
	}

	c.view.CrosshairTime = pointer.ToString(domain.CrosshairLabel(*ev.Time))
	c.view.CrosshairX = pointer.ToFloat64(ev.Point.X)
}
