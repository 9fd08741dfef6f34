package domain

import "time"

// Label layouts are pinned to UTC and English month names so output does not
// depend on the host locale or timezone.
const (
	dayLabelLayout       = "Jan 2"
	intradayLabelLayout  = "3:04 PM"
	crosshairLabelLayout = "Jan 2, 2006 3:04 PM"
)

// TickLabel formats an axis tick. Day boundaries get a month/day label,
// everything else a 12-hour clock label with 12 for both midnight and noon.
func TickLabel(ts int64, dayBoundary bool) string {
	t := time.Unix(ts, 0).UTC()
	if dayBoundary {
		return t.Format(dayLabelLayout)
	}
	return t.Format(intradayLabelLayout)
}

// CrosshairLabel formats the hovered timestamp for the crosshair readout.
func CrosshairLabel(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(crosshairLabelLayout)
}
