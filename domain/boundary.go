package domain

const dayKeyLayout = "2006-01-02"

// DayBoundaries returns the timestamps that open a new UTC calendar day in
// an ascending candle sequence. The first candle is always a boundary. The
// set is rebuilt from scratch on every snapshot: snapshots are wholesale
// replacements, not appends, so incremental patching would diverge.
// An unsorted sequence degrades the result but does not fail.
func DayBoundaries(candles []Candle) map[int64]struct{} {
	boundaries := make(map[int64]struct{})
	prevKey := ""
	for _, c := range candles {
		key := c.Time().Format(dayKeyLayout)
		if key != prevKey {
			boundaries[c.Timestamp] = struct{}{}
			prevKey = key
		}
	}
	return boundaries
}
