package domain

import "time"

type Resolution string

const (
	Candle1MResolution  Resolution = "1"
	Candle5MResolution  Resolution = "5"
	Candle15MResolution Resolution = "15"
	Candle1HResolution  Resolution = "60"
	Candle4HResolution  Resolution = "240"
	Candle1DResolution  Resolution = "1D"
)

func GetAvailableResolutions() []Resolution {
	return []Resolution{
		Candle1MResolution,
		Candle5MResolution,
		Candle15MResolution,
		Candle1HResolution,
		Candle4HResolution,
		Candle1DResolution,
	}
}

func (resolution Resolution) ToDuration() time.Duration {
	int2dur := map[Resolution]time.Duration{
		Candle1MResolution:  time.Minute,
		Candle5MResolution:  5 * time.Minute,
		Candle15MResolution: 15 * time.Minute,
		Candle1HResolution:  60 * time.Minute,
		Candle4HResolution:  240 * time.Minute,
		Candle1DResolution:  24 * time.Hour,
	}

	if duration, ok := int2dur[resolution]; ok {
		return duration
	}

	return 0
}

func (resolution Resolution) IsNotExist() bool {
	for _, r := range GetAvailableResolutions() {
		if resolution == r {
			return false
		}
	}

	return true
}
