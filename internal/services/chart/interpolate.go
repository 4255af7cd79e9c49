package chart

import "CryptoPulse/internal/domain/models"

// ValueAt evaluates a series at continuous time t for animation scrubbing.
// Before the first point the series is not yet visible (ok=false); at or
// after the last point it holds the last value; between points it is linearly
// interpolated. The function is pure and can be re-evaluated at arbitrary t.
func ValueAt(points []models.ChartPoint, t float64) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}

	first := points[0]
	if t < float64(first.DayIndex) {
		return 0, false
	}

	last := points[len(points)-1]
	if t >= float64(last.DayIndex) {
		return last.Value, true
	}

	for i := 1; i < len(points); i++ {
		d0, v0 := float64(points[i-1].DayIndex), points[i-1].Value
		d1, v1 := float64(points[i].DayIndex), points[i].Value
		if t > d1 {
			continue
		}
		frac := (t - d0) / (d1 - d0)
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		return v0 + (v1-v0)*frac, true
	}

	return last.Value, true
}
