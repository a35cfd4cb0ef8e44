// Package trends summarises a window of vital-sign history readings.
package trends

import (
	"math"

	"github.com/vitalstack/vitals-engine/internal/models"
)

// Direction labels the movement of a reading window.
type Direction string

const (
	DirectionRising  Direction = "rising"
	DirectionFalling Direction = "falling"
	DirectionStable  Direction = "stable"
)

// Summary describes a window of readings in chronological order.
type Summary struct {
	Samples    int       `json:"samples"`
	Direction  Direction `json:"direction"`
	Mean       float64   `json:"mean"`
	Delta      float64   `json:"delta"`
	PeakZScore float64   `json:"peak_z_score"`
}

// Summarize computes direction, mean, first-to-last delta and the peak
// z-score of the window. A zero standard deviation is floored so a flat
// window yields zero scores instead of dividing by zero.
func Summarize(readings []models.Reading) Summary {
	summary := Summary{Samples: len(readings), Direction: DirectionStable}
	if len(readings) == 0 {
		return summary
	}

	mean := 0.0
	for _, r := range readings {
		mean += r.Value
	}
	mean /= float64(len(readings))
	summary.Mean = mean

	variance := 0.0
	for _, r := range readings {
		variance += math.Pow(r.Value-mean, 2)
	}
	variance /= float64(len(readings))
	stdDev := math.Sqrt(variance)
	if stdDev == 0 {
		stdDev = 0.01
	}

	peak := 0.0
	for _, r := range readings {
		if z := math.Abs(r.Value-mean) / stdDev; z > peak {
			peak = z
		}
	}
	summary.PeakZScore = peak

	delta := readings[len(readings)-1].Value - readings[0].Value
	summary.Delta = delta

	threshold := 0.01 * math.Max(math.Abs(mean), 1)
	switch {
	case delta > threshold:
		summary.Direction = DirectionRising
	case delta < -threshold:
		summary.Direction = DirectionFalling
	}
	return summary
}
