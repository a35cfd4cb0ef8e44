package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/vitalstack/vitals-engine/internal/models"
)

// Normalize converts a value/unit pair into the canonical unit for the vital
// type. Temperatures are carried in Fahrenheit; Celsius converts, any other
// temperature unit token is rejected. Pulse rate and SpO2 units are
// informational only, the value passes through unchanged. Pure function.
func Normalize(value float64, unit string, vital models.VitalType) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNonNumericValue, value)
	}

	if vital != models.VitalTemperature {
		return value, nil
	}

	switch strings.ToUpper(strings.TrimSpace(unit)) {
	case "C":
		return value*9/5 + 32, nil
	case "F", "":
		return value, nil
	default:
		return 0, fmt.Errorf("%w: %q for temperature", ErrInvalidUnit, unit)
	}
}
