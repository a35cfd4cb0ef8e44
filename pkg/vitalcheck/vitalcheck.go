// Package vitalcheck provides the reduced, legacy-compatible call forms:
// three scalar vitals (Fahrenheit, bpm, percent) checked against the default
// adult limits with English messages.
package vitalcheck

import (
	"github.com/vitalstack/vitals-engine/internal/engine"
	"github.com/vitalstack/vitals-engine/internal/models"
)

// Failure pairs a vital type with its resolved message.
type Failure struct {
	VitalType string
	Message   string
}

// VitalsOK checks the three scalar vitals in strict legacy mode: failures
// contain critical-tier conditions only, and ok is true when none occurred.
func VitalsOK(temperature, pulseRate, spo2 float64) (bool, []Failure) {
	failures := check(temperature, pulseRate, spo2, false)
	return len(failures) == 0, failures
}

// VitalsOKWithWarnings checks the three scalar vitals in enhanced mode:
// failures contain critical and warning tiers combined, and ok is true only
// when the batch is fully normal.
func VitalsOKWithWarnings(temperature, pulseRate, spo2 float64) (bool, []Failure) {
	failures := check(temperature, pulseRate, spo2, true)
	return len(failures) == 0, failures
}

func check(temperature, pulseRate, spo2 float64, includeWarnings bool) []Failure {
	values := []struct {
		vital models.VitalType
		value float64
	}{
		{models.VitalTemperature, temperature},
		{models.VitalPulseRate, pulseRate},
		{models.VitalSpO2, spo2},
	}

	provider, err := engine.NewLimitProvider("", nil)
	if err != nil {
		// Built-in defaults cannot fail validation.
		panic(err)
	}

	failures := make([]Failure, 0)
	for _, entry := range values {
		limits, err := provider.Limits(entry.vital, models.PatientProfile{})
		if err != nil {
			continue
		}
		condition, err := engine.Classify(entry.vital, entry.value, limits)
		if err != nil {
			continue
		}
		severity := condition.Severity()
		if severity == models.SeverityNormal {
			continue
		}
		if severity == models.SeverityWarning && !includeWarnings {
			continue
		}
		message, err := engine.MessageFor(condition, engine.LanguageEnglish)
		if err != nil {
			continue
		}
		failures = append(failures, Failure{VitalType: string(entry.vital), Message: message})
	}
	return failures
}
