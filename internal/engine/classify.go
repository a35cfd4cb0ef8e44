package engine

import (
	"fmt"

	"github.com/vitalstack/vitals-engine/internal/models"
)

// conditionTable names each generic tier per vital type. One table instead of
// repeated per-vital branching; the tier structure is identical across vitals.
var conditionTable = map[models.VitalType][5]models.Condition{
	models.VitalTemperature: {
		models.ConditionHypothermia,
		models.ConditionNearHypo,
		models.ConditionNormal,
		models.ConditionNearHyper,
		models.ConditionHyperthermia,
	},
	models.VitalPulseRate: {
		models.ConditionBradycardia,
		models.ConditionNearBrady,
		models.ConditionNormal,
		models.ConditionNearTachy,
		models.ConditionTachycardia,
	},
	models.VitalSpO2: {
		models.ConditionLowOxygen,
		models.ConditionNearLowOxygen,
		models.ConditionNormal,
		models.ConditionNearHighOxygen,
		models.ConditionHighOxygen,
	},
}

// Boundaries derives the four band edges from a limit range. The warning band
// on each side is tolerance_percent/100 of the total range width.
func Boundaries(limits models.LimitRange) ([4]float64, error) {
	if limits.Max <= limits.Min {
		return [4]float64{}, fmt.Errorf("%w: range [%v,%v] is empty", ErrInvalidTolerance, limits.Min, limits.Max)
	}
	if err := ValidateTolerance(limits.WarningTolerancePercent); err != nil {
		return [4]float64{}, err
	}
	tol := (limits.Max - limits.Min) * limits.WarningTolerancePercent / 100
	return [4]float64{
		limits.Min,
		limits.Min + tol,
		limits.Max - tol,
		limits.Max,
	}, nil
}

// ClassifyTier maps a normalized value into one of the five severity tiers.
// The five bands partition the real line: a value exactly at min is a warning
// (near-low), a value exactly at max is critical (above-critical).
func ClassifyTier(value float64, limits models.LimitRange) (models.Tier, error) {
	b, err := Boundaries(limits)
	if err != nil {
		return models.TierNormal, err
	}
	switch {
	case value < b[0]:
		return models.TierBelowCritical, nil
	case value < b[1]:
		return models.TierNearLow, nil
	case value < b[2]:
		return models.TierNormal, nil
	case value < b[3]:
		return models.TierNearHigh, nil
	default:
		return models.TierAboveCritical, nil
	}
}

// ConditionFor translates a generic tier into the vital-specific condition.
func ConditionFor(vital models.VitalType, tier models.Tier) (models.Condition, error) {
	conditions, ok := conditionTable[vital]
	if !ok {
		return models.ConditionError, fmt.Errorf("%w: %q", ErrUnknownVitalType, vital)
	}
	return conditions[tier], nil
}

// Classify runs tier classification and the condition lookup in one step.
func Classify(vital models.VitalType, value float64, limits models.LimitRange) (models.Condition, error) {
	tier, err := ClassifyTier(value, limits)
	if err != nil {
		return models.ConditionError, err
	}
	return ConditionFor(vital, tier)
}
