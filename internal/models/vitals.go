package models

import (
	"fmt"
	"time"
)

// VitalType identifies a measured physiological quantity with its own limit
// range and condition vocabulary.
type VitalType string

const (
	VitalTemperature VitalType = "temperature"
	VitalPulseRate   VitalType = "pulseRate"
	VitalSpO2        VitalType = "spo2"
)

// KnownVitalTypes returns the supported vital types in canonical report order.
func KnownVitalTypes() []VitalType {
	return []VitalType{VitalTemperature, VitalPulseRate, VitalSpO2}
}

// Known reports whether the vital type is one of the supported three.
func (v VitalType) Known() bool {
	switch v {
	case VitalTemperature, VitalPulseRate, VitalSpO2:
		return true
	}
	return false
}

// Tier is one of the five ordered severity bands shared across vital types.
type Tier int

const (
	TierBelowCritical Tier = iota
	TierNearLow
	TierNormal
	TierNearHigh
	TierAboveCritical
)

// Severity buckets conditions for aggregation and the overall report status.
type Severity string

const (
	SeverityNormal   Severity = "NORMAL"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Severity maps a tier to its aggregation bucket.
func (t Tier) Severity() Severity {
	switch t {
	case TierBelowCritical, TierAboveCritical:
		return SeverityCritical
	case TierNearLow, TierNearHigh:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// Condition is a vital-specific name for a severity tier.
type Condition string

const (
	ConditionNormal Condition = "NORMAL"
	ConditionError  Condition = "ERROR"

	ConditionHypothermia  Condition = "HYPO_THERMIA"
	ConditionNearHypo     Condition = "NEAR_HYPO"
	ConditionNearHyper    Condition = "NEAR_HYPER"
	ConditionHyperthermia Condition = "HYPER_THERMIA"

	ConditionBradycardia Condition = "BRADY_CARDIA"
	ConditionNearBrady   Condition = "NEAR_BRADY"
	ConditionNearTachy   Condition = "NEAR_TACHY"
	ConditionTachycardia Condition = "TACHY_CARDIA"

	ConditionLowOxygen      Condition = "LOW_OXYGEN"
	ConditionNearLowOxygen  Condition = "NEAR_LOW_OXYGEN"
	ConditionNearHighOxygen Condition = "NEAR_HIGH_OXYGEN"
	ConditionHighOxygen     Condition = "HIGH_OXYGEN"
)

// conditionTiers carries severity structurally on the condition so that
// aggregation never has to recover it from rendered message text.
var conditionTiers = map[Condition]Tier{
	ConditionHypothermia:  TierBelowCritical,
	ConditionNearHypo:     TierNearLow,
	ConditionNearHyper:    TierNearHigh,
	ConditionHyperthermia: TierAboveCritical,

	ConditionBradycardia: TierBelowCritical,
	ConditionNearBrady:   TierNearLow,
	ConditionNearTachy:   TierNearHigh,
	ConditionTachycardia: TierAboveCritical,

	ConditionLowOxygen:      TierBelowCritical,
	ConditionNearLowOxygen:  TierNearLow,
	ConditionNearHighOxygen: TierNearHigh,
	ConditionHighOxygen:     TierAboveCritical,
}

// Tier returns the severity tier the condition belongs to. The second return
// is false for ConditionError, which carries no tier.
func (c Condition) Tier() (Tier, bool) {
	if c == ConditionNormal {
		return TierNormal, true
	}
	tier, ok := conditionTiers[c]
	return tier, ok
}

// Severity returns the aggregation bucket for the condition. Errors map to
// SeverityNormal so they never force the overall status by themselves.
func (c Condition) Severity() Severity {
	tier, ok := c.Tier()
	if !ok {
		return SeverityNormal
	}
	return tier.Severity()
}

// Reading is a single vital-sign observation. Immutable once created; owned
// by whichever history sequence it is appended to.
type Reading struct {
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// NewReading builds a Reading, defaulting source to "manual" and the
// timestamp to the current time.
func NewReading(value float64, unit, source string) Reading {
	if source == "" {
		source = "manual"
	}
	return Reading{
		Value:     value,
		Unit:      unit,
		Source:    source,
		Timestamp: time.Now().UTC(),
	}
}

// PatientProfile describes the patient whose limits apply. Read-only input to
// the limit provider; no identity beyond its fields.
type PatientProfile struct {
	Age         *int   `json:"age,omitempty"`
	ProfileType string `json:"profileType,omitempty"`
}

// Descriptor renders the profile in the report's human-readable form.
func (p PatientProfile) Descriptor() string {
	profileType := p.ProfileType
	if profileType == "" {
		profileType = "adult"
	}
	if p.Age == nil {
		return fmt.Sprintf("Age: n/a, Type: %s", profileType)
	}
	return fmt.Sprintf("Age: %d, Type: %s", *p.Age, profileType)
}

// LimitRange is the acceptable band for one vital plus the early-warning
// tolerance. Derived per assessment since age can change limits.
type LimitRange struct {
	Min                     float64
	Max                     float64
	WarningTolerancePercent float64
}
