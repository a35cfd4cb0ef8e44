package models

import "testing"

func TestConditionSeverity(t *testing.T) {
	cases := []struct {
		cond Condition
		want Severity
	}{
		{ConditionNormal, SeverityNormal},
		{ConditionError, SeverityNormal},
		{ConditionNearHypo, SeverityWarning},
		{ConditionNearTachy, SeverityWarning},
		{ConditionHypothermia, SeverityCritical},
		{ConditionTachycardia, SeverityCritical},
		{ConditionLowOxygen, SeverityCritical},
		{ConditionHighOxygen, SeverityCritical},
	}
	for _, tc := range cases {
		if got := tc.cond.Severity(); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.cond, tc.want, got)
		}
	}
}

func TestConditionTier(t *testing.T) {
	if _, ok := ConditionError.Tier(); ok {
		t.Fatalf("ERROR carries no tier")
	}
	tier, ok := ConditionNearBrady.Tier()
	if !ok || tier != TierNearLow {
		t.Fatalf("expected near-low tier, got %d (%v)", tier, ok)
	}
}

func TestPatientProfileDescriptor(t *testing.T) {
	age := 30
	cases := []struct {
		profile PatientProfile
		want    string
	}{
		{PatientProfile{Age: &age}, "Age: 30, Type: adult"},
		{PatientProfile{Age: &age, ProfileType: "athlete"}, "Age: 30, Type: athlete"},
		{PatientProfile{}, "Age: n/a, Type: adult"},
	}
	for _, tc := range cases {
		if got := tc.profile.Descriptor(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestNewReadingDefaults(t *testing.T) {
	r := NewReading(98.6, "F", "")
	if r.Source != "manual" {
		t.Fatalf("expected manual source, got %q", r.Source)
	}
	if r.Timestamp.IsZero() {
		t.Fatalf("expected timestamp")
	}

	sensor := NewReading(72, "", "sensor")
	if sensor.Source != "sensor" {
		t.Fatalf("explicit source must be kept, got %q", sensor.Source)
	}
}

func TestVitalTypeKnown(t *testing.T) {
	for _, v := range KnownVitalTypes() {
		if !v.Known() {
			t.Fatalf("%s must be known", v)
		}
	}
	if VitalType("bloodSugar").Known() {
		t.Fatalf("bloodSugar must not be known")
	}
}
