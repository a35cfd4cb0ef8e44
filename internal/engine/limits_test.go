package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vitalstack/vitals-engine/internal/models"
)

func intPtr(v int) *int { return &v }

func TestLimitsDefaults(t *testing.T) {
	provider, err := NewLimitProvider("", nil)
	if err != nil {
		t.Fatalf("new limit provider: %v", err)
	}

	cases := []struct {
		vital    models.VitalType
		min, max float64
	}{
		{models.VitalTemperature, 95, 102},
		{models.VitalPulseRate, 60, 100},
		{models.VitalSpO2, 90, 100},
	}
	for _, tc := range cases {
		limits, err := provider.Limits(tc.vital, models.PatientProfile{})
		if err != nil {
			t.Fatalf("%s: %v", tc.vital, err)
		}
		if limits.Min != tc.min || limits.Max != tc.max {
			t.Fatalf("%s: expected [%v,%v], got [%v,%v]", tc.vital, tc.min, tc.max, limits.Min, limits.Max)
		}
		if limits.WarningTolerancePercent != DefaultWarningTolerancePercent {
			t.Fatalf("%s: expected tolerance %v, got %v", tc.vital, DefaultWarningTolerancePercent, limits.WarningTolerancePercent)
		}
	}
}

func TestLimitsAgeAdjustments(t *testing.T) {
	provider, err := NewLimitProvider("", nil)
	if err != nil {
		t.Fatalf("new limit provider: %v", err)
	}

	cases := []struct {
		name     string
		age      *int
		min, max float64
	}{
		{"elderly", intPtr(70), 50, 90},
		{"pediatric", intPtr(12), 80, 120},
		{"adult", intPtr(40), 60, 100},
		{"exactly 65 is adult", intPtr(65), 60, 100},
		{"exactly 18 is adult", intPtr(18), 60, 100},
		{"unknown age is adult", nil, 60, 100},
	}
	for _, tc := range cases {
		limits, err := provider.Limits(models.VitalPulseRate, models.PatientProfile{Age: tc.age})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if limits.Min != tc.min || limits.Max != tc.max {
			t.Fatalf("%s: expected [%v,%v], got [%v,%v]", tc.name, tc.min, tc.max, limits.Min, limits.Max)
		}
	}
}

func TestLimitsAgeDoesNotAffectOtherVitals(t *testing.T) {
	provider, err := NewLimitProvider("", nil)
	if err != nil {
		t.Fatalf("new limit provider: %v", err)
	}
	limits, err := provider.Limits(models.VitalTemperature, models.PatientProfile{Age: intPtr(80)})
	if err != nil {
		t.Fatalf("limits: %v", err)
	}
	if limits.Min != 95 || limits.Max != 102 {
		t.Fatalf("temperature limits must not shift with age, got [%v,%v]", limits.Min, limits.Max)
	}
}

func TestLimitsUnknownVital(t *testing.T) {
	provider, err := NewLimitProvider("", nil)
	if err != nil {
		t.Fatalf("new limit provider: %v", err)
	}
	_, err = provider.Limits("bloodSugar", models.PatientProfile{})
	if !errors.Is(err, ErrUnknownVitalType) {
		t.Fatalf("expected ErrUnknownVitalType, got %v", err)
	}
}

func TestLimitsPackOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "limits.yaml")
	pack := `vitals:
  spo2:
    min: 92.0
    warningTolerancePercent: 2.0
`
	if err := os.WriteFile(path, []byte(pack), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	provider, err := NewLimitProvider(path, nil)
	if err != nil {
		t.Fatalf("new limit provider: %v", err)
	}
	limits, err := provider.Limits(models.VitalSpO2, models.PatientProfile{})
	if err != nil {
		t.Fatalf("limits: %v", err)
	}
	if limits.Min != 92 || limits.Max != 100 {
		t.Fatalf("expected [92,100], got [%v,%v]", limits.Min, limits.Max)
	}
	if limits.WarningTolerancePercent != 2.0 {
		t.Fatalf("expected tolerance 2.0, got %v", limits.WarningTolerancePercent)
	}
}

func TestLimitsPackMissingFileUsesDefaults(t *testing.T) {
	provider, err := NewLimitProvider("does-not-exist.yaml", nil)
	if err != nil {
		t.Fatalf("missing pack must fall back to defaults: %v", err)
	}
	if provider == nil {
		t.Fatalf("expected provider")
	}
}

func TestLimitsPackRejectsUnknownVital(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "limits.yaml")
	if err := os.WriteFile(path, []byte("vitals:\n  bloodSugar:\n    min: 70.0\n"), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	if _, err := NewLimitProvider(path, nil); !errors.Is(err, ErrUnknownVitalType) {
		t.Fatalf("expected ErrUnknownVitalType, got %v", err)
	}
}

func TestSetDefaultTolerance(t *testing.T) {
	provider, err := NewLimitProvider("", nil)
	if err != nil {
		t.Fatalf("new limit provider: %v", err)
	}
	if err := provider.SetDefaultTolerance(2.5); err != nil {
		t.Fatalf("set tolerance: %v", err)
	}
	for _, vital := range models.KnownVitalTypes() {
		limits, err := provider.Limits(vital, models.PatientProfile{})
		if err != nil {
			t.Fatalf("%s: %v", vital, err)
		}
		if limits.WarningTolerancePercent != 2.5 {
			t.Fatalf("%s: expected tolerance 2.5, got %v", vital, limits.WarningTolerancePercent)
		}
	}
	if err := provider.SetDefaultTolerance(55); !errors.Is(err, ErrInvalidTolerance) {
		t.Fatalf("expected ErrInvalidTolerance, got %v", err)
	}
}

func TestValidateTolerance(t *testing.T) {
	if err := ValidateTolerance(1.5); err != nil {
		t.Fatalf("1.5%% should be valid: %v", err)
	}
	if err := ValidateTolerance(49.9); err != nil {
		t.Fatalf("49.9%% should be valid: %v", err)
	}
	if err := ValidateTolerance(50); !errors.Is(err, ErrInvalidTolerance) {
		t.Fatalf("50%% must be rejected, got %v", err)
	}
	if err := ValidateTolerance(-1); !errors.Is(err, ErrInvalidTolerance) {
		t.Fatalf("negative tolerance must be rejected, got %v", err)
	}
}
