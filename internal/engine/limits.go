package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitalstack/vitals-engine/internal/models"
)

// DefaultWarningTolerancePercent is the early-warning band width applied when
// no override is configured.
const DefaultWarningTolerancePercent = 1.5

// LimitProvider resolves the acceptable range for a vital from the patient
// profile. Ranges are derived per assessment and never cached, since age can
// change the limits between calls.
type LimitProvider struct {
	table  map[models.VitalType]limitSpec
	logger *slog.Logger
}

type limitSpec struct {
	Min       float64
	Max       float64
	Tolerance float64
	AgeBands  []ageBand
}

// ageBand substitutes a range when the patient age matches. Bands are
// evaluated in declaration order; the first match wins.
type ageBand struct {
	OverAge  *int
	UnderAge *int
	Min      float64
	Max      float64
}

// limitsPackFile is the YAML root of an optional limits pack overriding the
// built-in ranges.
type limitsPackFile struct {
	Vitals map[string]limitsPackEntry `yaml:"vitals"`
}

type limitsPackEntry struct {
	Min                     *float64             `yaml:"min"`
	Max                     *float64             `yaml:"max"`
	WarningTolerancePercent *float64             `yaml:"warningTolerancePercent"`
	AgeAdjustments          []limitsPackAgeEntry `yaml:"ageAdjustments"`
}

type limitsPackAgeEntry struct {
	OverAge  *int    `yaml:"overAge"`
	UnderAge *int    `yaml:"underAge"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
}

func defaultLimitTable() map[models.VitalType]limitSpec {
	over65, under18 := 65, 18
	return map[models.VitalType]limitSpec{
		models.VitalTemperature: {Min: 95, Max: 102, Tolerance: DefaultWarningTolerancePercent},
		models.VitalPulseRate: {
			Min: 60, Max: 100, Tolerance: DefaultWarningTolerancePercent,
			AgeBands: []ageBand{
				{OverAge: &over65, Min: 50, Max: 90},
				{UnderAge: &under18, Min: 80, Max: 120},
			},
		},
		models.VitalSpO2: {Min: 90, Max: 100, Tolerance: DefaultWarningTolerancePercent},
	}
}

// NewLimitProvider builds a provider from the built-in ranges, optionally
// overridden by a YAML limits pack. A missing pack file falls back to the
// defaults; a malformed or invalid one is a startup error.
func NewLimitProvider(path string, logger *slog.Logger) (*LimitProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	provider := &LimitProvider{table: defaultLimitTable(), logger: logger}

	if path == "" {
		return provider, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("limits pack not found, using built-in ranges", slog.String("path", path))
			return provider, nil
		}
		return nil, fmt.Errorf("read limits pack: %w", err)
	}

	var pack limitsPackFile
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parse limits pack: %w", err)
	}
	if err := provider.apply(pack); err != nil {
		return nil, err
	}
	logger.Info("limits pack loaded", slog.String("path", path))
	return provider, nil
}

func (p *LimitProvider) apply(pack limitsPackFile) error {
	for name, entry := range pack.Vitals {
		vital := models.VitalType(name)
		spec, ok := p.table[vital]
		if !ok {
			return fmt.Errorf("%w: %q in limits pack", ErrUnknownVitalType, name)
		}
		if entry.Min != nil {
			spec.Min = *entry.Min
		}
		if entry.Max != nil {
			spec.Max = *entry.Max
		}
		if entry.WarningTolerancePercent != nil {
			spec.Tolerance = *entry.WarningTolerancePercent
		}
		if len(entry.AgeAdjustments) > 0 {
			bands := make([]ageBand, 0, len(entry.AgeAdjustments))
			for _, adj := range entry.AgeAdjustments {
				bands = append(bands, ageBand{
					OverAge:  adj.OverAge,
					UnderAge: adj.UnderAge,
					Min:      adj.Min,
					Max:      adj.Max,
				})
			}
			spec.AgeBands = bands
		}
		if spec.Max <= spec.Min {
			return fmt.Errorf("%w: %s range [%v,%v] is empty", ErrInvalidTolerance, name, spec.Min, spec.Max)
		}
		if err := ValidateTolerance(spec.Tolerance); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		p.table[vital] = spec
	}
	return nil
}

// SetDefaultTolerance overwrites the warning tolerance for every vital.
// Used for the deployment-wide override; per-request overrides are applied
// downstream on the resolved range.
func (p *LimitProvider) SetDefaultTolerance(pct float64) error {
	if err := ValidateTolerance(pct); err != nil {
		return err
	}
	for vital, spec := range p.table {
		spec.Tolerance = pct
		p.table[vital] = spec
	}
	return nil
}

// Limits returns the range for the vital under the given profile. Unknown
// vital types are an error, never a silent fallback range.
func (p *LimitProvider) Limits(vital models.VitalType, profile models.PatientProfile) (models.LimitRange, error) {
	spec, ok := p.table[vital]
	if !ok {
		return models.LimitRange{}, fmt.Errorf("%w: %q", ErrUnknownVitalType, vital)
	}

	min, max := spec.Min, spec.Max
	if profile.Age != nil {
		for _, band := range spec.AgeBands {
			if band.OverAge != nil && *profile.Age > *band.OverAge {
				min, max = band.Min, band.Max
				break
			}
			if band.UnderAge != nil && *profile.Age < *band.UnderAge {
				min, max = band.Min, band.Max
				break
			}
		}
	}

	return models.LimitRange{Min: min, Max: max, WarningTolerancePercent: spec.Tolerance}, nil
}

// ValidateTolerance rejects tolerance percentages that would collapse the
// normal band to zero or negative width.
func ValidateTolerance(pct float64) error {
	if pct < 0 {
		return fmt.Errorf("%w: tolerance %v%% is negative", ErrInvalidTolerance, pct)
	}
	if 2*pct >= 100 {
		return fmt.Errorf("%w: tolerance %v%% leaves no normal band", ErrInvalidTolerance, pct)
	}
	return nil
}
