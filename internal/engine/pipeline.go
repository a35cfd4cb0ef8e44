package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vitalstack/vitals-engine/internal/history"
	"github.com/vitalstack/vitals-engine/internal/models"
)

// Engine orchestrates the per-vital assessment pipeline: normalize ->
// limits -> classify -> condition mapping -> message resolution. Failures in
// one vital never abort assessment of its siblings.
type Engine struct {
	logger   *slog.Logger
	limits   *LimitProvider
	history  *history.Store
	profile  models.PatientProfile
	language string
}

// New constructs an engine with a default patient profile and display
// language. An unsupported default language is a configuration error raised
// immediately.
func New(logger *slog.Logger, limits *LimitProvider, store *history.Store, profile models.PatientProfile, language string) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if limits == nil {
		var err error
		limits, err = NewLimitProvider("", logger)
		if err != nil {
			return nil, err
		}
	}
	if store == nil {
		store = history.NewStore(logger, nil, 0, 0)
	}
	if language == "" {
		language = LanguageEnglish
	}
	if !SupportedLanguage(language) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	return &Engine{
		logger:   logger,
		limits:   limits,
		history:  store,
		profile:  profile,
		language: language,
	}, nil
}

// NewForPatient builds an engine with built-in limits and a fresh in-memory
// history, defaulted to the given patient.
func NewForPatient(logger *slog.Logger, age *int, profileType, language string) (*Engine, error) {
	return New(logger, nil, nil, models.PatientProfile{Age: age, ProfileType: profileType}, language)
}

// Assess runs the pipeline for a single reading and appends it to the
// vital's history on success. Identical readings under the same profile
// always produce the identical condition and message.
func (e *Engine) Assess(ctx context.Context, vital models.VitalType, reading models.Reading, profile models.PatientProfile, language string) (models.AssessmentResult, error) {
	return e.assess(ctx, vital, reading, profile, language, nil)
}

func (e *Engine) assess(ctx context.Context, vital models.VitalType, reading models.Reading, profile models.PatientProfile, language string, tolOverride *float64) (models.AssessmentResult, error) {
	if !vital.Known() {
		return models.AssessmentResult{}, fmt.Errorf("%w: %q", ErrUnknownVitalType, vital)
	}

	value, err := Normalize(reading.Value, reading.Unit, vital)
	if err != nil {
		return models.AssessmentResult{}, err
	}

	limits, err := e.limits.Limits(vital, profile)
	if err != nil {
		return models.AssessmentResult{}, err
	}
	if tolOverride != nil {
		limits.WarningTolerancePercent = *tolOverride
	}

	condition, err := Classify(vital, value, limits)
	if err != nil {
		return models.AssessmentResult{}, err
	}

	message, err := MessageFor(condition, language)
	if err != nil {
		return models.AssessmentResult{}, err
	}

	if condition != models.ConditionNormal {
		e.logger.Warn("abnormal vital",
			slog.String("vital_type", string(vital)),
			slog.Float64("value", value),
			slog.String("condition", string(condition)),
		)
	}

	e.history.Append(ctx, vital, reading)

	return models.AssessmentResult{
		VitalType: vital,
		Value:     reading.Value,
		Unit:      reading.Unit,
		Condition: condition,
		Message:   message,
		Timestamp: reading.Timestamp,
	}, nil
}

// Monitor assesses a batch of raw readings and folds the per-vital outcomes
// into one report. Caller mistakes (unsupported language, invalid tolerance)
// return an error immediately; data-quality problems in individual vitals are
// isolated into error entries so every requested vital appears in the report.
func (e *Engine) Monitor(ctx context.Context, req models.MonitorRequest) (models.MonitoringReport, error) {
	profile := e.profile
	if req.Profile != nil {
		profile = *req.Profile
	}
	language := e.language
	if req.Language != "" {
		if !SupportedLanguage(req.Language) {
			return models.MonitoringReport{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.Language)
		}
		language = req.Language
	}
	if req.WarningTolerancePercent != nil {
		if err := ValidateTolerance(*req.WarningTolerancePercent); err != nil {
			return models.MonitoringReport{}, err
		}
	}

	outcomes := make([]outcome, 0, len(req.Vitals))
	trendData := false
	for _, key := range orderedVitalKeys(req.Vitals) {
		vital := models.VitalType(key)
		input := req.Vitals[key]

		reading, err := readingFromInput(input)
		if err == nil {
			var result models.AssessmentResult
			result, err = e.assess(ctx, vital, reading, profile, language, req.WarningTolerancePercent)
			if err == nil {
				outcomes = append(outcomes, outcome{vital: vital, result: &result})
				if e.history.Len(vital) > 1 {
					trendData = true
				}
				continue
			}
		}
		e.logger.Error("vital assessment failed",
			slog.String("vital_type", string(vital)),
			slog.String("kind", Kind(err)),
			slog.Any("error", err),
		)
		outcomes = append(outcomes, outcome{
			vital: vital,
			errRecord: &models.ErrorRecord{
				VitalType: vital,
				Kind:      Kind(err),
				Detail:    err.Error(),
			},
		})
	}

	return buildReport(profile.Descriptor(), outcomes, trendData), nil
}

// VitalTrends returns the most recent limit readings for the vital in
// chronological order. Does not mutate history.
func (e *Engine) VitalTrends(vital models.VitalType, limit int) ([]models.Reading, error) {
	if !vital.Known() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVitalType, vital)
	}
	return e.history.Recent(vital, limit), nil
}

// readingFromInput converts a boundary input into a canonical Reading.
func readingFromInput(in models.VitalInput) (models.Reading, error) {
	if in.Invalid != "" {
		return models.Reading{}, fmt.Errorf("%w: %s", ErrNonNumericValue, in.Invalid)
	}
	if in.Value == nil {
		return models.Reading{}, fmt.Errorf("%w: value field is required", ErrMissingValue)
	}
	return models.NewReading(*in.Value, in.Unit, in.Source), nil
}

// orderedVitalKeys yields the batch keys deterministically: known vitals in
// canonical order first, then unknown keys sorted.
func orderedVitalKeys(vitals map[string]models.VitalInput) []string {
	keys := make([]string, 0, len(vitals))
	for _, vital := range models.KnownVitalTypes() {
		if _, ok := vitals[string(vital)]; ok {
			keys = append(keys, string(vital))
		}
	}
	unknown := make([]string, 0)
	for key := range vitals {
		if !models.VitalType(key).Known() {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return append(keys, unknown...)
}
