package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/vitalstack/vitals-engine/internal/engine"
	"github.com/vitalstack/vitals-engine/internal/metrics"
	"github.com/vitalstack/vitals-engine/internal/models"
	"github.com/vitalstack/vitals-engine/internal/trends"
	"github.com/vitalstack/vitals-engine/internal/utils"
)

// MonitorService fronts the assessment engine: it records metrics and latency
// percentiles around each batch and exposes trend windows.
type MonitorService struct {
	logger    *slog.Logger
	engine    *engine.Engine
	latencies *utils.LatencyTracker
}

// NewMonitorService constructs the service facade.
func NewMonitorService(logger *slog.Logger, eng *engine.Engine) *MonitorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MonitorService{
		logger:    logger,
		engine:    eng,
		latencies: utils.NewLatencyTracker(1024),
	}
}

// Monitor runs the batch pipeline and observes per-vital outcomes. Caller
// mistakes (unsupported language, invalid tolerance) propagate unchanged so
// the transport can map them to client errors.
func (s *MonitorService) Monitor(ctx context.Context, req models.MonitorRequest) (models.MonitoringReport, error) {
	start := time.Now()
	report, err := s.engine.Monitor(ctx, req)
	duration := time.Since(start)
	if err != nil {
		s.logger.Error("monitor batch rejected", slog.Any("error", err))
		return models.MonitoringReport{}, err
	}

	metrics.ObserveMonitor(duration)
	for vital, entry := range report.Assessments {
		metrics.ObserveAssessment(string(vital), outcomeLabel(entry))
	}

	s.latencies.Observe(duration)
	if count := s.latencies.Count(); count >= 20 && count%20 == 0 {
		p95 := s.latencies.Percentile(95)
		s.logger.Info("monitor latency", slog.Duration("p95", p95), slog.Int("samples", count))
	}

	return report, nil
}

// TrendWindow is the trends payload: recent readings plus their summary.
type TrendWindow struct {
	VitalType models.VitalType `json:"vital_type"`
	Readings  []models.Reading `json:"readings"`
	Summary   trends.Summary   `json:"summary"`
}

// Trends returns the most recent limit readings for a vital with a summary.
func (s *MonitorService) Trends(ctx context.Context, vitalType string, limit int) (TrendWindow, error) {
	vital := models.VitalType(vitalType)
	readings, err := s.engine.VitalTrends(vital, limit)
	if err != nil {
		return TrendWindow{}, utils.NewAppError("trends", "failed to read vital history", err)
	}
	return TrendWindow{
		VitalType: vital,
		Readings:  readings,
		Summary:   trends.Summarize(readings),
	}, nil
}

func outcomeLabel(entry models.AssessmentEntry) string {
	if entry.Condition == models.ConditionError {
		return metrics.OutcomeError
	}
	switch entry.Condition.Severity() {
	case models.SeverityCritical:
		return metrics.OutcomeCritical
	case models.SeverityWarning:
		return metrics.OutcomeWarning
	default:
		return metrics.OutcomeNormal
	}
}
