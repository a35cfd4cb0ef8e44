package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/vitalstack/vitals-engine/internal/models"
)

// Recommendation texts, appended in priority order and at most once each.
const (
	RecommendImmediate = "Immediate medical attention required"
	RecommendMonitor   = "Monitor closely and consider medical consultation"
	RecommendTrends    = "Trending data available for analysis"
)

// outcome is one per-vital pipeline result: either a full assessment or an
// error record.
type outcome struct {
	vital     models.VitalType
	result    *models.AssessmentResult
	errRecord *models.ErrorRecord
}

// buildReport folds per-vital outcomes into a monitoring report. Bucketing
// uses the structural severity carried by each condition; error entries are
// surfaced in the assessments map but never force the overall status.
func buildReport(patientDescriptor string, outcomes []outcome, trendData bool) models.MonitoringReport {
	report := models.MonitoringReport{
		ReportID:        uuid.NewString(),
		Timestamp:       time.Now().UTC(),
		PatientProfile:  patientDescriptor,
		Assessments:     make(map[models.VitalType]models.AssessmentEntry, len(outcomes)),
		OverallStatus:   models.SeverityNormal,
		CriticalAlerts:  []models.Alert{},
		Warnings:        []models.Alert{},
		Recommendations: []string{},
	}

	for _, out := range outcomes {
		if out.errRecord != nil {
			report.Assessments[out.vital] = models.AssessmentEntry{
				Condition: models.ConditionError,
				ErrorKind: out.errRecord.Kind,
				Error:     out.errRecord.Detail,
			}
			continue
		}

		result := out.result
		value := result.Value
		report.Assessments[out.vital] = models.AssessmentEntry{
			Value:     &value,
			Unit:      result.Unit,
			Condition: result.Condition,
			Message:   result.Message,
			Timestamp: result.Timestamp.Format(time.RFC3339),
		}

		switch result.Condition.Severity() {
		case models.SeverityCritical:
			report.CriticalAlerts = append(report.CriticalAlerts, models.Alert{VitalType: out.vital, Message: result.Message})
		case models.SeverityWarning:
			report.Warnings = append(report.Warnings, models.Alert{VitalType: out.vital, Message: result.Message})
		}
	}

	switch {
	case len(report.CriticalAlerts) > 0:
		report.OverallStatus = models.SeverityCritical
		report.Recommendations = append(report.Recommendations, RecommendImmediate)
	case len(report.Warnings) > 0:
		report.OverallStatus = models.SeverityWarning
		report.Recommendations = append(report.Recommendations, RecommendMonitor)
	}
	if trendData {
		report.Recommendations = append(report.Recommendations, RecommendTrends)
	}

	return report
}
