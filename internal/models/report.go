package models

import "time"

// AssessmentResult is the output of one per-vital pipeline run.
type AssessmentResult struct {
	VitalType VitalType `json:"vital_type"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Condition Condition `json:"condition"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorRecord captures a per-vital failure without aborting the batch.
type ErrorRecord struct {
	VitalType VitalType `json:"vital_type"`
	Kind      string    `json:"error_kind"`
	Detail    string    `json:"error"`
}

// AssessmentEntry is one slot in the report's assessments map: either a full
// assessment or an error record (condition == ERROR).
type AssessmentEntry struct {
	Value     *float64  `json:"value,omitempty"`
	Unit      string    `json:"unit,omitempty"`
	Condition Condition `json:"condition"`
	Message   string    `json:"message,omitempty"`
	Timestamp string    `json:"timestamp,omitempty"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Alert pairs a vital type with its resolved message.
type Alert struct {
	VitalType VitalType `json:"vital_type"`
	Message   string    `json:"message"`
}

// MonitoringReport is the aggregate output of one monitor call. Built fresh
// per call and never persisted by the engine.
type MonitoringReport struct {
	ReportID        string                        `json:"report_id"`
	Timestamp       time.Time                     `json:"timestamp"`
	PatientProfile  string                        `json:"patient_profile"`
	Assessments     map[VitalType]AssessmentEntry `json:"assessments"`
	OverallStatus   Severity                      `json:"overall_status"`
	CriticalAlerts  []Alert                       `json:"critical_alerts"`
	Warnings        []Alert                       `json:"warnings"`
	Recommendations []string                      `json:"recommendations"`
}
