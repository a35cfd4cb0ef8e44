package models

import (
	"encoding/json"
	"fmt"
)

// VitalInput is one raw reading as submitted by a caller. It accepts either a
// bare number or a {value, unit, source} record; the shape is resolved here at
// the boundary so the pipeline never branches on it. A value that cannot be
// interpreted as a number is recorded in Invalid rather than failing the
// whole batch decode.
type VitalInput struct {
	Value   *float64
	Unit    string
	Source  string
	Invalid string
}

type vitalInputRecord struct {
	Value  json.RawMessage `json:"value"`
	Unit   string          `json:"unit"`
	Source string          `json:"source"`
}

// UnmarshalJSON resolves the scalar and record input shapes.
func (in *VitalInput) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		in.Value = &scalar
		return nil
	}

	var record vitalInputRecord
	if err := json.Unmarshal(data, &record); err != nil {
		in.Invalid = fmt.Sprintf("cannot interpret %s as a reading", compact(data))
		return nil
	}
	in.Unit = record.Unit
	in.Source = record.Source
	if len(record.Value) == 0 {
		return nil
	}
	var value float64
	if err := json.Unmarshal(record.Value, &value); err != nil {
		in.Invalid = fmt.Sprintf("value %s is not numeric", compact(record.Value))
		return nil
	}
	in.Value = &value
	return nil
}

func compact(raw []byte) string {
	const limit = 40
	s := string(raw)
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}

// MonitorRequest is the batch input: one raw reading per vital-type key.
type MonitorRequest struct {
	Vitals                  map[string]VitalInput `json:"vitals"`
	Profile                 *PatientProfile       `json:"profile,omitempty"`
	Language                string                `json:"language,omitempty"`
	WarningTolerancePercent *float64              `json:"warningTolerancePercent,omitempty"`
}
