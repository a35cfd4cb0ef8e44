package models

import (
	"encoding/json"
	"testing"
)

func TestVitalInputScalar(t *testing.T) {
	var in VitalInput
	if err := json.Unmarshal([]byte(`98.6`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if in.Value == nil || *in.Value != 98.6 {
		t.Fatalf("expected value 98.6, got %+v", in)
	}
	if in.Invalid != "" {
		t.Fatalf("scalar input must not be invalid: %q", in.Invalid)
	}
}

func TestVitalInputRecord(t *testing.T) {
	var in VitalInput
	if err := json.Unmarshal([]byte(`{"value": 36.6, "unit": "C", "source": "sensor"}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if in.Value == nil || *in.Value != 36.6 {
		t.Fatalf("expected value 36.6, got %+v", in)
	}
	if in.Unit != "C" || in.Source != "sensor" {
		t.Fatalf("expected unit C / source sensor, got %+v", in)
	}
}

func TestVitalInputNonNumericValue(t *testing.T) {
	var in VitalInput
	if err := json.Unmarshal([]byte(`{"value": "high"}`), &in); err != nil {
		t.Fatalf("non-numeric value must not fail the decode: %v", err)
	}
	if in.Invalid == "" {
		t.Fatalf("expected invalid marker")
	}
	if in.Value != nil {
		t.Fatalf("expected nil value, got %v", *in.Value)
	}
}

func TestVitalInputMissingValue(t *testing.T) {
	var in VitalInput
	if err := json.Unmarshal([]byte(`{"unit": "F"}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if in.Value != nil || in.Invalid != "" {
		t.Fatalf("missing value stays nil without invalid marker, got %+v", in)
	}
}

func TestVitalInputUninterpretableShape(t *testing.T) {
	var in VitalInput
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &in); err != nil {
		t.Fatalf("bad shape must not fail the decode: %v", err)
	}
	if in.Invalid == "" {
		t.Fatalf("expected invalid marker for array input")
	}
}

func TestMonitorRequestMixedShapes(t *testing.T) {
	payload := `{
		"vitals": {
			"temperature": {"value": 98.6, "unit": "F"},
			"pulseRate": 72,
			"spo2": {"value": "low"}
		},
		"profile": {"age": 70, "profileType": "elderly"},
		"language": "de"
	}`
	var req MonitorRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(req.Vitals) != 3 {
		t.Fatalf("expected 3 vitals, got %d", len(req.Vitals))
	}
	if req.Vitals["pulseRate"].Value == nil || *req.Vitals["pulseRate"].Value != 72 {
		t.Fatalf("scalar pulse not decoded: %+v", req.Vitals["pulseRate"])
	}
	if req.Vitals["spo2"].Invalid == "" {
		t.Fatalf("non-numeric spo2 must be marked invalid")
	}
	if req.Profile == nil || req.Profile.Age == nil || *req.Profile.Age != 70 {
		t.Fatalf("profile not decoded: %+v", req.Profile)
	}
	if req.Language != "de" {
		t.Fatalf("expected language de, got %q", req.Language)
	}
}
