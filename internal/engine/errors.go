package engine

import "errors"

// Sentinel error kinds for the assessment pipeline. Per-vital failures are
// converted into report error entries keyed by Kind; configuration mistakes
// (language, tolerance) are returned to the caller directly.
var (
	ErrInvalidUnit         = errors.New("invalid unit")
	ErrNonNumericValue     = errors.New("non-numeric value")
	ErrMissingValue        = errors.New("missing value")
	ErrUnknownVitalType    = errors.New("unknown vital type")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidTolerance    = errors.New("invalid tolerance configuration")
)

// Kind maps a pipeline error to its stable report token.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidUnit):
		return "InvalidUnit"
	case errors.Is(err, ErrNonNumericValue):
		return "NonNumericValue"
	case errors.Is(err, ErrMissingValue):
		return "MissingValue"
	case errors.Is(err, ErrUnknownVitalType):
		return "UnknownVitalType"
	case errors.Is(err, ErrUnsupportedLanguage):
		return "UnsupportedLanguage"
	case errors.Is(err, ErrInvalidTolerance):
		return "InvalidToleranceConfiguration"
	default:
		return "Internal"
	}
}
