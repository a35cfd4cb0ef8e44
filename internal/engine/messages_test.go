package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/vitalstack/vitals-engine/internal/models"
)

func TestMessageMarkers(t *testing.T) {
	for cond, tier := range map[models.Condition]models.Severity{
		models.ConditionHypothermia: models.SeverityCritical,
		models.ConditionNearHypo:    models.SeverityWarning,
		models.ConditionTachycardia: models.SeverityCritical,
		models.ConditionNearTachy:   models.SeverityWarning,
		models.ConditionLowOxygen:   models.SeverityCritical,
	} {
		en, err := MessageFor(cond, LanguageEnglish)
		if err != nil {
			t.Fatalf("%s en: %v", cond, err)
		}
		de, err := MessageFor(cond, LanguageGerman)
		if err != nil {
			t.Fatalf("%s de: %v", cond, err)
		}
		if en == de {
			t.Fatalf("%s: languages must differ, both %q", cond, en)
		}
		switch tier {
		case models.SeverityCritical:
			if !strings.HasPrefix(en, "CRITICAL:") || !strings.HasPrefix(de, "KRITISCH:") {
				t.Fatalf("%s: missing critical markers: %q / %q", cond, en, de)
			}
		case models.SeverityWarning:
			if !strings.HasPrefix(en, "WARNING:") || !strings.HasPrefix(de, "WARNUNG:") {
				t.Fatalf("%s: missing warning markers: %q / %q", cond, en, de)
			}
		}
	}
}

func TestMessageNormalIsEmpty(t *testing.T) {
	for _, lang := range SupportedLanguages() {
		msg, err := MessageFor(models.ConditionNormal, lang)
		if err != nil {
			t.Fatalf("%s: %v", lang, err)
		}
		if msg != "" {
			t.Fatalf("%s: NORMAL must resolve to empty, got %q", lang, msg)
		}
	}
}

func TestMessageUnsupportedLanguage(t *testing.T) {
	if _, err := MessageFor(models.ConditionHypothermia, "fr"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if SupportedLanguage("fr") {
		t.Fatalf("fr must not be supported")
	}
}

func TestMessageEveryConditionCovered(t *testing.T) {
	conditions := []models.Condition{
		models.ConditionHypothermia, models.ConditionNearHypo, models.ConditionNearHyper, models.ConditionHyperthermia,
		models.ConditionBradycardia, models.ConditionNearBrady, models.ConditionNearTachy, models.ConditionTachycardia,
		models.ConditionLowOxygen, models.ConditionNearLowOxygen, models.ConditionNearHighOxygen, models.ConditionHighOxygen,
	}
	for _, lang := range SupportedLanguages() {
		for _, cond := range conditions {
			msg, err := MessageFor(cond, lang)
			if err != nil {
				t.Fatalf("%s %s: %v", lang, cond, err)
			}
			if msg == "" {
				t.Fatalf("%s %s: missing message", lang, cond)
			}
		}
	}
}
