package engine

import (
	"fmt"

	"github.com/vitalstack/vitals-engine/internal/models"
)

// Supported display languages. Requesting any other code is a caller error,
// never a silent fallback.
const (
	LanguageEnglish = "en"
	LanguageGerman  = "de"
)

// messageTables holds exactly one template per non-normal condition per
// language. Critical templates carry a CRITICAL marker token and warnings a
// WARNING token (KRITISCH/WARNUNG in German); the tokens are display-only,
// aggregation uses the structural severity on the condition.
var messageTables = map[string]map[models.Condition]string{
	LanguageEnglish: {
		models.ConditionHypothermia:  "CRITICAL: Severe hypothermia detected",
		models.ConditionNearHypo:     "WARNING: Temperature approaching hypothermia range",
		models.ConditionNearHyper:    "WARNING: Temperature approaching hyperthermia range",
		models.ConditionHyperthermia: "CRITICAL: Severe hyperthermia detected",

		models.ConditionBradycardia: "CRITICAL: Severe bradycardia detected",
		models.ConditionNearBrady:   "WARNING: Heart rate approaching bradycardia range",
		models.ConditionNearTachy:   "WARNING: Heart rate approaching tachycardia range",
		models.ConditionTachycardia: "CRITICAL: Severe tachycardia detected",

		models.ConditionLowOxygen:      "CRITICAL: Severe hypoxemia detected",
		models.ConditionNearLowOxygen:  "WARNING: Oxygen saturation approaching critical low",
		models.ConditionNearHighOxygen: "WARNING: Oxygen saturation unusually high",
		models.ConditionHighOxygen:     "CRITICAL: Hyperoxemia detected",
	},
	LanguageGerman: {
		models.ConditionHypothermia:  "KRITISCH: Schwere Unterkühlung erkannt",
		models.ConditionNearHypo:     "WARNUNG: Temperatur nähert sich Unterkühlungsbereich",
		models.ConditionNearHyper:    "WARNUNG: Temperatur nähert sich Überhitzungsbereich",
		models.ConditionHyperthermia: "KRITISCH: Schwere Überhitzung erkannt",

		models.ConditionBradycardia: "KRITISCH: Schwere Bradykardie erkannt",
		models.ConditionNearBrady:   "WARNUNG: Herzfrequenz nähert sich Bradykardie",
		models.ConditionNearTachy:   "WARNUNG: Herzfrequenz nähert sich Tachykardie",
		models.ConditionTachycardia: "KRITISCH: Schwere Tachykardie erkannt",

		models.ConditionLowOxygen:      "KRITISCH: Schwere Hypoxämie erkannt",
		models.ConditionNearLowOxygen:  "WARNUNG: Sauerstoffsättigung nähert sich kritischem Niveau",
		models.ConditionNearHighOxygen: "WARNUNG: Sauerstoffsättigung ungewöhnlich hoch",
		models.ConditionHighOxygen:     "KRITISCH: Hyperoxämie erkannt",
	},
}

// SupportedLanguage reports whether a message table exists for the code.
func SupportedLanguage(lang string) bool {
	_, ok := messageTables[lang]
	return ok
}

// SupportedLanguages lists the available language codes.
func SupportedLanguages() []string {
	return []string{LanguageEnglish, LanguageGerman}
}

// MessageFor resolves the display message for a condition. NORMAL resolves to
// the empty string in every language.
func MessageFor(cond models.Condition, lang string) (string, error) {
	table, ok := messageTables[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return table[cond], nil
}
