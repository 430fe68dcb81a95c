package i18n

import "testing"

func TestResolve(t *testing.T) {
	tests := map[string]string{
		"":                "en-US",
		"en":              "en-US",
		"pt-BR":           "pt-BR",
		"pt":              "pt-BR",
		"fr-FR":           "en-US",
		"pt-BR,en;q=0.8":  "pt-BR",
		"not a language!": "en-US",
	}
	for locale, want := range tests {
		if got := Resolve(locale).String(); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", locale, got, want)
		}
	}
}

func TestLocalize(t *testing.T) {
	locale, msg := Localize("pt-BR", codeOddsUnknownPreset)
	if locale != "pt-BR" {
		t.Fatalf("locale = %q", locale)
	}
	if msg != portugueseMessages[codeOddsUnknownPreset] {
		t.Fatalf("message = %q", msg)
	}

	_, msg = Localize("en-US", "NOT_A_CODE")
	if msg != userMessages[codeUnknown] {
		t.Fatalf("expected generic message, got %q", msg)
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	for code := range userMessages {
		if _, ok := portugueseMessages[code]; !ok {
			t.Errorf("missing pt-BR message for %s", code)
		}
	}
}
