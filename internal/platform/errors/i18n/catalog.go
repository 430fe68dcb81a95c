// Package i18n localizes user-facing error messages with x/text.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the fallback locale for error messages.
const BaseLocale = "en-US"

var supported = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}

var matcher = language.NewMatcher(supported)

// Resolve maps a requested locale to the closest supported tag.
func Resolve(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.AmericanEnglish
	}
	requested, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(requested) == 0 {
		return language.AmericanEnglish
	}
	_, index, _ := matcher.Match(requested...)
	return supported[index]
}

// Localize returns the resolved locale and the user message for code.
// Unknown codes fall back to the generic message.
func Localize(locale, code string) (string, string) {
	tag := Resolve(locale)
	printer := message.NewPrinter(tag)
	if _, ok := userMessages[code]; !ok {
		code = codeUnknown
	}
	return tag.String(), printer.Sprintf(message.Key(code, userMessages[code]))
}
