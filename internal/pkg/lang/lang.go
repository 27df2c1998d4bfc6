// Package lang detects the caller's preferred language from the
// Accept-Language header and maps it onto the set of locales the
// frontend ships translations for.
package lang

import (
	"golang.org/x/text/language"
)

// DefaultLocale is used when no supported language matches.
const DefaultLocale = "en"

var supported = []language.Tag{
	language.English,    // en (first entry is the fallback)
	language.Spanish,    // es
	language.French,     // fr
	language.German,     // de
	language.Filipino,   // fil
	language.Indonesian, // id
}

var matcher = language.NewMatcher(supported)

// Detect returns the best supported locale for an Accept-Language header.
// An empty or unparseable header yields DefaultLocale.
func Detect(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}

	base, _ := supported[index].Base()
	return base.String()
}

var greetings = map[string]string{
	"en":  "You're invited to join",
	"es":  "Te han invitado a unirte a",
	"fr":  "Vous êtes invité à rejoindre",
	"de":  "Du bist eingeladen beizutreten",
	"fil": "Inimbitahan ka na sumali sa",
	"id":  "Anda diundang untuk bergabung dengan",
}

// Greeting returns the invite greeting for a locale, falling back to English.
func Greeting(locale string) string {
	if g, ok := greetings[locale]; ok {
		return g
	}
	return greetings[DefaultLocale]
}
