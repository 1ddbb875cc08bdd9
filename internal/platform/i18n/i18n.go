// Package i18n holds the English and Tagalog strings shown in the app.
package i18n

import "strings"

type Language string

const (
	English Language = "EN"
	Tagalog Language = "TL"
)

// Parse returns the language for s, defaulting to English for anything unknown.
func Parse(s string) Language {
	switch Language(strings.ToUpper(strings.TrimSpace(s))) {
	case Tagalog:
		return Tagalog
	default:
		return English
	}
}

// Toggle returns the other language, the way the language switch on every screen works.
func (l Language) Toggle() Language {
	if l == Tagalog {
		return English
	}
	return Tagalog
}

// T looks up key in l, falling back to English and then to the key itself.
func (l Language) T(key string) string {
	if s, ok := translations[l][key]; ok {
		return s
	}
	if s, ok := translations[English][key]; ok {
		return s
	}
	return key
}

// Dict returns every string for l with the English strings filling any gaps.
func (l Language) Dict() map[string]string {
	ret := make(map[string]string, len(translations[English]))
	for k, v := range translations[English] {
		ret[k] = v
	}
	for k, v := range translations[l] {
		ret[k] = v
	}
	return ret
}

// RatingLabel returns the label for a star rating, or the tap-to-rate hint when unset.
func (l Language) RatingLabel(rating int) string {
	switch rating {
	case 1:
		return l.T("poor")
	case 2:
		return l.T("fair")
	case 3:
		return l.T("good")
	case 4:
		return l.T("veryGood")
	case 5:
		return l.T("excellent")
	default:
		return l.T("tapToRate")
	}
}
