package domain

import (
	"fmt"
	"strings"
	"time"
)

// Language is the display language chosen during onboarding.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageUrdu    Language = "pk" // Urdu script and Roman Urdu
)

// DefaultLanguage is used when no preference is stored.
const DefaultLanguage = LanguageEnglish

// ParseLanguage parses a language code. Empty input yields DefaultLanguage.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return DefaultLanguage, nil
	case LanguageEnglish, LanguageUrdu:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
	}
}

// Profile is the cosmetic onboarding record. It does not carry credentials.
type Profile struct {
	Name      string
	Language  Language
	CreatedAt time.Time
}

// DefaultProfileName is used when onboarding is completed without a name.
const DefaultProfileName = "User"

// Theme is the persisted light/dark preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme parses a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
