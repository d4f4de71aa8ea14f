// Package stringlib provides the string canonicalization used for counting keys and dictionary lookups
package stringlib

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

/***************************************************************************************************************
****************************************************************************************************************
* Normalization ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Normalize composes t into NFC and lowercases it. Every counting key, word
// list member and dictionary lookup key goes through here.
func Normalize(t string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(t))
}

// IsAlpha tells whether s is non-empty and made of letters only
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

/***************************************************************************************************************
****************************************************************************************************************
* Casing variants **********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Capitalize title-cases the first rune and lowercases the rest
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + cases.Lower(language.Und).String(s[size:])
}

// Title capitalizes every space or hyphen separated part of s
func Title(s string) string {
	var b strings.Builder
	start := true
	for _, r := range s {
		if start {
			b.WriteRune(unicode.ToTitle(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		start = r == ' ' || r == '-'
	}
	return b.String()
}

// Upper uppercases s
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
