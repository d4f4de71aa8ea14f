// Package spelllib decides whether a surface form is a dictionary word of the target language.
//
// The wordlist assembler only sees the Validator interface. A Hunspell
// dictionary opened once per run backs it in production; Cached memoizes
// verdicts in memory and, optionally, in a shared Store. Resolver walks an
// ordered list of casing candidates and keeps the first accepted form, so the
// emitted casing is decided by the dictionary rather than the corpus.
package spelllib

import (
	"errors"
	"fmt"
	"strings"

	"goWordlist/stringlib"
)

var (
	// ErrUnencodable means the form cannot be represented in the dictionary
	// charset. Callers skip the entry.
	ErrUnencodable = errors.New("spelllib: form not encodable in dictionary charset")
	// ErrUnknownCasing is returned by ParseCasings
	ErrUnknownCasing = errors.New("spelllib: unknown casing")
)

// Validator reports whether form is an accepted word
type Validator interface {
	IsWord(form string) (bool, error)
}

/***************************************************************************************************************
****************************************************************************************************************
* Casing candidates ********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Casing turns a normalized key into a candidate surface form
type Casing string

const (
	Lower      Casing = "lower"
	Capitalize Casing = "capitalize"
	Title      Casing = "title"
	Upper      Casing = "upper"
)

// DefaultCasings tries the key as is, then with its first letter capitalized
var DefaultCasings = []Casing{Lower, Capitalize}

// Apply renders key in casing c
func (c Casing) Apply(key string) string {
	switch c {
	case Capitalize:
		return stringlib.Capitalize(key)
	case Title:
		return stringlib.Title(key)
	case Upper:
		return stringlib.Upper(key)
	}
	return key
}

// ParseCasings maps configuration names onto casings. An empty list gives DefaultCasings.
func ParseCasings(names []string) ([]Casing, error) {
	if len(names) == 0 {
		return DefaultCasings, nil
	}
	out := make([]Casing, 0, len(names))
	for _, n := range names {
		c := Casing(strings.ToLower(strings.TrimSpace(n)))
		switch c {
		case Lower, Capitalize, Title, Upper:
			out = append(out, c)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownCasing, n)
		}
	}
	return out, nil
}

/***************************************************************************************************************
****************************************************************************************************************
* Resolver *****************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Resolver finds the accepted surface form of a normalized key
type Resolver struct {
	Validator Validator
	Casings   []Casing
}

// NewResolver returns a resolver trying casings in order
func NewResolver(v Validator, casings []Casing) *Resolver {
	if len(casings) == 0 {
		casings = DefaultCasings
	}
	return &Resolver{Validator: v, Casings: casings}
}

// Resolve returns the first candidate form the validator accepts. ok is false
// when none is accepted. Any validator error stops the search.
func (r *Resolver) Resolve(key string) (form string, ok bool, err error) {
	tried := make(map[string]bool, len(r.Casings))
	for _, c := range r.Casings {
		form = c.Apply(key)
		if tried[form] {
			continue
		}
		tried[form] = true

		ok, err = r.Validator.IsWord(form)
		if err != nil {
			return "", false, err
		}
		if ok {
			return form, true, nil
		}
	}
	return "", false, nil
}
