/*
Package lang provides localized keyword tables for the Gherkin tokenizer.

A Locale bundles the recognized spellings for every structural scope keyword
(Feature, Scenario, …) and every step keyword (Given, When, …) of one human
language. Locales are held in a process-wide registry, keyed by language code.
The lexer resolves a "# language: <code>" directive against this registry and
classifies line-initial text against the active locale.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lang

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/gherkin"
)

// tracer traces with key 'gherkin.lang'.
func tracer() tracing.Trace {
	return tracing.Select("gherkin.lang")
}

// Locale is the set of localized keyword spellings for one language.
// Create locales with NewLocale; the zero value is not usable.
type Locale struct {
	Name      string                         // language code, e.g. "en"
	Scopes    map[string]gherkin.ScopeKind   // structural keywords, matched exactly
	Steps     map[string]gherkin.StepKeyword // step keywords, matched as line prefix
	spellings []string                       // step spellings, longest first
}

// NewLocale creates a locale from keyword tables. Step spellings are matched
// longest-first, so e.g. "Gegeben sei" wins over a hypothetical "Gegeben".
func NewLocale(name string, scopes map[string]gherkin.ScopeKind,
	steps map[string]gherkin.StepKeyword) *Locale {
	//
	loc := &Locale{
		Name:   name,
		Scopes: scopes,
		Steps:  steps,
	}
	for spelling := range steps {
		loc.spellings = append(loc.spellings, spelling)
	}
	sort.Slice(loc.spellings, func(i, j int) bool {
		if len(loc.spellings[i]) != len(loc.spellings[j]) {
			return len(loc.spellings[i]) > len(loc.spellings[j])
		}
		return loc.spellings[i] < loc.spellings[j]
	})
	return loc
}

// Classify resolves line-initial text against the locale's keyword tables.
//
// Text matching a scope keyword exactly (after trailing space is stripped)
// yields the scope's kind. Otherwise, text beginning with a step keyword
// spelling, followed by a space or end of text, yields the step keyword plus
// the spelling which matched. Everything else yields (NoScope, NoStep, "").
func (loc *Locale) Classify(text string) (gherkin.ScopeKind, gherkin.StepKeyword, string) {
	trimmed := strings.TrimRight(text, " \t")
	if kind, ok := loc.Scopes[trimmed]; ok {
		return kind, gherkin.NoStep, ""
	}
	for _, spelling := range loc.spellings {
		if trimmed == spelling || strings.HasPrefix(trimmed, spelling+" ") {
			return gherkin.NoScope, loc.Steps[spelling], spelling
		}
	}
	return gherkin.NoScope, gherkin.NoStep, ""
}

// Fingerprint returns a stable hash over the locale's keyword tables,
// independent of the locale's name. Two locales with identical tables have
// identical fingerprints.
func (loc *Locale) Fingerprint() string {
	tables := struct {
		Scopes map[string]gherkin.ScopeKind
		Steps  map[string]gherkin.StepKeyword
	}{loc.Scopes, loc.Steps}
	return fmt.Sprintf("%x", structhash.Md5(tables, 1))
}

// --- Registry --------------------------------------------------------------

var initOnce sync.Once // monitors one-time initialization of the registry

var registry struct {
	sync.RWMutex
	locales *treemap.Map // language code → *Locale, ordered by code
}

func initRegistry() {
	initOnce.Do(func() {
		registry.locales = treemap.NewWithStringComparator()
		for _, loc := range builtin() {
			registry.locales.Put(loc.Name, loc)
		}
	})
}

// Resolve finds the locale for a language code. Codes are matched
// case-insensitively.
func Resolve(name string) (*Locale, bool) {
	initRegistry()
	registry.RLock()
	defer registry.RUnlock()
	loc, ok := registry.locales.Get(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return nil, false
	}
	return loc.(*Locale), true
}

// Languages lists the codes of all registered locales, in lexicographic
// order.
func Languages() []string {
	initRegistry()
	registry.RLock()
	defer registry.RUnlock()
	codes := make([]string, 0, registry.locales.Size())
	for _, key := range registry.locales.Keys() {
		codes = append(codes, key.(string))
	}
	return codes
}

// Register adds a custom locale to the registry. Registration fails if the
// language code is already taken, or if an identical set of keyword tables
// is already registered under a different code.
func Register(loc *Locale) error {
	initRegistry()
	registry.Lock()
	defer registry.Unlock()
	code := strings.ToLower(strings.TrimSpace(loc.Name))
	if code == "" {
		return fmt.Errorf("cannot register locale without a language code")
	}
	if _, ok := registry.locales.Get(code); ok {
		return fmt.Errorf("locale %q already registered", code)
	}
	fp := loc.Fingerprint()
	var duplicate string
	registry.locales.Each(func(key, value interface{}) {
		if value.(*Locale).Fingerprint() == fp {
			duplicate = key.(string)
		}
	})
	if duplicate != "" {
		return fmt.Errorf("locale %q duplicates keyword tables of %q", code, duplicate)
	}
	tracer().Infof("registering locale %q", code)
	registry.locales.Put(code, loc)
	return nil
}
