package lang

import (
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/gherkin"
)

func TestResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gherkin.lang")
	defer teardown()
	//
	if _, ok := Resolve("en"); !ok {
		t.Errorf("expected locale 'en' to be registered")
	}
	if loc, ok := Resolve("EN"); !ok || loc.Name != "en" { // codes are case-insensitive
		t.Errorf("expected 'EN' to resolve to locale 'en'")
	}
	if _, ok := Resolve("xx"); ok {
		t.Errorf("did not expect locale 'xx' to be registered")
	}
}

func TestLanguages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gherkin.lang")
	defer teardown()
	//
	codes := Languages()
	if !sort.StringsAreSorted(codes) {
		t.Errorf("expected language codes to be sorted, got %v", codes)
	}
	for _, want := range []string{"en", "de", "fr", "es"} {
		found := false
		for _, code := range codes {
			if code == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected built-in locale %q in %v", want, codes)
		}
	}
}

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gherkin.lang")
	defer teardown()
	//
	en, _ := Resolve("en")
	cases := []struct {
		text     string
		kind     gherkin.ScopeKind
		step     gherkin.StepKeyword
		spelling string
	}{
		{"Feature", gherkin.Feature, gherkin.NoStep, ""},
		{"Feature  ", gherkin.Feature, gherkin.NoStep, ""}, // trailing space stripped
		{"Scenario Outline", gherkin.ScenarioOutline, gherkin.NoStep, ""},
		{"Given I log in", gherkin.NoScope, gherkin.Given, "Given"},
		{"Given", gherkin.NoScope, gherkin.Given, "Given"},
		{"Givenx y", gherkin.NoScope, gherkin.NoStep, ""}, // prefix needs a word boundary
		{"Whatever else", gherkin.NoScope, gherkin.NoStep, ""},
	}
	for i, c := range cases {
		kind, step, spelling := en.Classify(c.text)
		if kind != c.kind || step != c.step || spelling != c.spelling {
			t.Errorf("case #%d %q: got (%v, %v, %q), want (%v, %v, %q)",
				i, c.text, kind, step, spelling, c.kind, c.step, c.spelling)
		}
	}
}

func TestClassifyLongestSpellingWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gherkin.lang")
	defer teardown()
	//
	de, _ := Resolve("de")
	kind, step, spelling := de.Classify("Gegeben sei ein Benutzer")
	if kind != gherkin.NoScope || step != gherkin.Given || spelling != "Gegeben sei" {
		t.Errorf("got (%v, %v, %q)", kind, step, spelling)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gherkin.lang")
	defer teardown()
	//
	en, _ := Resolve("en")
	de, _ := Resolve("de")
	if en.Fingerprint() == de.Fingerprint() {
		t.Errorf("expected distinct fingerprints for en and de")
	}
	clone := NewLocale("other", en.Scopes, en.Steps)
	if clone.Fingerprint() != en.Fingerprint() { // name does not enter the hash
		t.Errorf("expected identical tables to yield identical fingerprints")
	}
}

func TestRegister(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gherkin.lang")
	defer teardown()
	//
	en, _ := Resolve("en")
	pirate := NewLocale("xp",
		map[string]gherkin.ScopeKind{
			"Ahoy":    gherkin.Feature,
			"Voyage":  gherkin.Scenario,
			"Harbour": gherkin.Background,
			"Loot":    gherkin.Examples,
			"Heading": gherkin.ScenarioOutline,
		},
		map[string]gherkin.StepKeyword{
			"Gangway":         gherkin.Given,
			"Blimey":          gherkin.When,
			"Let go and haul": gherkin.Then,
			"Aye":             gherkin.And,
			"Avast":           gherkin.But,
		})
	if err := Register(pirate); err != nil {
		t.Fatalf("registering a fresh locale failed: %v", err)
	}
	if _, ok := Resolve("xp"); !ok {
		t.Errorf("expected locale 'xp' to resolve after registration")
	}
	if err := Register(pirate); err == nil {
		t.Errorf("expected re-registration under the same code to fail")
	}
	if err := Register(NewLocale("xq", en.Scopes, en.Steps)); err == nil {
		t.Errorf("expected registration of duplicate keyword tables to fail")
	}
	if err := Register(NewLocale("", nil, nil)); err == nil {
		t.Errorf("expected registration without a language code to fail")
	}
}
