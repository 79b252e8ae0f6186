package lang

import "github.com/npillmayer/gherkin"

// Built-in locales. The spellings follow the common Gherkin translations;
// where a language has more than one customary spelling for a keyword, all
// of them are listed.
func builtin() []*Locale {
	return []*Locale{
		NewLocale("en",
			map[string]gherkin.ScopeKind{
				"Feature":          gherkin.Feature,
				"Scenario":         gherkin.Scenario,
				"Scenario Outline": gherkin.ScenarioOutline,
				"Background":       gherkin.Background,
				"Examples":         gherkin.Examples,
			},
			map[string]gherkin.StepKeyword{
				"Given": gherkin.Given,
				"When":  gherkin.When,
				"Then":  gherkin.Then,
				"And":   gherkin.And,
				"But":   gherkin.But,
			}),
		NewLocale("de",
			map[string]gherkin.ScopeKind{
				"Funktionalität":    gherkin.Feature,
				"Szenario":          gherkin.Scenario,
				"Szenariogrundriss": gherkin.ScenarioOutline,
				"Grundlage":         gherkin.Background,
				"Hintergrund":       gherkin.Background,
				"Beispiele":         gherkin.Examples,
			},
			map[string]gherkin.StepKeyword{
				"Angenommen":  gherkin.Given,
				"Gegeben sei": gherkin.Given,
				"Wenn":        gherkin.When,
				"Dann":        gherkin.Then,
				"Und":         gherkin.And,
				"Aber":        gherkin.But,
			}),
		NewLocale("fr",
			map[string]gherkin.ScopeKind{
				"Fonctionnalité":   gherkin.Feature,
				"Scénario":         gherkin.Scenario,
				"Plan du scénario": gherkin.ScenarioOutline,
				"Contexte":         gherkin.Background,
				"Exemples":         gherkin.Examples,
			},
			map[string]gherkin.StepKeyword{
				"Soit":        gherkin.Given,
				"Etant donné": gherkin.Given,
				"Étant donné": gherkin.Given,
				"Quand":       gherkin.When,
				"Alors":       gherkin.Then,
				"Et":          gherkin.And,
				"Mais":        gherkin.But,
			}),
		NewLocale("es",
			map[string]gherkin.ScopeKind{
				"Característica":        gherkin.Feature,
				"Escenario":             gherkin.Scenario,
				"Esquema del escenario": gherkin.ScenarioOutline,
				"Antecedentes":          gherkin.Background,
				"Ejemplos":              gherkin.Examples,
			},
			map[string]gherkin.StepKeyword{
				"Dado":     gherkin.Given,
				"Dada":     gherkin.Given,
				"Cuando":   gherkin.When,
				"Entonces": gherkin.Then,
				"Y":        gherkin.And,
				"Pero":     gherkin.But,
			}),
	}
}
