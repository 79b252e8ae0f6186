package gherkin

import "fmt"

// --- Token types -----------------------------------------------------------

// TokType is a category type for a Token. One constant per lexical unit of
// the Gherkin syntax.
type TokType int

// Token types produced by the lexer.
const (
	EOF TokType = iota // end of input; never part of a lexed sequence
	NewLine
	Tag          // an '@'-prefixed label
	TableCell    // trimmed cell content of a data table, escapes resolved
	TableHeader  // content of a '<'…'>' header/placeholder marker
	Title        // free text following a scope keyword
	QuotedString // content between two quote characters
	Integer      // a maximal run of digit characters
	Match        // free step text, captured up to the next symbol character
	Scope        // a structural keyword (Feature, Scenario, …)
	Keyword      // a step-introducing keyword (Given, When, …)
	Description  // a line which matched no structural pattern
)

var toktypeNames = []string{"EOF", "NewLine", "Tag", "TableCell", "TableHeader",
	"Title", "QuotedString", "Integer", "Match", "Scope", "Keyword", "Description"}

func (t TokType) String() string {
	if t < 0 || int(t) >= len(toktypeNames) {
		return fmt.Sprintf("TokType(%d)", int(t))
	}
	return toktypeNames[t]
}

// --- Scopes and step keywords ----------------------------------------------

// ScopeKind classifies the structural keywords of Gherkin. A scope introduces
// a block of the feature file.
type ScopeKind int

// Scope kinds. NoScope is the zero value and doubles as the classification
// result for text which is not a structural keyword.
const (
	NoScope ScopeKind = iota
	Feature
	Scenario
	ScenarioOutline
	Background
	Examples
)

var scopeNames = []string{"NoScope", "Feature", "Scenario", "ScenarioOutline",
	"Background", "Examples"}

func (k ScopeKind) String() string {
	if k < 0 || int(k) >= len(scopeNames) {
		return fmt.Sprintf("ScopeKind(%d)", int(k))
	}
	return scopeNames[k]
}

// StepKeyword identifies a step-introducing keyword, independently of its
// localized spelling.
type StepKeyword int

// Step keywords. NoStep is the zero value.
const (
	NoStep StepKeyword = iota
	Given
	When
	Then
	And
	But
)

var stepNames = []string{"NoStep", "Given", "When", "Then", "And", "But"}

func (k StepKeyword) String() string {
	if k < 0 || int(k) >= len(stepNames) {
		return fmt.Sprintf("StepKeyword(%d)", int(k))
	}
	return stepNames[k]
}

// --- Tokens ----------------------------------------------------------------

// Token is one lexical unit of a feature file.
//
// Tokens are plain comparable values. Text carries the payload for textual
// token types (with surrounding whitespace trimmed and cell escapes already
// resolved). Scope is set for tokens of type Scope, Step for tokens of type
// Keyword; both are zero otherwise.
type Token struct {
	Kind  TokType
	Text  string
	Scope ScopeKind
	Step  StepKeyword
}

func (t Token) String() string {
	switch t.Kind {
	case Scope:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Scope)
	case Keyword:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Step)
	case NewLine, EOF:
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
