/*
Package lexer implements the scanning engine for Gherkin feature files.

The lexer is a single-pass, stateful state machine over a character cursor.
It disambiguates line-initial keywords (Feature/Scenario/Background/step
keywords) from free-text descriptions, handles the structured sub-languages
embedded in lines (tags, quoted strings, pipe-delimited table cells with
escape sequences, header markers), and carries scope and step context across
a line without ever backtracking across lines.

Lexing never fails fatally: unsupported language directives and files without
recognizable structure yield diagnostics, and the token stream is produced in
full for whatever was lexically valid.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/gherkin"
	"github.com/npillmayer/gherkin/lang"
)

// tracer traces with key 'gherkin.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("gherkin.lexer")
}

// Characters which drive the per-character dispatch.
const (
	newlineChar     = '\n'
	commentMarker   = '#'
	tagMarker       = '@'
	cellDelimiter   = '|'
	headerOpen      = '<'
	headerClose     = '>'
	quoteChar       = '"'
	escapeChar      = '\\'
	scopeTerminator = ':'
)

// Tokenizer is the scanner interface consumed by parsers.
type Tokenizer interface {
	NextToken() gherkin.Token
	SetErrorHandler(func(error))
}

// Lexer is a tokenizer for one feature file. Create one with New, drive it
// with NextToken or Lex, and discard it afterwards; it holds no state that
// outlives a file. A Lexer must not be shared across goroutines.
type Lexer struct {
	cursor      *Cursor
	sourceID    string       // file name or URI, used in diagnostics only
	locale      *lang.Locale // active keyword tables
	atLineStart bool         // gates the scope/keyword attempt, one per line
	lastScope   gherkin.ScopeKind
	lastKeyword gherkin.StepKeyword
	diags       []string
	Error       func(error) // error handler
}

var _ Tokenizer = (*Lexer)(nil)

// Default error reporting function for lexers
func logError(e error) {
	tracer().Errorf("lexer error: " + e.Error())
}

// New creates a lexer for the text of one feature file. sourceID is the file
// name or URI, used only in diagnostic messages. The initial locale is "en"
// unless changed with Language.
func New(sourceID string, input string, opts ...Option) *Lexer {
	lx := &Lexer{
		cursor:      NewCursor(input),
		sourceID:    sourceID,
		atLineStart: true,
	}
	lx.Error = logError
	lx.locale, _ = lang.Resolve("en")
	for _, opt := range opts {
		opt(lx)
	}
	return lx
}

// SetErrorHandler sets an error handler for the lexer. Every diagnostic is
// routed through the handler; the diagnostics list returned by Lex is kept
// either way.
func (lx *Lexer) SetErrorHandler(h func(error)) {
	if h == nil {
		lx.Error = logError
		return
	}
	lx.Error = h
}

// Diagnostics returns the diagnostics collected so far.
func (lx *Lexer) Diagnostics() []string {
	return lx.diags
}

func (lx *Lexer) report(msg string) {
	lx.diags = append(lx.diags, msg)
	lx.Error(errors.New(msg))
}

// --- Options ---------------------------------------------------------------

// Option configures a lexer.
type Option func(lx *Lexer)

// Language selects the initial locale by language code (see package lang).
// An unsupported code keeps the default locale and is reported through the
// lexer's diagnostics.
func Language(code string) Option {
	return func(lx *Lexer) {
		if loc, ok := lang.Resolve(code); ok {
			lx.locale = loc
			return
		}
		lx.report(fmt.Sprintf("File: %s declares an unsupported language", lx.sourceID))
	}
}

// --- Scanning --------------------------------------------------------------

// Lex drives the lexer to exhaustion and returns the token sequence plus the
// diagnostics collected along the way. A file yielding nothing but
// Description and NewLine tokens is reported as containing no valid gherkin.
func (lx *Lexer) Lex() ([]gherkin.Token, []string) {
	var tokens []gherkin.Token
	structure := false
	for {
		token := lx.NextToken()
		if token.Kind == gherkin.EOF {
			break
		}
		if token.Kind != gherkin.Description && token.Kind != gherkin.NewLine {
			structure = true
		}
		tokens = append(tokens, token)
	}
	if !structure {
		lx.report(fmt.Sprintf("File: %s does not contain any valid gherkin", lx.sourceID))
	}
	tracer().Debugf("lexed %d tokens from %s", len(tokens), lx.sourceID)
	return tokens, lx.diags
}

// NextToken returns the next token, or an EOF-typed token at end of input.
//
// Dispatch is by the character under the cursor, first match wins. Branches
// which consume input without producing a token (comments, skipped
// characters, discarded cell fragments) continue with the next character, so
// every call strictly advances the cursor.
func (lx *Lexer) NextToken() gherkin.Token {
	for {
		r, ok := lx.cursor.Current()
		if !ok {
			return gherkin.Token{Kind: gherkin.EOF}
		}
		switch {
		case r == newlineChar:
			lx.cursor.Advance()
			lx.atLineStart = true
			lx.lastScope = gherkin.NoScope
			lx.lastKeyword = gherkin.NoStep
			return gherkin.Token{Kind: gherkin.NewLine}
		case r == commentMarker:
			lx.comment()
		case r == tagMarker:
			if token, ok := lx.tag(); ok {
				return token
			}
		case r == cellDelimiter:
			if token, ok := lx.cell(); ok {
				return token
			}
		case lx.atLineStart:
			if token, ok := lx.lineStart(); ok {
				return token
			}
		case r == headerOpen:
			return lx.header()
		case lx.lastScope != gherkin.NoScope:
			if token, ok := lx.title(); ok {
				return token
			}
		case r == quoteChar:
			return lx.quoted()
		case unicode.IsDigit(r):
			return lx.integer()
		case lx.lastKeyword != gherkin.NoStep:
			if token, ok := lx.match(); ok {
				return token
			}
		default:
			// no lexical meaning in the current state
			lx.cursor.Advance()
		}
	}
}

// comment consumes the remainder of the line, leaving the newline for the
// main loop. A "language: <code>" comment switches the active locale for all
// subsequent keyword classification; an unsupported code is reported and the
// previous locale kept. Comments never produce a token.
func (lx *Lexer) comment() {
	lx.cursor.Advance() // consume '#'
	text := lx.readUntil(func(r rune) bool { return r == newlineChar })
	parts := strings.SplitN(text, ":", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != "language" {
		return
	}
	code := strings.TrimSpace(parts[1])
	if loc, ok := lang.Resolve(code); ok {
		tracer().Debugf("switching to locale %q", loc.Name)
		lx.locale = loc
		return
	}
	lx.report(fmt.Sprintf("File: %s declares an unsupported language", lx.sourceID))
}

// tag scans an '@'-prefixed label. A bare '@' with no tag characters behind
// it produces no token, like an all-whitespace title or match.
func (lx *Lexer) tag() (gherkin.Token, bool) {
	lx.cursor.Advance() // consume '@'
	text := lx.readUntil(func(r rune) bool { return !isTagChar(r) })
	if text == "" {
		return gherkin.Token{}, false
	}
	return gherkin.Token{Kind: gherkin.Tag, Text: text}, true
}

func isTagChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

// cell scans one pipe-delimited table cell. The opening delimiter is
// consumed; the closing delimiter is left in place, serving as the opener of
// the next cell. Content running into the end of the line instead of another
// delimiter marks a malformed row: the attempt is discarded without a token
// and scanning re-dispatches after the consumed fragment.
func (lx *Lexer) cell() (gherkin.Token, bool) {
	lx.cursor.Advance() // consume '|'
	var content strings.Builder
	for {
		r, ok := lx.cursor.Current()
		if !ok || r == newlineChar {
			tracer().Debugf("discarding cell fragment %q", content.String())
			return gherkin.Token{}, false
		}
		if r == cellDelimiter {
			break
		}
		if r == escapeChar {
			if next, ok := lx.cursor.PeekNext(); ok && isCellEscape(next) {
				content.WriteRune(decodeCellEscape(next))
				lx.cursor.Advance()
				lx.cursor.Advance()
				continue
			}
		}
		content.WriteRune(r)
		lx.cursor.Advance()
	}
	text := strings.Trim(content.String(), " \t")
	return gherkin.Token{Kind: gherkin.TableCell, Text: text}, true
}

func isCellEscape(r rune) bool {
	return r == cellDelimiter || r == escapeChar || r == 'n'
}

func decodeCellEscape(r rune) rune {
	if r == 'n' {
		return newlineChar
	}
	return r
}

// lineStart performs the one scope/keyword attempt of a line: classify the
// line head against the active locale, and fall back to a Description token
// for lines without structure. The classification is speculative; the step
// and description branches rewind the cursor to the saved position.
func (lx *Lexer) lineStart() (gherkin.Token, bool) {
	if lx.skipSpaces() {
		// nothing structural consumed yet, re-dispatch on the first
		// non-space character
		return gherkin.Token{}, false
	}
	lx.atLineStart = false
	mark := lx.cursor.Mark()
	head := lx.readUntil(func(r rune) bool {
		return r == scopeTerminator || r == newlineChar
	})
	kind, step, spelling := lx.locale.Classify(head)
	switch {
	case kind != gherkin.NoScope:
		if r, ok := lx.cursor.Current(); ok && r == scopeTerminator {
			lx.cursor.Advance()
		}
		lx.lastScope = kind
		tracer().Debugf("scope %s", kind)
		return gherkin.Token{Kind: gherkin.Scope, Scope: kind}, true
	case step != gherkin.NoStep:
		lx.cursor.ResetTo(mark)
		for range spelling { // skip the keyword spelling itself
			lx.cursor.Advance()
		}
		lx.skipSpaces()
		lx.lastKeyword = step
		tracer().Debugf("step keyword %s (%q)", step, spelling)
		return gherkin.Token{Kind: gherkin.Keyword, Step: step}, true
	default:
		lx.cursor.ResetTo(mark)
		text := lx.readUntil(func(r rune) bool { return r == newlineChar })
		return gherkin.Token{Kind: gherkin.Description, Text: strings.Trim(text, " \t")}, true
	}
}

// title captures the free text following a scope keyword, up to a header
// marker or the end of the line. A capture without content produces no
// token; an empty capture additionally advances one character, so a line
// cannot be re-dispatched on the same position forever.
func (lx *Lexer) title() (gherkin.Token, bool) {
	text := lx.readUntil(func(r rune) bool {
		return r == headerOpen || r == newlineChar
	})
	trimmed := strings.Trim(text, " \t")
	if trimmed == "" {
		if text == "" {
			lx.cursor.Advance()
		}
		return gherkin.Token{}, false
	}
	return gherkin.Token{Kind: gherkin.Title, Text: trimmed}, true
}

// header reads a '<'…'>' marker and emits its content. These markers name
// the header cells of Examples tables and appear as placeholders in outline
// titles and steps. An unclosed marker yields the text up to end of line.
func (lx *Lexer) header() gherkin.Token {
	lx.cursor.Advance() // consume '<'
	text := lx.readUntil(func(r rune) bool {
		return r == headerClose || r == newlineChar
	})
	if r, ok := lx.cursor.Current(); ok && r == headerClose {
		lx.cursor.Advance()
	}
	return gherkin.Token{Kind: gherkin.TableHeader, Text: strings.Trim(text, " \t")}
}

// quoted reads a quoted string; the quotes are consumed but not part of the
// payload. An unclosed quote yields the text up to end of line.
func (lx *Lexer) quoted() gherkin.Token {
	lx.cursor.Advance() // consume opening quote
	text := lx.readUntil(func(r rune) bool {
		return r == quoteChar || r == newlineChar
	})
	if r, ok := lx.cursor.Current(); ok && r == quoteChar {
		lx.cursor.Advance()
	}
	return gherkin.Token{Kind: gherkin.QuotedString, Text: text}
}

// integer scans a maximal run of digit characters.
func (lx *Lexer) integer() gherkin.Token {
	text := lx.readUntil(func(r rune) bool { return !unicode.IsDigit(r) })
	return gherkin.Token{Kind: gherkin.Integer, Text: text}
}

// match captures free step text up to the next symbol character. Captures
// without content produce no token.
func (lx *Lexer) match() (gherkin.Token, bool) {
	text := lx.readUntil(isSymbolChar)
	trimmed := strings.Trim(text, " \t")
	if trimmed == "" {
		if text == "" {
			lx.cursor.Advance()
		}
		return gherkin.Token{}, false
	}
	return gherkin.Token{Kind: gherkin.Match, Text: trimmed}, true
}

// isSymbolChar marks the characters which terminate free step text.
func isSymbolChar(r rune) bool {
	return r == newlineChar || r == quoteChar || r == cellDelimiter ||
		r == tagMarker || r == commentMarker || r == headerOpen ||
		unicode.IsDigit(r)
}

// --- Low-level scanning helpers --------------------------------------------

// readUntil captures characters up to (not including) the first character
// for which stop holds, or end of input.
func (lx *Lexer) readUntil(stop func(rune) bool) string {
	var b strings.Builder
	for {
		r, ok := lx.cursor.Current()
		if !ok || stop(r) {
			return b.String()
		}
		b.WriteRune(r)
		lx.cursor.Advance()
	}
}

// skipSpaces consumes a run of spaces and tabs and reports whether anything
// was consumed.
func (lx *Lexer) skipSpaces() bool {
	skipped := false
	for {
		r, ok := lx.cursor.Current()
		if !ok || (r != ' ' && r != '\t') {
			return skipped
		}
		lx.cursor.Advance()
		skipped = true
	}
}
