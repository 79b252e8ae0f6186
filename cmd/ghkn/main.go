/*
Command ghkn is an interactive token-dump tool for Gherkin feature files.

Given file arguments, ghkn lexes each file and prints the resulting token
stream together with any diagnostics. Without arguments it starts a REPL
where single feature-file lines may be entered and inspected, useful as a
sandbox during early stages of parser development.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/gherkin"
	"github.com/npillmayer/gherkin/lang"
	"github.com/npillmayer/gherkin/lexer"
)

// tracer traces with key 'gherkin.lexer'
func tracer() tracing.Trace {
	return tracing.Select("gherkin.lexer")
}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	language := flag.String("lang", "en", "Initial locale (language code)")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	//
	if _, ok := lang.Resolve(*language); !ok {
		pterm.Error.Println(fmt.Sprintf("unsupported language %q, known: %s",
			*language, strings.Join(lang.Languages(), ", ")))
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		rc := 0
		for _, name := range flag.Args() {
			if err := dumpFile(name, *language); err != nil {
				pterm.Error.Println(err.Error())
				rc = 2
			}
		}
		os.Exit(rc)
	}
	pterm.Info.Println("Welcome to ghkn") // colored welcome message
	tracer().Infof("Quit with <ctrl>D")   // inform user how to stop the CLI
	repl(*language)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// dumpFile lexes one feature file and prints its token stream.
func dumpFile(name string, language string) error {
	input, err := ioutil.ReadFile(name)
	if err != nil {
		return fmt.Errorf("cannot read %s: %v", name, err)
	}
	lx := lexer.New(name, string(input), lexer.Language(language))
	tokens, diags := lx.Lex()
	pterm.Info.Println(name)
	printTokens(tokens)
	for _, d := range diags {
		pterm.Error.Println(d)
	}
	return nil
}

func printTokens(tokens []gherkin.Token) {
	pterm.Println("--------------+----------------------------")
	for _, token := range tokens {
		payload := token.Text
		switch token.Kind {
		case gherkin.Scope:
			payload = token.Scope.String()
		case gherkin.Keyword:
			payload = token.Step.String()
		case gherkin.NewLine:
			payload = ""
		}
		pterm.Println(fmt.Sprintf(" %-12s | %s", token.Kind, payload))
	}
	pterm.Println("--------------+----------------------------")
}

// repl starts interactive mode. Every input line is lexed as a one-line
// feature file; colon commands control the session.
func repl(language string) {
	rl, err := readline.New("ghkn> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimRight(line, " \t"); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := command(line, &language); quit {
				break
			}
			continue
		}
		lx := lexer.New("repl", line+"\n", lexer.Language(language))
		lx.SetErrorHandler(func(e error) {
			pterm.Error.Println(e.Error())
		})
		tokens, _ := lx.Lex()
		printTokens(tokens)
	}
	println("Good bye!")
}

func command(line string, language *string) bool {
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true
	case ":langs":
		for _, code := range lang.Languages() {
			loc, _ := lang.Resolve(code)
			marker := " "
			if code == *language {
				marker = "*"
			}
			pterm.Println(fmt.Sprintf("%s %-4s %s", marker, code, loc.Fingerprint()))
		}
	case ":lang":
		if len(args) < 2 {
			pterm.Error.Println("usage: :lang <code>")
			break
		}
		if _, ok := lang.Resolve(args[1]); !ok {
			pterm.Error.Println(fmt.Sprintf("unsupported language %q", args[1]))
			break
		}
		*language = args[1]
		pterm.Info.Println("locale is now " + args[1])
	default:
		pterm.Error.Println("unknown command " + args[0])
	}
	return false
}
