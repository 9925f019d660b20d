package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agrmv/predict"
	"github.com/agrmv/predict/ll"
	"github.com/agrmv/predict/ll/loader"
	"github.com/agrmv/predict/ll/predictive"
	"github.com/agrmv/predict/scanner"
	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful run.
	ExitSuccess = iota
	// ExitUsage indicates wrong usage or an invalid configuration.
	ExitUsage
	// ExitGrammar indicates a grammar which cannot be loaded or used.
	ExitGrammar
	// ExitInput indicates lexical or syntax errors in the input.
	ExitInput
)

// tracedKeys are the trace keys of the library packages.
var tracedKeys = []string{"predict.ll", "predict.scanner"}

func main() {
	cliTrace = gologadapter.New()
	initDisplay()
	os.Exit(run(os.Args[1:]))
}

// run executes llparse with command line arguments args and returns an exit
// code.
func run(args []string) int {
	flags := pflag.NewFlagSet("llparse", pflag.ContinueOnError)
	flagGrammar := flags.StringP("grammar", "g", "", "grammar file")
	flagSource := flags.StringP("source", "s", "", "source file to parse")
	flagConfig := flags.StringP("config", "c", "", "TOML configuration file")
	flagStrict := flags.Bool("strict", false, "fail on LL(1) conflicts")
	flagTokens := flags.Bool("tokens", false, "print the tokens of the source")
	flagSets := flags.Bool("sets", false, "print FIRST- and FOLLOW-sets")
	flagHTML := flags.String("html", "", "export the parsing table as HTML")
	flagTrace := flags.StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
	flagInteractive := flags.BoolP("interactive", "i", false, "parse lines read from the terminal")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitSuccess
		}
		pterm.Error.Println(err.Error())
		return ExitUsage
	}
	if flags.NArg() > 0 {
		pterm.Error.Printf("unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		return ExitUsage
	}
	conf := defaultConfig()
	if *flagConfig != "" {
		var err error
		if conf, err = loadConfig(*flagConfig); err != nil {
			pterm.Error.Println(err.Error())
			return ExitUsage
		}
	}
	if flags.Lookup("grammar").Changed {
		conf.Grammar = *flagGrammar
	}
	if flags.Lookup("source").Changed {
		conf.Source = *flagSource
	}
	if flags.Lookup("strict").Changed {
		conf.Strict = *flagStrict
	}
	if flags.Lookup("tokens").Changed {
		conf.Tokens = *flagTokens
	}
	if flags.Lookup("sets").Changed {
		conf.Sets = *flagSets
	}
	if flags.Lookup("html").Changed {
		conf.HTML = *flagHTML
	}
	if flags.Lookup("trace").Changed {
		conf.Trace = *flagTrace
	}
	setTraceLevel(conf.Trace)
	if conf.Grammar == "" {
		pterm.Error.Println("no grammar given, use -g")
		return ExitUsage
	}
	categories, err := conf.categoryMap()
	if err != nil {
		pterm.Error.Println(err.Error())
		return ExitUsage
	}
	//
	p, code := prepareParser(conf, categories)
	if p == nil {
		return code
	}
	if conf.Source != "" {
		if code := parseSource(p, conf); code != ExitSuccess {
			return code
		}
	}
	if *flagInteractive {
		return repl(p)
	}
	return ExitSuccess
}

func setTraceLevel(level string) {
	l := tracing.TraceLevelFromString(level)
	tracer().SetTraceLevel(l)
	for _, key := range tracedKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Debugf("trace level is %s", level)
}

// prepareParser loads the grammar and builds the parsing table.
func prepareParser(conf Config, categories map[predict.TokType]string) (*predictive.Parser, int) {
	g, err := loader.Load(conf.Grammar)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, ExitGrammar
	}
	g.Dump() // only visible in debug mode
	ga, err := ll.Analysis(g)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, ExitGrammar
	}
	if conf.Sets {
		renderSets(ga)
	}
	policy := ll.LastWins
	if conf.Strict {
		policy = ll.FailOnConflict
	}
	table, err := ll.BuildTable(ga, ll.WithConflictPolicy(policy))
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, ExitGrammar
	}
	for _, c := range table.Conflicts() {
		pterm.Warning.Println(c.String())
	}
	if conf.HTML != "" {
		if err := exportHTML(table, conf.HTML); err != nil {
			pterm.Error.Println(err.Error())
			return nil, ExitUsage
		}
	}
	p, err := predictive.NewParser(g, table, predictive.WithCategories(categories))
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, ExitGrammar
	}
	pterm.Info.Printf("grammar %s: %d rules, %d table entries\n", g.Name, g.Size(), table.Size())
	return p, ExitSuccess
}

func exportHTML(table *ll.ParsingTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	table.AsHTML(f)
	return f.Close()
}

// parseSource tokenizes the source file line by line and parses the tokens
// of all lines without lexical errors.
func parseSource(p *predictive.Parser, conf Config) int {
	f, err := os.Open(conf.Source)
	if err != nil {
		pterm.Error.Println(err.Error())
		return ExitUsage
	}
	defer f.Close()
	lexicalErrors := 0
	tok := scanner.NewLineTokenizer(f, scanner.SkipAuxiliary(true))
	tok.SetErrorHandler(func(err error) {
		lexicalErrors++
		pterm.Error.Println(err.Error())
	})
	tokens := scanner.ReadAll(tok)
	if conf.Tokens {
		renderTokens(tok.Scanner().Tokens())
	}
	derivation, err := p.Parse(tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		return ExitInput
	}
	renderDerivation(p.G.StartSymbol().Name(), derivation)
	if lexicalErrors > 0 {
		pterm.Warning.Printf("%d lines skipped because of lexical errors\n", lexicalErrors)
		return ExitInput
	}
	return ExitSuccess
}

// repl starts interactive mode. Every line entered is parsed on its own.
func repl(p *predictive.Parser) int {
	rl, err := readline.New("llparse> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		return ExitUsage
	}
	defer rl.Close()
	tracer().Infof("Quit with <ctrl>D")
	sc := scanner.NewScanner()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := parseLine(p, sc, line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	fmt.Println("Good bye!")
	return ExitSuccess
}

// parseLine parses a single line of input. The scanner is reset first, so
// every line is line 1 and columns match what the user typed.
func parseLine(p *predictive.Parser, sc *scanner.Scanner, line string) error {
	sc.Reset()
	tokens, err := sc.TokenizeNext(line)
	if err != nil {
		return err
	}
	derivation, err := p.Parse(scanner.Filter(tokens).Generic())
	if err != nil {
		return err
	}
	renderDerivation(p.G.StartSymbol().Name(), derivation)
	return nil
}
