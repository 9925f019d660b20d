package predictive

import (
	"fmt"

	"github.com/agrmv/predict"
	"github.com/agrmv/predict/ll"
	"github.com/agrmv/predict/ll/loader"
	"github.com/agrmv/predict/scanner"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Parser is an LL(1)-parser type. Create and initialize one with
// predictive.NewParser(...). A parser does not hold any state between calls
// to Parse and may be re-used for any number of inputs.
type Parser struct {
	G          *ll.Grammar
	table      *ll.ParsingTable
	categories map[predict.TokType]string
}

// config collects the options for a parser and for the tables built by
// ParseFile.
type config struct {
	categories map[predict.TokType]string
	tableOpts  []ll.TableOption
}

// Option configures a parser.
type Option func(c *config)

// WithCategories replaces the default mapping from token kinds to category
// terminals, which is scanner.Categories().
func WithCategories(categories map[predict.TokType]string) Option {
	return func(c *config) {
		c.categories = categories
	}
}

// WithTableOptions passes options to table construction in ParseFile.
func WithTableOptions(opts ...ll.TableOption) Option {
	return func(c *config) {
		c.tableOpts = append(c.tableOpts, opts...)
	}
}

func makeConfig(opts []Option) config {
	c := config{categories: scanner.Categories()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewParser creates an LL(1) parser for grammar g. The parsing table has to
// be built for g, otherwise NewParser returns an error.
func NewParser(g *ll.Grammar, table *ll.ParsingTable, opts ...Option) (*Parser, error) {
	if g == nil || table == nil {
		return nil, fmt.Errorf("LL(1)-parser needs a grammar and a parsing table")
	}
	if table.Fingerprint() != g.Fingerprint() {
		tracer().Errorf("table has been built for grammar %s, not for %s", table.Grammar().Name, g.Name)
		return nil, fmt.Errorf("parsing table does not match grammar %s", g.Name)
	}
	c := makeConfig(opts)
	return &Parser{
		G:          g,
		table:      table,
		categories: c.categories,
	}, nil
}

// Parse maps tokens to terminals (see MapTokens) and parses them.
func (p *Parser) Parse(tokens []predict.Token) (*Derivation, error) {
	inputs, err := MapTokens(p.G, tokens, p.categories)
	if err != nil {
		return nil, err
	}
	return p.ParseTerminals(inputs)
}

// We store symbols together with their depth in the parse tree on the parse stack.
type stackitem struct {
	sym   ll.Symbol
	level int
}

// ParseTerminals parses a sequence of input terminals. It returns the leftmost
// derivation of the input, or an error.
//
// The parser operates on two stacks. The symbol stack starts with
// END_OF_PROGRAM and the start symbol on top of it. The input stack holds the
// input terminals, the first one on top and END_OF_PROGRAM at the bottom.
// A terminal on top of the symbol stack has to match the top of the input
// stack, then both are popped. A non-terminal A on top of the symbol stack is
// replaced by the right hand side of table entry M[A,a], with a being the top
// of the input stack.
func (p *Parser) ParseTerminals(inputs []Input) (*Derivation, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	symbols := arraystack.New()
	symbols.Push(stackitem{sym: ll.EndOfProgram})
	symbols.Push(stackitem{sym: p.G.StartSymbol()})
	input := arraystack.New()
	input.Push(Input{Terminal: ll.EndOfProgram})
	for i := len(inputs) - 1; i >= 0; i-- {
		input.Push(inputs[i])
	}
	derivation := &Derivation{}
	consumed := 0
	for !symbols.Empty() && !input.Empty() {
		top, _ := symbols.Peek()
		X := top.(stackitem)
		la, _ := input.Peek()
		a := la.(Input)
		tracer().Debugf("stack top = %s, lookahead = %s", X.sym, a.Terminal)
		if X.sym.IsTerminal() {
			if !X.sym.Equals(a.Terminal) {
				return nil, p.syntaxError(&SyntaxError{Expected: X.sym}, a, consumed)
			}
			symbols.Pop()
			input.Pop()
			consumed++
			continue
		}
		r, ok := p.table.Lookup(X.sym, a.Terminal)
		if !ok {
			return nil, p.syntaxError(&SyntaxError{NonTerminal: X.sym}, a, consumed)
		}
		tracer().Debugf("expand %v", r)
		symbols.Pop()
		for i := r.Len() - 1; i >= 0; i-- {
			if Y := r.Symbol(i); !Y.IsEpsilon() {
				symbols.Push(stackitem{sym: Y, level: X.level + 1})
			}
		}
		derivation.steps = append(derivation.steps, step{Rule: r, Level: X.level})
	}
	if !input.Empty() {
		err := &IncompleteParseError{Remaining: input.Size(), Index: consumed}
		tracer().Errorf("%v", err)
		return nil, err
	}
	tracer().Infof("input accepted, %d rules applied", derivation.Len())
	return derivation, nil
}

func (p *Parser) syntaxError(err *SyntaxError, a Input, index int) error {
	err.Found = a.Terminal
	err.Token = a.Token
	err.Index = index
	tracer().Errorf("%v", err)
	return err
}

// ParseFile loads a grammar file, builds the parsing table and parses the
// tokens. It is a shortcut for clients who use a grammar only once.
func ParseFile(grammarPath string, tokens []predict.Token, opts ...Option) (*Derivation, error) {
	g, err := loader.Load(grammarPath)
	if err != nil {
		return nil, err
	}
	ga, err := ll.Analysis(g)
	if err != nil {
		return nil, err
	}
	c := makeConfig(opts)
	table, err := ll.BuildTable(ga, c.tableOpts...)
	if err != nil {
		return nil, err
	}
	p, err := NewParser(g, table, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}
