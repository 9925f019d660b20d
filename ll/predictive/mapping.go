package predictive

import (
	"github.com/agrmv/predict"
	"github.com/agrmv/predict/ll"
	"github.com/agrmv/predict/scanner"
)

// Input is an input terminal for the parser, together with the token it has
// been mapped from.
type Input struct {
	Terminal ll.Symbol
	Token    predict.Token // nil for END_OF_PROGRAM
}

// MapTokens maps tokens to terminals of grammar g. A token whose lexeme is the
// name of a terminal is mapped to this terminal. Otherwise categories selects
// the name of a terminal by token kind. Auxiliary tokens are skipped.
//
// If a token cannot be mapped, MapTokens returns an *InternalConfigurationError.
func MapTokens(g *ll.Grammar, tokens []predict.Token, categories map[predict.TokType]string) ([]Input, error) {
	inputs := make([]Input, 0, len(tokens))
	for _, token := range tokens {
		if scanner.IsAuxiliary(token.TokType()) {
			continue
		}
		a, err := mapToken(g, token, categories)
		if err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
		tracer().Debugf("token %q => %s", token.Lexeme(), a)
		inputs = append(inputs, Input{Terminal: a, Token: token})
	}
	return inputs, nil
}

func mapToken(g *ll.Grammar, token predict.Token, categories map[predict.TokType]string) (ll.Symbol, error) {
	if a, ok := g.SymbolByName(token.Lexeme()); ok && a.IsTerminal() && !a.IsEpsilon() {
		return a, nil
	}
	name, ok := categories[token.TokType()]
	if !ok {
		return ll.Symbol{}, &InternalConfigurationError{Kind: token.TokType(), Lexeme: token.Lexeme()}
	}
	a, ok := g.SymbolByName(name)
	if !ok || !a.IsTerminal() {
		return ll.Symbol{}, &InternalConfigurationError{
			Kind:     token.TokType(),
			Lexeme:   token.Lexeme(),
			Category: name,
		}
	}
	return a, nil
}

// Terminals creates parser input from terminal names, without tokens.
// Unknown names are reported with ok = false.
func Terminals(g *ll.Grammar, names ...string) (inputs []Input, ok bool) {
	for _, name := range names {
		a, found := g.SymbolByName(name)
		if !found || !a.IsTerminal() || a.IsEpsilon() {
			return nil, false
		}
		inputs = append(inputs, Input{Terminal: a})
	}
	return inputs, true
}
