package main

import (
	"strconv"

	"github.com/agrmv/predict/ll"
	"github.com/agrmv/predict/ll/predictive"
	"github.com/agrmv/predict/scanner"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func renderTokens(tokens scanner.TokenList) {
	data := pterm.TableData{{"Line", "Column", "Kind", "Lexeme"}}
	for _, t := range scanner.Filter(tokens) {
		data = append(data, []string{
			strconv.Itoa(t.Line()), strconv.Itoa(t.Column()), scanner.KindName(t.TokType()), t.Lexeme(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderSets(ga *ll.LLAnalysis) {
	data := pterm.TableData{{"Non-terminal", "FIRST", "FOLLOW"}}
	ga.Grammar().EachNonTerminal(func(A ll.Symbol) {
		data = append(data, []string{A.Name(), ga.First(A).String(), ga.Follow(A).String()})
	})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// renderDerivation prints a derivation as a tree of rules.
func renderDerivation(label string, d *predictive.Derivation) {
	pterm.Println(label)
	pterm.DefaultTree.WithRoot(derivationTree(d)).Render()
}

func derivationTree(d *predictive.Derivation) pterm.TreeNode {
	var items pterm.LeveledList
	d.Walk(func(level int, r *ll.Rule) {
		items = append(items, pterm.LeveledListItem{
			Level: level,
			Text:  r.String(),
		})
	})
	tracer().Debugf("|ll| = %d", len(items))
	return pterm.NewTreeFromLeveledList(items)
}
