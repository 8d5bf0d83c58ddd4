package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/gofol/fol"
)

// examples are the built-in formulas the CLI can normalize.
var examples = map[string]fol.Formula{
	// ∀x (P(x) → ∃y (Q(y) ∧ R(x,y))): the witness found for y may depend
	// on x, so Skolemization introduces a function of x.
	"witness": fol.Forall{V: fol.Var{Name: "x"}, Body: fol.Implies{
		L: fol.Pred{Name: "P", Args: []fol.Term{fol.Var{Name: "x"}}},
		R: fol.Exists{V: fol.Var{Name: "y"}, Body: fol.And{
			L: fol.Pred{Name: "Q", Args: []fol.Term{fol.Var{Name: "y"}}},
			R: fol.Pred{Name: "R", Args: []fol.Term{fol.Var{Name: "x"}, fol.Var{Name: "y"}}},
		}},
	}},
	// ∃y Q(y): no universal in scope, so the witness is a constant.
	"lone": fol.Exists{V: fol.Var{Name: "y"},
		Body: fol.Pred{Name: "Q", Args: []fol.Term{fol.Var{Name: "y"}}}},
	// ∀x ¬(P(x) ∧ Q(x)): exercises the De Morgan rewrite.
	"demorgan": fol.Forall{V: fol.Var{Name: "x"}, Body: fol.Not{X: fol.And{
		L: fol.Pred{Name: "P", Args: []fol.Term{fol.Var{Name: "x"}}},
		R: fol.Pred{Name: "Q", Args: []fol.Term{fol.Var{Name: "x"}}},
	}}},
	// ∀x (P(x) ↔ Q(x)): exercises biconditional elimination.
	"iff": fol.Forall{V: fol.Var{Name: "x"}, Body: fol.Iff{
		L: fol.Pred{Name: "P", Args: []fol.Term{fol.Var{Name: "x"}}},
		R: fol.Pred{Name: "Q", Args: []fol.Term{fol.Var{Name: "x"}}},
	}},
	// (A ∧ B) ∨ (C ∧ D): distribution produces four clauses from four atoms.
	"blowup": fol.Or{
		L: fol.And{L: fol.Pred{Name: "A"}, R: fol.Pred{Name: "B"}},
		R: fol.And{L: fol.Pred{Name: "C"}, R: fol.Pred{Name: "D"}},
	},
}

var rootCmd = &cobra.Command{
	Use:   "gofol [example]",
	Short: "Normalize first-order formulas into conjunctive normal form.",
	Long: "gofol runs the CNF pipeline (implication elimination, NNF, Skolemization,\n" +
		"universal drop, distribution) over one of its built-in example formulas and\n" +
		"prints the formula after each stage.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if list {
			for _, name := range exampleNames() {
				fmt.Printf("%-10s %s\n", name, examples[name])
			}
			return nil
		}
		name := "witness"
		if len(args) == 1 {
			name = args[0]
		}
		f, ok := examples[name]
		if !ok {
			return fmt.Errorf("unknown example %q (try --list)", name)
		}
		log.Debug(fmt.Sprintf("normalizing example %s", name))
		t := &fol.Transformer{
			Gen:   fol.NewGen(),
			Trace: stageWriter{out: cmd.OutOrStdout()},
		}
		t.CNF(f)
		return nil
	},
}

var (
	verbose bool
	list    bool
)

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "sets verbose mode on")
	rootCmd.Flags().BoolVarP(&list, "list", "l", false, "lists the built-in examples and exits")
}

func exampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var stageLabel = color.New(color.FgCyan, color.Bold)

// A stageWriter colorizes the stage label at the front of each trace line.
type stageWriter struct {
	out io.Writer
}

func (w stageWriter) Write(p []byte) (int, error) {
	line := string(p)
	if i := strings.IndexByte(line, ':'); i >= 0 {
		stageLabel.Fprint(w.out, line[:i+1])
		fmt.Fprint(w.out, line[i+1:])
	} else {
		fmt.Fprint(w.out, line)
	}
	return len(p), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
