// Command regexcore is the CLI adapter over the regexlib pipeline: compile
// a pattern, print its AST/NFA/DFA summary, and optionally simulate an
// input string against it. Flag-gated modes additionally run batch
// regression scripts and browse the preset catalog.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/trevorflahardy/RegViz/internal/batchscript"
	"github.com/trevorflahardy/RegViz/presets"
	"github.com/trevorflahardy/RegViz/regexlib"
)

func main() {
	batchFile := flag.String("batch", "", "run a batch regression script against regexlib")
	examples := flag.Bool("examples", false, "print the preset catalog and exit")
	search := flag.Bool("search", false, "search the preset catalog by the remaining arguments and exit")
	flag.Parse()

	switch {
	case *batchFile != "":
		os.Exit(runBatch(*batchFile))
	case *examples:
		printExamples(presets.All())
		return
	case *search:
		printExamples(presets.Search(flag.Args()))
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: regexcore <pattern> [input]")
		os.Exit(2)
	}

	pattern := args[0]
	var input string
	hasInput := len(args) > 1
	if hasInput {
		input = args[1]
	}

	os.Exit(run(pattern, input, hasInput))
}

func run(pattern, input string, hasInput bool) int {
	art, err := regexlib.Build(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Build error: %s\n", err)
		return 1
	}

	fmt.Printf("Pattern: %s\n", art.Pattern)
	fmt.Printf("AST: %s\n", art.AST)
	fmt.Printf("NFA: states=%d start=%d accepts=%d edges=%d\n",
		art.NFA.NumStates, art.NFA.Start, 1, len(art.NFA.Edges))

	dfa := art.DFA()
	fmt.Printf("DFA: states=%d start=0 accepts=%d alphabet=%s\n",
		dfa.NumStates, countAccepting(dfa), formatAlphabet(dfa.Alphabet))

	if hasInput {
		nfaAccepts := regexlib.NFAAccepts(art.NFA, input)
		dfaAccepts := regexlib.DFAAccepts(dfa, input)
		fmt.Printf("Input: %q\n", input)
		fmt.Printf("NFA accepts: %t\n", nfaAccepts)
		fmt.Printf("DFA accepts: %t\n", dfaAccepts)
	}
	return 0
}

func runBatch(path string) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Build error: %s\n", err)
		return 1
	}
	defer f.Close()

	passed, failed, err := batchscript.Run(os.Stdout, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Build error: %s\n", err)
		return 1
	}
	fmt.Printf("Batch: %d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}

func printExamples(examples []presets.Example) {
	for _, e := range examples {
		fmt.Printf("%s: %s\n", e.Name, e.Pattern)
	}
}

func countAccepting(d *regexlib.DFA) int {
	n := 0
	for _, acc := range d.Accepting {
		if acc {
			n++
		}
	}
	return n
}

func formatAlphabet(alphabet []rune) string {
	s := "["
	for i, r := range alphabet {
		if i > 0 {
			s += " "
		}
		s += string(r)
	}
	return s + "]"
}
