// Package presets bundles a small catalog of worked regex patterns used to
// seed the CLI and batch-script modes with known-good starting points, and
// lets a caller search that catalog by free-text terms.
package presets

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/trevorflahardy/RegViz/regexlib"
)

// Sample is one input string and the acceptance outcome a catalog entry's
// pattern is expected to produce for it.
type Sample struct {
	Input    string
	Expected bool
}

// Example is one catalog entry: a named, described pattern together with a
// handful of samples a caller can use to sanity-check a build against it.
type Example struct {
	Name        string
	Pattern     string
	Description string
	Samples     []Sample
}

// All is the fixed catalog, in display order.
func All() []Example {
	return []Example{
		{
			Name:        "Balanced As",
			Pattern:     "a(b+c)*a",
			Description: "an 'a', any run of b/c, then a closing 'a'",
			Samples: []Sample{
				{Input: "aa", Expected: true},
				{Input: "aba", Expected: true},
				{Input: "aca", Expected: true},
				{Input: "abcbca", Expected: true},
				{Input: "a", Expected: false},
				{Input: "ab", Expected: false},
				{Input: "abc", Expected: false},
			},
		},
		{
			Name:        "AB Repeats Or C",
			Pattern:     "(ab)*+c",
			Description: "zero or more \"ab\" pairs, or a lone \"c\"",
			Samples: []Sample{
				{Input: "", Expected: true},
				{Input: "ab", Expected: true},
				{Input: "abab", Expected: true},
				{Input: "c", Expected: true},
				{Input: "a", Expected: false},
				{Input: "abc", Expected: false},
				{Input: "cc", Expected: false},
			},
		},
		{
			Name:        "Optional Prefix",
			Pattern:     "a?bc",
			Description: "an optional leading 'a' followed by \"bc\"",
			Samples: []Sample{
				{Input: "bc", Expected: true},
				{Input: "abc", Expected: true},
				{Input: "c", Expected: false},
				{Input: "aabc", Expected: false},
				{Input: "", Expected: false},
			},
		},
		{
			Name:        "Epsilon Or A, Then B",
			Pattern:     `(\e+a)b`,
			Description: "an optional 'a' (via an explicit epsilon branch) then 'b'",
			Samples: []Sample{
				{Input: "b", Expected: true},
				{Input: "ab", Expected: true},
				{Input: "aab", Expected: false},
				{Input: "a", Expected: false},
				{Input: "", Expected: false},
			},
		},
		{
			Name:        "Doubled Pair",
			Pattern:     "(aa+aa)",
			Description: "exactly two 'a's, spelled as an alternation of itself",
			Samples: []Sample{
				{Input: "aa", Expected: true},
				{Input: "", Expected: false},
				{Input: "a", Expected: false},
				{Input: "aaa", Expected: false},
			},
		},
	}
}

// index precomputes the lowered "name pattern description" haystack text for
// every catalog entry, so Search only has to build one Aho-Corasick
// automaton per call (over the caller's terms) and run it once per entry.
type index struct {
	entries   []Example
	haystacks []string
}

var catalogIndex = buildIndex()

func buildIndex() *index {
	entries := All()
	haystacks := make([]string, len(entries))
	for i, e := range entries {
		haystacks[i] = strings.ToLower(e.Name + " " + e.Pattern + " " + e.Description)
	}
	return &index{entries: entries, haystacks: haystacks}
}

// Search returns every catalog Example whose name, pattern, or description
// text contains at least one of terms, matched case-insensitively via a
// single Aho-Corasick pass per entry. An empty terms list returns the full
// catalog, matching the "no filter" reading of an empty search box.
func Search(terms []string) []Example {
	if len(terms) == 0 {
		return All()
	}
	builder := ahocorasick.NewBuilder()
	lowered := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		lowered = append(lowered, term)
		builder.AddPattern([]byte(term))
	}
	if len(lowered) == 0 {
		return All()
	}
	automaton, err := builder.Build()
	if err != nil {
		return searchFallback(lowered, catalogIndex.entries, catalogIndex.haystacks)
	}

	var results []Example
	for i, h := range catalogIndex.haystacks {
		if automaton.IsMatch([]byte(h)) {
			results = append(results, catalogIndex.entries[i])
		}
	}
	return results
}

// searchFallback is used only if the automaton fails to build (in practice
// this cannot happen for non-empty pattern sets); it keeps Search total.
func searchFallback(terms []string, entries []Example, haystacks []string) []Example {
	var results []Example
	for i, h := range haystacks {
		for _, term := range terms {
			if strings.Contains(h, term) {
				results = append(results, entries[i])
				break
			}
		}
	}
	return results
}

// Verify compiles every catalog entry's pattern and checks it against its
// own samples' expected NFA and DFA acceptance, returning a
// *ConsistencyError that names the first entry that fails to build or
// disagrees with its own recorded expectations. A nil return means the
// whole catalog is internally consistent.
func Verify() error {
	for _, e := range All() {
		art, err := regexlib.Build(e.Pattern)
		if err != nil {
			return &ConsistencyError{Example: e.Name, Reason: err.Error()}
		}
		min := art.MinDFA()
		for _, s := range e.Samples {
			if got := regexlib.NFAAccepts(art.NFA, s.Input); got != s.Expected {
				return &ConsistencyError{Example: e.Name, Reason: "NFA acceptance of " + quote(s.Input) + " is " + boolWord(got) + ", want " + boolWord(s.Expected)}
			}
			if got := regexlib.DFAAccepts(min, s.Input); got != s.Expected {
				return &ConsistencyError{Example: e.Name, Reason: "DFA acceptance of " + quote(s.Input) + " is " + boolWord(got) + ", want " + boolWord(s.Expected)}
			}
		}
	}
	return nil
}

func boolWord(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func quote(s string) string {
	return "\"" + s + "\""
}

// ConsistencyError reports a preset catalog entry whose recorded samples
// disagree with what its own pattern actually compiles to.
type ConsistencyError struct {
	Example string
	Reason  string
}

func (e *ConsistencyError) Error() string {
	return "preset " + quote(e.Example) + ": " + e.Reason
}
