// Package regexlib compiles regular expressions covering literals,
// grouping, alternation, concatenation, Kleene star, and optional, and
// simulates acceptance over the resulting NFA and DFA.
//
// The pipeline is strictly forward: Lex produces tokens, Parse produces an
// AST, BuildNFA runs Thompson construction, Determinize runs subset
// construction, and Minimize runs Hopcroft partition refinement. Build ties
// the first three stages together into an Artifact; DFA and minimal DFA are
// computed lazily from it.
package regexlib
