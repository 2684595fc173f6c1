package regexlib

import "strings"

// ToPattern converts a DFA back into an equivalent pattern in this
// package's own grammar via McNaughton-Yamada state elimination: build a
// table of per-pair expressions R[i][j] over shrinking sets of allowed
// intermediate states, then read off the alternation of the start-to-each-
// accept entries. Alternation is written with '+' and concatenation is
// implicit, matching this package's grammar rather than the classical
// '|'-based one.
func (d *DFA) ToPattern() string {
	if d == nil || d.NumStates == 0 {
		return ""
	}

	n := d.NumStates
	R := make([][]string, n)
	for i := range R {
		R[i] = make([]string, n)
	}

	for i := 0; i < n; i++ {
		for k, c := range d.Alphabet {
			to := d.Trans[i][k]
			if to == DeadState {
				continue
			}
			R[i][to] = altJoin(R[i][to], escapeMeta(c))
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			for j := 0; j < n; j++ {
				if j == k {
					continue
				}
				rik, rkk, rkj := R[i][k], R[k][k], R[k][j]
				if rik == "" || rkj == "" {
					continue
				}
				middle := ""
				if rkk != "" {
					middle = "(" + rkk + ")*"
				}
				R[i][j] = altJoin(R[i][j], grouped(rik)+middle+grouped(rkj))
			}
		}
	}

	var parts []string
	for j := 0; j < n; j++ {
		if !d.Accepting[j] {
			continue
		}
		if j == d.Start {
			parts = append(parts, `\e`)
		}
		if part := R[d.Start][j]; part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "+")
}

func escapeMeta(c rune) string {
	switch c {
	case '+', '*', '.', '?', '(', ')', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}

func altJoin(existing, next string) string {
	if existing == "" {
		return next
	}
	return existing + "+" + next
}

func grouped(s string) string {
	if strings.ContainsRune(s, '+') {
		return "(" + s + ")"
	}
	return s
}
