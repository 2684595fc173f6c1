package regexlib

import "sort"

// completed returns d with an explicit dead state materialized for every
// transition DeadState otherwise leaves implicit, making it total over
// d.Alphabet. Complement requires a total DFA to behave correctly; Product
// does not call this and instead tracks DeadState on either side of a state
// pair.
func completed(d *DFA) *DFA {
	dead := -1
	for _, row := range d.Trans {
		for _, to := range row {
			if to == DeadState {
				dead = d.NumStates
			}
		}
	}
	if dead == -1 {
		return d
	}

	n := d.NumStates
	trans := make([][]int, n+1)
	accepting := make([]bool, n+1)
	for i := 0; i < n; i++ {
		row := make([]int, len(d.Alphabet))
		for j, to := range d.Trans[i] {
			if to == DeadState {
				row[j] = dead
			} else {
				row[j] = to
			}
		}
		trans[i] = row
		accepting[i] = d.Accepting[i]
	}
	deadRow := make([]int, len(d.Alphabet))
	for j := range deadRow {
		deadRow[j] = dead
	}
	trans[dead] = deadRow
	accepting[dead] = false

	return &DFA{NumStates: n + 1, Start: d.Start, Accepting: accepting, Trans: trans, Alphabet: d.Alphabet}
}

// Complement returns a DFA accepting exactly the strings over d's alphabet
// that d rejects.
func Complement(d *DFA) *DFA {
	c := completed(d)
	accepting := make([]bool, c.NumStates)
	for i, acc := range c.Accepting {
		accepting[i] = !acc
	}
	return &DFA{NumStates: c.NumStates, Start: c.Start, Accepting: accepting, Trans: c.Trans, Alphabet: c.Alphabet}
}

func unionAlphabet(a, b []rune) []rune {
	seen := map[rune]bool{}
	for _, r := range a {
		seen[r] = true
	}
	for _, r := range b {
		seen[r] = true
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func indexOfRuneIn(alphabet []rune, c rune) int {
	for i, r := range alphabet {
		if r == c {
			return i
		}
	}
	return -1
}

// pairID identifies one state of the product automaton: a pair of state
// indices in a and b respectively, with DeadState standing in for "off the
// transition table" on either side.
type pairID struct{ a, b int }

// Product builds the synchronized product automaton of a and b over the
// union of their alphabets, combining acceptance at each reachable pair of
// states via op. Union and Intersect are its two named instantiations.
func Product(a, b *DFA, op func(x, y bool) bool) *DFA {
	alphabet := unionAlphabet(a.Alphabet, b.Alphabet)
	ids := map[pairID]int{}
	var states []pairID

	idOf := func(p pairID) int {
		if id, ok := ids[p]; ok {
			return id
		}
		id := len(states)
		ids[p] = id
		states = append(states, p)
		return id
	}
	idOf(pairID{a.Start, b.Start})

	var trans [][]int
	var accepting []bool
	for idx := 0; idx < len(states); idx++ {
		p := states[idx]
		aAccept := p.a != DeadState && a.Accepting[p.a]
		bAccept := p.b != DeadState && b.Accepting[p.b]
		accepting = append(accepting, op(aAccept, bAccept))

		row := make([]int, len(alphabet))
		for k, c := range alphabet {
			nextA := DeadState
			if p.a != DeadState {
				if ai := indexOfRuneIn(a.Alphabet, c); ai >= 0 {
					nextA = a.Trans[p.a][ai]
				}
			}
			nextB := DeadState
			if p.b != DeadState {
				if bi := indexOfRuneIn(b.Alphabet, c); bi >= 0 {
					nextB = b.Trans[p.b][bi]
				}
			}
			if nextA == DeadState && nextB == DeadState {
				row[k] = DeadState
				continue
			}
			row[k] = idOf(pairID{nextA, nextB})
		}
		trans = append(trans, row)
	}

	return &DFA{NumStates: len(states), Start: 0, Accepting: accepting, Trans: trans, Alphabet: alphabet}
}

// Union returns a DFA accepting the union of a's and b's languages.
func Union(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

// Intersect returns a DFA accepting the intersection of a's and b's
// languages.
func Intersect(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x && y })
}
