package regexlib

import "sort"

// partitionSet tracks the current blocks of a Hopcroft partition
// refinement as a map from block id to sorted member state ids, plus a
// per-state reverse index. Block ids are never reused once retired by a
// split, so worklist membership checks by id stay unambiguous.
type partitionSet struct {
	nextID  int
	blocks  map[int][]int
	classOf []int
}

func newPartitionSet(numStates int) *partitionSet {
	return &partitionSet{blocks: map[int][]int{}, classOf: make([]int, numStates)}
}

func (p *partitionSet) add(members []int) int {
	id := p.nextID
	p.nextID++
	sorted := append([]int(nil), members...)
	sort.Ints(sorted)
	p.blocks[id] = sorted
	for _, s := range sorted {
		p.classOf[s] = id
	}
	return id
}

func (p *partitionSet) replace(old int, halves [2][]int) (int, int) {
	delete(p.blocks, old)
	id1 := p.add(halves[0])
	id2 := p.add(halves[1])
	return id1, id2
}

func removeFromWorklist(worklist []int, id int) ([]int, bool) {
	for i, w := range worklist {
		if w == id {
			return append(append([]int(nil), worklist[:i]...), worklist[i+1:]...), true
		}
	}
	return worklist, false
}

// Minimize computes the minimal DFA equivalent to d via Hopcroft-style
// partition refinement: the worklist is seeded with both the accepting and
// the non-accepting block, and for each popped block and symbol, every
// existing block whose preimage under that symbol straddles the popped
// block is split, with both halves enqueued. d leaves dead transitions
// implicit (DeadState), so enqueueing only the smaller half, as the
// total-DFA form of the algorithm does, would leave distinguishable states
// merged.
func Minimize(d *DFA) *DFA {
	if d.NumStates <= 1 {
		return d.clone()
	}

	var accepting, nonAccepting []int
	for s := 0; s < d.NumStates; s++ {
		if d.Accepting[s] {
			accepting = append(accepting, s)
		} else {
			nonAccepting = append(nonAccepting, s)
		}
	}

	parts := newPartitionSet(d.NumStates)
	var worklist []int

	var accID, nonID int
	haveAcc, haveNon := len(accepting) > 0, len(nonAccepting) > 0
	if haveAcc {
		accID = parts.add(accepting)
	}
	if haveNon {
		nonID = parts.add(nonAccepting)
	}
	if haveAcc {
		worklist = append(worklist, accID)
	}
	if haveNon {
		worklist = append(worklist, nonID)
	}

	for len(worklist) > 0 {
		a := worklist[0]
		worklist = worklist[1:]

		members, ok := parts.blocks[a]
		if !ok {
			// a was itself split apart while sitting in the worklist as a
			// bystander Y for some other symbol; its successors were
			// already enqueued when that happened.
			continue
		}
		aMembers := map[int]bool{}
		for _, s := range members {
			aMembers[s] = true
		}

		for ci := range d.Alphabet {
			inX := map[int]bool{}
			for s := 0; s < d.NumStates; s++ {
				dst := d.Trans[s][ci]
				if dst != DeadState && aMembers[dst] {
					inX[s] = true
				}
			}
			if len(inX) == 0 {
				continue
			}

			existing := make([]int, 0, len(parts.blocks))
			for id := range parts.blocks {
				existing = append(existing, id)
			}
			sort.Ints(existing)

			for _, y := range existing {
				members := parts.blocks[y]
				var inPart, outPart []int
				for _, s := range members {
					if inX[s] {
						inPart = append(inPart, s)
					} else {
						outPart = append(outPart, s)
					}
				}
				if len(inPart) == 0 || len(outPart) == 0 {
					continue
				}
				id1, id2 := parts.replace(y, [2][]int{inPart, outPart})
				if newList, removed := removeFromWorklist(worklist, y); removed {
					worklist = newList
				}
				worklist = append(worklist, id1, id2)
			}
		}
	}

	return rebuildFromPartitions(d, parts)
}

func rebuildFromPartitions(d *DFA, parts *partitionSet) *DFA {
	finalIDs := make([]int, 0, len(parts.blocks))
	for id := range parts.blocks {
		finalIDs = append(finalIDs, id)
	}
	startBlock := parts.classOf[d.Start]
	sort.Slice(finalIDs, func(i, j int) bool {
		bi, bj := finalIDs[i], finalIDs[j]
		if bi == startBlock {
			return bj != startBlock
		}
		if bj == startBlock {
			return false
		}
		return minInt(parts.blocks[bi]) < minInt(parts.blocks[bj])
	})

	newIndex := make(map[int]int, len(finalIDs))
	for newID, oldID := range finalIDs {
		newIndex[oldID] = newID
	}

	numStates := len(finalIDs)
	trans := make([][]int, numStates)
	accepting := make([]bool, numStates)
	for newID, oldID := range finalIDs {
		members := parts.blocks[oldID]
		rep := members[0]
		row := make([]int, len(d.Alphabet))
		for ci := range d.Alphabet {
			dst := d.Trans[rep][ci]
			if dst == DeadState {
				row[ci] = DeadState
			} else {
				row[ci] = newIndex[parts.classOf[dst]]
			}
		}
		trans[newID] = row
		for _, s := range members {
			if d.Accepting[s] {
				accepting[newID] = true
				break
			}
		}
	}

	return &DFA{
		NumStates: numStates,
		Start:     newIndex[startBlock],
		Accepting: accepting,
		Trans:     trans,
		Alphabet:  append([]rune(nil), d.Alphabet...),
	}
}

func minInt(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
