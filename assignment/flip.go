package assignment

import "github.com/mggg/gerrychain-go/graph"

// ApplyFlipInPlace mutates a in place per f. A node flipped to the part it
// already occupies is a no-op (spec 4.2). Fails with ErrDegenerateFlip
// without partially applying the flip if any touched part would end up
// empty.
func (a *Assignment) ApplyFlipInPlace(f Flip) error {
	if err := a.checkNotDegenerate(f); err != nil {
		return err
	}
	for v, newPart := range f {
		oldPart := a.partOf[v]
		if oldPart == newPart {
			continue
		}
		a.members[oldPart].Remove(v)
		if a.members[newPart] == nil {
			a.members[newPart] = graph.IntSet{}
		}
		a.members[newPart].Add(v)
		a.partOf[v] = newPart
	}
	a.pruneEmptyParts()
	a.recomputeSortedParts()
	return nil
}

// CloneWithFlip returns a new Assignment reflecting f, without mutating a.
// Only the members sets of parts touched by the flip are copied
// (copy-on-write), following lvlath's CloneEmpty/Clone idiom of carrying
// over unaffected state by reference rather than deep-copying everything.
func (a *Assignment) CloneWithFlip(f Flip) (*Assignment, error) {
	if err := a.checkNotDegenerate(f); err != nil {
		return nil, err
	}

	touched := graph.IntSet{}
	for v, newPart := range f {
		touched.Add(a.partOf[v])
		touched.Add(newPart)
	}

	clone := &Assignment{
		partOf:  append([]int(nil), a.partOf...),
		members: make(map[int]graph.IntSet, len(a.members)),
	}
	for p, s := range a.members {
		if touched.Has(p) {
			clone.members[p] = s.Clone()
		} else {
			clone.members[p] = s // shared; untouched by this flip
		}
	}

	for v, newPart := range f {
		oldPart := clone.partOf[v]
		if oldPart == newPart {
			continue
		}
		clone.members[oldPart].Remove(v)
		if clone.members[newPart] == nil {
			clone.members[newPart] = graph.IntSet{}
		}
		clone.members[newPart].Add(v)
		clone.partOf[v] = newPart
	}
	clone.pruneEmptyParts()
	clone.recomputeSortedParts()
	return clone, nil
}

// checkNotDegenerate reports ErrDegenerateFlip if applying f would leave
// any currently-occupied part with zero members, and ErrUnknownNode if f
// names a node outside the assignment's range.
func (a *Assignment) checkNotDegenerate(f Flip) error {
	delta := make(map[int]int, len(f))
	for v, newPart := range f {
		if v < 0 || v >= len(a.partOf) {
			return ErrUnknownNode
		}
		oldPart := a.partOf[v]
		if oldPart == newPart {
			continue
		}
		delta[oldPart]--
		delta[newPart]++
	}
	for p, d := range delta {
		if d < 0 && a.members[p].Len()+d <= 0 {
			return ErrDegenerateFlip
		}
	}
	return nil
}

// pruneEmptyParts drops any part whose member set became empty, so Parts()
// never reports a vanished district (spec invariant: every part is
// non-empty). checkNotDegenerate already guarantees this never fires for
// a legally-applied flip; it exists as a defensive closure of the
// invariant, not a normal code path.
func (a *Assignment) pruneEmptyParts() {
	for p, s := range a.members {
		if s.Len() == 0 {
			delete(a.members, p)
		}
	}
}
