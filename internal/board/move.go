package board

// NextMove picks the next cell to click. Rules are tried in order:
//
//  1. complete the pending reveal with a known, unmatched partner;
//  2. click the lower cell of the first known, unmatched pair;
//  3. explore the lowest unmatched cell whose face is unknown.
//
// ok is false when no rule applies, which cannot happen on a consistent board.
func NextMove(t *Tracker) (index int, ok bool) {
	if p, has := t.Pending(); has {
		for i := range Size {
			if i != p.Index && !t.matched[i] && t.cards[i] == p.Card {
				return i, true
			}
		}
	}

	for i := range Size {
		if t.matched[i] || t.cards[i] == "" {
			continue
		}
		for j := i + 1; j < Size; j++ {
			if t.matched[j] || t.cards[j] == "" {
				continue
			}
			if t.cards[i] == t.cards[j] {
				return i, true
			}
		}
	}

	for i := range Size {
		if !t.matched[i] && t.cards[i] == "" {
			return i, true
		}
	}

	return -1, false
}
