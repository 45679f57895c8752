package board

// Reconstruct rebuilds a tracker from the board snapshot reported by the
// server (play_info.info) and its flag.
//
// Equal identities are paired greedily by lowest index. The last non-empty
// cell left without a partner becomes the pending reveal, but only when flag
// is FlagPendingReveal.
//
// ongoing is true while fewer than Pairs pairs are matched; a board that
// shows every pair is treated as finished and should be refreshed. A snapshot
// whose length is not Size yields an empty tracker and ongoing == false.
func Reconstruct(snapshot []string, flag int) (t *Tracker, ongoing bool) {
	t = NewTracker()
	if len(snapshot) != Size {
		return t, false
	}

	copy(t.cards[:], snapshot)

	pairs := 0
	candidate := -1
	for i := range Size {
		if t.cards[i] == "" || t.matched[i] {
			continue
		}

		found := false
		for j := i + 1; j < Size; j++ {
			if t.matched[j] || t.cards[j] != t.cards[i] {
				continue
			}
			t.markPair(i, j)
			pairs++
			found = true
			break
		}

		if !found {
			candidate = i
		}
	}

	if flag == FlagPendingReveal && candidate >= 0 {
		t.pending = Reveal{Card: t.cards[candidate], Index: candidate}
		t.hasPending = true
	}

	return t, pairs < Pairs
}
