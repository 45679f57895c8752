// Package board tracks what is known about the 4x4 memory-match board and
// decides which cell to click next. It has no network or timing dependencies;
// the solver feeds it server responses and asks it for moves.
package board

import "fmt"

const (
	// Size is the number of cells on the board.
	Size = 16

	// Pairs is the number of matching pairs on a full board.
	Pairs = Size / 2

	// FlagPendingReveal is the server's play_info.flag value meaning a card
	// has been flipped and is still waiting for its partner.
	FlagPendingReveal = 2
)

// Reveal is a face-up card still waiting for its partner.
type Reveal struct {
	Card  string
	Index int
}

// Outcome describes what a click did to the tracker.
type Outcome int

const (
	// OutcomePending means the click opened a new pair attempt.
	OutcomePending Outcome = iota
	// OutcomeMatch means the click completed a pair.
	OutcomeMatch
	// OutcomeMismatch means the click closed a pair attempt without a match.
	OutcomeMismatch
)

// String returns the string representation of an Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Tracker holds the last known face of every cell, the set of matched cells
// and at most one pending reveal.
// The zero value is an empty board with nothing known.
type Tracker struct {
	cards   [Size]string
	matched [Size]bool
	count   int // number of matched cells, always even

	pending    Reveal
	hasPending bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Card returns the last known identity at index, or "" if unknown.
func (t *Tracker) Card(index int) string {
	return t.cards[index]
}

// Cards returns a copy of the known identities.
func (t *Tracker) Cards() [Size]string {
	return t.cards
}

// IsMatched reports whether the cell at index has been resolved.
func (t *Tracker) IsMatched(index int) bool {
	return t.matched[index]
}

// Matched returns the matched cell indices in ascending order.
func (t *Tracker) Matched() []int {
	out := make([]int, 0, t.count)
	for i := range Size {
		if t.matched[i] {
			out = append(out, i)
		}
	}
	return out
}

// MatchedCount returns the number of matched cells.
func (t *Tracker) MatchedCount() int {
	return t.count
}

// Complete reports whether every cell has been matched.
func (t *Tracker) Complete() bool {
	return t.count == Size
}

// Pending returns the pending reveal, if any.
func (t *Tracker) Pending() (Reveal, bool) {
	return t.pending, t.hasPending
}

// Reset forgets everything.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Reveal records the identity returned by a click on index and updates the
// matched set and pending reveal accordingly.
//
// A mismatch only clears the pending slot; the cards stay known locally so
// later moves can pair them up.
func (t *Tracker) Reveal(index int, card string) (Outcome, error) {
	if index < 0 || index >= Size {
		return 0, fmt.Errorf("board: index %d out of range", index)
	}
	if card == "" {
		return 0, fmt.Errorf("board: empty card identity at index %d", index)
	}

	t.cards[index] = card

	if !t.hasPending {
		t.pending = Reveal{Card: card, Index: index}
		t.hasPending = true
		return OutcomePending, nil
	}

	prev := t.pending
	t.pending = Reveal{}
	t.hasPending = false

	if prev.Card == card && prev.Index != index {
		t.markPair(prev.Index, index)
		return OutcomeMatch, nil
	}
	return OutcomeMismatch, nil
}

func (t *Tracker) markPair(i, j int) {
	if !t.matched[i] {
		t.matched[i] = true
		t.count++
	}
	if !t.matched[j] {
		t.matched[j] = true
		t.count++
	}
}
