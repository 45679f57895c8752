package board

import (
	"reflect"
	"testing"
)

// snapshot builds a Size-cell snapshot from index -> identity pairs.
func snapshot(cells map[int]string) []string {
	s := make([]string, Size)
	for i, c := range cells {
		s[i] = c
	}
	return s
}

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name        string
		snapshot    []string
		flag        int
		wantOngoing bool
		wantMatched []int
		wantPending *Reveal
	}{
		{
			name:        "empty board",
			snapshot:    snapshot(nil),
			flag:        0,
			wantOngoing: true,
			wantMatched: []int{},
		},
		{
			name:        "one known pair",
			snapshot:    snapshot(map[int]string{0: "cardA", 5: "cardA"}),
			flag:        0,
			wantOngoing: true,
			wantMatched: []int{0, 5},
		},
		{
			name:        "unpaired card ignored without flag",
			snapshot:    snapshot(map[int]string{0: "cardA", 5: "cardA", 7: "cardB"}),
			flag:        0,
			wantOngoing: true,
			wantMatched: []int{0, 5},
		},
		{
			name:        "unpaired card trusted with flag",
			snapshot:    snapshot(map[int]string{0: "cardA", 5: "cardA", 7: "cardB"}),
			flag:        FlagPendingReveal,
			wantOngoing: true,
			wantMatched: []int{0, 5},
			wantPending: &Reveal{Card: "cardB", Index: 7},
		},
		{
			name:        "last unpaired card wins",
			snapshot:    snapshot(map[int]string{2: "cardB", 9: "cardC"}),
			flag:        FlagPendingReveal,
			wantOngoing: true,
			wantMatched: []int{},
			wantPending: &Reveal{Card: "cardC", Index: 9},
		},
		{
			name:        "second half of a pair is never pending",
			snapshot:    snapshot(map[int]string{3: "cardB", 6: "cardA", 11: "cardA"}),
			flag:        FlagPendingReveal,
			wantOngoing: true,
			wantMatched: []int{6, 11},
			wantPending: &Reveal{Card: "cardB", Index: 3},
		},
		{
			name:        "triple identity pairs only the lowest two",
			snapshot:    snapshot(map[int]string{0: "cardA", 1: "cardA", 2: "cardA"}),
			flag:        0,
			wantOngoing: true,
			wantMatched: []int{0, 1},
		},
		{
			name:        "short snapshot",
			snapshot:    []string{"cardA", "cardA"},
			flag:        FlagPendingReveal,
			wantOngoing: false,
			wantMatched: []int{},
		},
		{
			name:        "long snapshot",
			snapshot:    make([]string, Size+1),
			flag:        0,
			wantOngoing: false,
			wantMatched: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ongoing := Reconstruct(tt.snapshot, tt.flag)
			if ongoing != tt.wantOngoing {
				t.Errorf("Reconstruct() ongoing = %v, want %v", ongoing, tt.wantOngoing)
			}
			if got := tr.Matched(); !reflect.DeepEqual(got, tt.wantMatched) {
				t.Errorf("Reconstruct() matched = %v, want %v", got, tt.wantMatched)
			}
			p, has := tr.Pending()
			if tt.wantPending == nil {
				if has {
					t.Errorf("Reconstruct() pending = %+v, want none", p)
				}
				return
			}
			if !has || p != *tt.wantPending {
				t.Errorf("Reconstruct() pending = %+v (%v), want %+v", p, has, *tt.wantPending)
			}
		})
	}
}

func solvedSnapshot() []string {
	s := make([]string, Size)
	for i := range Size {
		s[i] = string(rune('A' + i%Pairs))
	}
	return s
}

func TestReconstructCompleteBoardIsNotOngoing(t *testing.T) {
	for _, flag := range []int{0, 1, FlagPendingReveal} {
		tr, ongoing := Reconstruct(solvedSnapshot(), flag)
		if ongoing {
			t.Errorf("flag %d: complete board reported as ongoing", flag)
		}
		if !tr.Complete() {
			t.Errorf("flag %d: MatchedCount() = %d, want %d", flag, tr.MatchedCount(), Size)
		}
		if _, has := tr.Pending(); has {
			t.Errorf("flag %d: complete board has a pending reveal", flag)
		}
	}
}

func TestReconstructMatchedSetInvariants(t *testing.T) {
	snapshots := [][]string{
		snapshot(nil),
		solvedSnapshot(),
		snapshot(map[int]string{0: "x", 15: "x", 3: "y", 4: "z", 8: "y"}),
		snapshot(map[int]string{1: "a", 2: "a", 3: "a", 4: "a", 5: "a"}),
		snapshot(map[int]string{10: "q"}),
	}

	for n, s := range snapshots {
		for _, flag := range []int{0, FlagPendingReveal} {
			tr, _ := Reconstruct(s, flag)
			if tr.MatchedCount()%2 != 0 {
				t.Errorf("snapshot %d flag %d: odd matched count %d", n, flag, tr.MatchedCount())
			}
			if len(tr.Matched()) != tr.MatchedCount() {
				t.Errorf("snapshot %d: Matched() has %d cells, count is %d", n, len(tr.Matched()), tr.MatchedCount())
			}
			for _, i := range tr.Matched() {
				partners := 0
				for _, j := range tr.Matched() {
					if i != j && tr.Card(i) == tr.Card(j) {
						partners++
					}
				}
				if partners == 0 {
					t.Errorf("snapshot %d: matched cell %d (%q) has no equal partner", n, i, tr.Card(i))
				}
			}
			if flag != FlagPendingReveal {
				if _, has := tr.Pending(); has {
					t.Errorf("snapshot %d: pending reveal set with flag %d", n, flag)
				}
			}
		}
	}
}

func TestTrackerReveal(t *testing.T) {
	tr := NewTracker()

	out, err := tr.Reveal(2, "cardX")
	if err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if out != OutcomePending {
		t.Errorf("Reveal() = %v, want %v", out, OutcomePending)
	}
	if p, has := tr.Pending(); !has || p != (Reveal{Card: "cardX", Index: 2}) {
		t.Errorf("Pending() = %+v (%v), want cardX@2", p, has)
	}

	out, err = tr.Reveal(9, "cardX")
	if err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if out != OutcomeMatch {
		t.Errorf("Reveal() = %v, want %v", out, OutcomeMatch)
	}
	if got := tr.Matched(); !reflect.DeepEqual(got, []int{2, 9}) {
		t.Errorf("Matched() = %v, want [2 9]", got)
	}
	if _, has := tr.Pending(); has {
		t.Error("pending reveal should be cleared after a match")
	}
}

func TestTrackerRevealMismatch(t *testing.T) {
	tr := NewTracker()
	tr.Reveal(0, "cardA")

	out, err := tr.Reveal(1, "cardB")
	if err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if out != OutcomeMismatch {
		t.Errorf("Reveal() = %v, want %v", out, OutcomeMismatch)
	}
	if tr.MatchedCount() != 0 {
		t.Errorf("MatchedCount() = %d, want 0", tr.MatchedCount())
	}
	if _, has := tr.Pending(); has {
		t.Error("pending reveal should be cleared after a mismatch")
	}
	// Faces stay known after a mismatch.
	if tr.Card(0) != "cardA" || tr.Card(1) != "cardB" {
		t.Errorf("Cards() = %v, want cardA, cardB remembered", tr.Cards())
	}
}

func TestTrackerRevealRejectsBadInput(t *testing.T) {
	tr := NewTracker()
	if _, err := tr.Reveal(-1, "a"); err == nil {
		t.Error("Reveal(-1) should fail")
	}
	if _, err := tr.Reveal(Size, "a"); err == nil {
		t.Errorf("Reveal(%d) should fail", Size)
	}
	if _, err := tr.Reveal(3, ""); err == nil {
		t.Error("Reveal with empty card should fail")
	}
	if tr.Card(3) != "" {
		t.Error("rejected reveal must not change the board")
	}
}

func TestTrackerReset(t *testing.T) {
	tr, _ := Reconstruct(snapshot(map[int]string{0: "a", 1: "a", 2: "b"}), FlagPendingReveal)
	tr.Reset()

	if tr.MatchedCount() != 0 || tr.Cards() != [Size]string{} {
		t.Error("Reset() should clear cards and matches")
	}
	if _, has := tr.Pending(); has {
		t.Error("Reset() should clear the pending reveal")
	}
}
