package match

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/abhisek/wordiz/internal/catalog"
)

func testPairs(n int) []catalog.Pair {
	pairs := []catalog.Pair{
		{WordID: "hello", English: "hello", Russian: "привет"},
		{WordID: "food", English: "food", Russian: "еда"},
		{WordID: "work", English: "work", Russian: "работа"},
		{WordID: "friend", English: "friend", Russian: "друг"},
	}
	return pairs[:n]
}

func testGame(t *testing.T, n int) *Game {
	t.Helper()
	g, err := NewGame(testPairs(n), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// findPartner returns the ID of the other card of the same pair.
func findPartner(g *Game, cardID int) int {
	cards := g.Cards()
	target := cards[cardID]
	for _, c := range cards {
		if c.PairIndex == target.PairIndex && c.ID != target.ID {
			return c.ID
		}
	}
	panic("partner not found")
}

func TestNewGame_NoPairs(t *testing.T) {
	_, err := NewGame(nil, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoPairs) {
		t.Fatalf("NewGame(nil) err = %v, want ErrNoPairs", err)
	}
}

func TestNewGame_BoardShape(t *testing.T) {
	g := testGame(t, 4)
	cards := g.Cards()

	if len(cards) != 8 {
		t.Fatalf("len(cards) = %d, want 8", len(cards))
	}

	// Every pair index appears exactly twice, once per face.
	type key struct {
		pair int
		face Face
	}
	seen := make(map[key]int)
	for _, c := range cards {
		seen[key{c.PairIndex, c.Face}]++
	}
	for i := 0; i < 4; i++ {
		if seen[key{i, FaceEnglish}] != 1 || seen[key{i, FaceRussian}] != 1 {
			t.Errorf("pair %d does not have exactly one card per face", i)
		}
	}
}

func TestNewGame_ShuffleDeterministicPerSeed(t *testing.T) {
	a, _ := NewGame(testPairs(4), rand.New(rand.NewSource(7)))
	b, _ := NewGame(testPairs(4), rand.New(rand.NewSource(7)))

	ca, cb := a.Cards(), b.Cards()
	for i := range ca {
		if ca[i].WordID != cb[i].WordID || ca[i].Face != cb[i].Face {
			t.Fatal("same seed produced different shuffles")
		}
	}
}

func TestFlip_MatchAndMismatch(t *testing.T) {
	g := testGame(t, 2)

	// Match: a card and its partner.
	res := g.Flip(0)
	if !res.Changed || res.Attempted {
		t.Fatalf("first flip result = %+v", res)
	}
	partner := findPartner(g, 0)
	res = g.Flip(partner)
	if !res.Attempted || !res.Matched {
		t.Fatalf("partner flip result = %+v, want match", res)
	}
	if g.Moves() != 1 {
		t.Errorf("Moves = %d, want 1", g.Moves())
	}
	if g.StateOf(0) != StateMatched || g.StateOf(partner) != StateMatched {
		t.Error("matched cards not in StateMatched")
	}

	// Mismatch: two cards of different pairs.
	var remaining []int
	for _, c := range g.Cards() {
		if g.StateOf(c.ID) == StateDown {
			remaining = append(remaining, c.ID)
		}
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 cards down, got %d", len(remaining))
	}
	// The remaining two cards are partners; flip one of each only if a
	// mismatch is possible, so use a 2-pair mismatch check below instead.
	g2 := testGame(t, 2)
	g2.Flip(0)
	var other int
	for _, c := range g2.Cards() {
		if c.PairIndex != g2.Cards()[0].PairIndex {
			other = c.ID
			break
		}
	}
	res = g2.Flip(other)
	if !res.Attempted || res.Matched || !res.AwaitingResolve {
		t.Fatalf("mismatch flip result = %+v", res)
	}
	if g2.Moves() != 1 {
		t.Errorf("Moves = %d, want 1 after mismatch", g2.Moves())
	}

	// No flips accepted until Resolve.
	for _, c := range g2.Cards() {
		if g2.StateOf(c.ID) == StateDown {
			if got := g2.Flip(c.ID); got.Changed {
				t.Error("flip accepted while awaiting resolve")
			}
			break
		}
	}
	g2.Resolve()
	if g2.StateOf(0) != StateDown || g2.StateOf(other) != StateDown {
		t.Error("Resolve did not turn mismatched cards back down")
	}
	if g2.Moves() != 1 {
		t.Error("Resolve changed the move count")
	}
}

func TestFlip_NoOps(t *testing.T) {
	g := testGame(t, 2)

	g.Flip(1)
	if res := g.Flip(1); res.Changed {
		t.Error("re-flipping an up card should be a no-op")
	}
	if res := g.Flip(-1); res.Changed {
		t.Error("flipping an invalid ID should be a no-op")
	}
	if res := g.Flip(99); res.Changed {
		t.Error("flipping an out-of-range ID should be a no-op")
	}

	// Matched cards cannot be flipped again.
	partner := findPartner(g, 1)
	g.Flip(partner)
	if res := g.Flip(1); res.Changed {
		t.Error("flipping a matched card should be a no-op")
	}
}

func TestSameFaceNeverMatches(t *testing.T) {
	// Build a board where we can locate both same-face cards. With the
	// same word on both faces this would otherwise be ambiguous, so use
	// distinct pairs and force-compare faces via StateOf.
	g := testGame(t, 3)
	cards := g.Cards()

	// Find two English-face cards of different pairs is a mismatch by
	// pair index already; the same-face rule matters only for pairs
	// whose both cards could carry equal content. Exercise the rule
	// directly: flip both cards of one pair and verify they match, then
	// verify no attempt between same-face cards of distinct pairs ever
	// reports Matched.
	var enA, enB int = -1, -1
	for _, c := range cards {
		if c.Face == FaceEnglish {
			if enA == -1 {
				enA = c.ID
			} else if enB == -1 {
				enB = c.ID
			}
		}
	}
	g.Flip(enA)
	res := g.Flip(enB)
	if res.Matched {
		t.Error("two English-face cards reported a match")
	}
}

func TestCompletion(t *testing.T) {
	g := testGame(t, 3)

	pairsDone := 0
	for _, c := range g.Cards() {
		if g.StateOf(c.ID) != StateDown {
			continue
		}
		g.Flip(c.ID)
		res := g.Flip(findPartner(g, c.ID))
		if !res.Matched {
			t.Fatalf("partner flip did not match: %+v", res)
		}
		pairsDone++
		if pairsDone < 3 && res.Completed {
			t.Error("Completed reported early")
		}
	}

	if !g.Completed() {
		t.Error("expected completion after matching every pair")
	}
	if g.Moves() != 3 {
		t.Errorf("Moves = %d, want 3 for a perfect game", g.Moves())
	}

	// Flips after completion are no-ops.
	if res := g.Flip(0); res.Changed {
		t.Error("flip accepted after completion")
	}
}
