package match

import (
	"errors"
	"math/rand"

	"github.com/abhisek/wordiz/internal/catalog"
)

// ErrNoPairs means a game was started with no pairs.
var ErrNoPairs = errors.New("memory game needs at least one pair")

// Face marks which side of a pair a card shows.
type Face string

const (
	FaceEnglish Face = "en"
	FaceRussian Face = "ru"
)

// Card is one of the 2×N cards on the board. Every pair produces one
// English-face and one Russian-face card.
type Card struct {
	ID        int
	PairIndex int
	Face      Face
	Content   string
	WordID    string
}

// CardState is where a card currently sits. A card is in exactly one
// state at any time.
type CardState int

const (
	StateDown CardState = iota
	StateUp
	StateMatched
)

// FlipResult reports what a Flip call did.
type FlipResult struct {
	// Changed is false when the flip was a no-op (card already up or
	// matched, or two cards were already face up awaiting Resolve).
	Changed bool

	// Attempted is true when this flip completed a 2-card attempt.
	Attempted bool

	// Matched is true when the attempt paired the two cards.
	Matched bool

	// AwaitingResolve is true after a failed attempt: the mismatched
	// cards stay up until Resolve is called (UI pause is the caller's
	// concern).
	AwaitingResolve bool

	// Completed is true once every card is matched.
	Completed bool
}

// Game is the memory-match board: shuffled cards, at most two face up,
// a matched set, and a move counter.
type Game struct {
	cards   []Card
	flipped []int // card IDs currently face up, len ≤ 2
	matched map[int]bool
	moves   int
}

// NewGame builds and shuffles the board. The shuffle is driven by the
// injected rand source so tests can make it deterministic; rand.Shuffle
// is an unbiased Fisher–Yates.
func NewGame(pairs []catalog.Pair, rng *rand.Rand) (*Game, error) {
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	cards := make([]Card, 0, 2*len(pairs))
	for i, p := range pairs {
		cards = append(cards,
			Card{PairIndex: i, Face: FaceEnglish, Content: p.English, WordID: p.WordID},
			Card{PairIndex: i, Face: FaceRussian, Content: p.Russian, WordID: p.WordID},
		)
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	for i := range cards {
		cards[i].ID = i
	}

	return &Game{
		cards:   cards,
		matched: make(map[int]bool),
	}, nil
}

// Cards returns the board in display order.
func (g *Game) Cards() []Card {
	out := make([]Card, len(g.cards))
	copy(out, g.cards)
	return out
}

// StateOf returns the current state of a card.
func (g *Game) StateOf(cardID int) CardState {
	if g.matched[cardID] {
		return StateMatched
	}
	for _, id := range g.flipped {
		if id == cardID {
			return StateUp
		}
	}
	return StateDown
}

// Moves returns the number of completed 2-card attempts so far.
func (g *Game) Moves() int {
	return g.moves
}

// Completed reports whether every card has been matched.
func (g *Game) Completed() bool {
	return len(g.matched) == len(g.cards)
}

// AwaitingResolve reports whether a failed attempt is waiting for
// Resolve before more flips are accepted.
func (g *Game) AwaitingResolve() bool {
	return len(g.flipped) == 2
}

// Flip turns a card face up. Flipping an already-up or matched card, or
// flipping while two cards are up, is a no-op. The second card of an
// attempt increments the move counter and matches when both cards share
// a pair index but differ in face; same-face cards never match.
func (g *Game) Flip(cardID int) FlipResult {
	if cardID < 0 || cardID >= len(g.cards) {
		return FlipResult{}
	}
	if len(g.flipped) == 2 || g.StateOf(cardID) != StateDown {
		return FlipResult{}
	}

	g.flipped = append(g.flipped, cardID)
	if len(g.flipped) < 2 {
		return FlipResult{Changed: true}
	}

	g.moves++
	a, b := g.cards[g.flipped[0]], g.cards[g.flipped[1]]
	if a.PairIndex == b.PairIndex && a.Face != b.Face {
		g.matched[a.ID] = true
		g.matched[b.ID] = true
		g.flipped = nil
		return FlipResult{
			Changed:   true,
			Attempted: true,
			Matched:   true,
			Completed: g.Completed(),
		}
	}
	return FlipResult{Changed: true, Attempted: true, AwaitingResolve: true}
}

// Resolve turns a mismatched pair back down. No-op unless exactly two
// unmatched cards are face up.
func (g *Game) Resolve() {
	if len(g.flipped) == 2 {
		g.flipped = nil
	}
}
