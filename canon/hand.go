package canon

import (
	"strings"

	"holdem-canon/card"
)

const (
	// HoleSize is the fixed size of the private segment.
	HoleSize = 2
	// MaxBoardSize is the largest allowed shared segment (full river board).
	MaxBoardSize = 5
)

// Hand is a hole segment of exactly two private cards followed by a
// board segment of 0, 3, 4 or 5 shared cards. The split is part of the
// hand's identity: sorting and canonicalization never move a card
// across it. Hand is an immutable value; all methods return copies.
type Hand struct {
	cards card.CardList
}

// NewHand validates shape (hole exactly 2, board 0/3/4/5), card
// validity and duplicates, and returns the hand. Cards are kept in the
// order given.
func NewHand(cards []card.Card) (Hand, error) {
	if len(cards) < HoleSize {
		return Hand{}, handErrorf("invalid_hole", "hand must contain at least %d cards, got %d", HoleSize, len(cards))
	}
	boardSize := len(cards) - HoleSize
	if boardSize != 0 && (boardSize < 3 || boardSize > MaxBoardSize) {
		return Hand{}, handErrorf("invalid_board", "board must contain 0, 3, 4 or 5 cards, got %d", boardSize)
	}
	seen := make(map[card.Card]struct{}, len(cards))
	for i, c := range cards {
		if !c.IsValid() {
			return Hand{}, handErrorf("invalid_card", "card[%d] is not a valid card", i)
		}
		if _, ok := seen[c]; ok {
			return Hand{}, handErrorf("duplicate_card", "card %s appears more than once", c)
		}
		seen[c] = struct{}{}
	}
	return Hand{cards: card.CardList(cards).Clone()}, nil
}

// MustHand panics on a malformed hand; intended for literals.
func MustHand(cards ...card.Card) Hand {
	h, err := NewHand(cards)
	if err != nil {
		panic(err)
	}
	return h
}

// ParseHand builds a hand from card strings such as "As" or "Td".
func ParseHand(hole []string, board []string) (Hand, error) {
	if len(hole) != HoleSize {
		return Hand{}, handErrorf("invalid_hole", "hole must contain exactly %d cards, got %d", HoleSize, len(hole))
	}
	cards := make([]card.Card, 0, len(hole)+len(board))
	for i, s := range hole {
		c, err := card.ParseCard(strings.TrimSpace(s))
		if err != nil {
			return Hand{}, handErrorf("invalid_card", "hole[%d]: %v", i, err)
		}
		cards = append(cards, c)
	}
	for i, s := range board {
		c, err := card.ParseCard(strings.TrimSpace(s))
		if err != nil {
			return Hand{}, handErrorf("invalid_card", "board[%d]: %v", i, err)
		}
		cards = append(cards, c)
	}
	return NewHand(cards)
}

// Len returns the total card count (2..7).
func (h Hand) Len() int {
	return len(h.cards)
}

// Hole returns a copy of the private segment.
func (h Hand) Hole() card.CardList {
	if len(h.cards) < HoleSize {
		return nil
	}
	return h.cards[:HoleSize].Clone()
}

// Board returns a copy of the shared segment.
func (h Hand) Board() card.CardList {
	if len(h.cards) < HoleSize {
		return nil
	}
	return h.cards[HoleSize:].Clone()
}

// Cards returns a copy of the full sequence, hole first.
func (h Hand) Cards() card.CardList {
	return h.cards.Clone()
}

func (h Hand) String() string {
	if len(h.cards) == 0 {
		return ""
	}
	out := h.cards[:HoleSize].String()
	if len(h.cards) > HoleSize {
		out += " | " + h.cards[HoleSize:].String()
	}
	return out
}

// Key returns the compact parse-compatible form, e.g. "2c2s|3c3s3d".
// The key of a canonicalized hand identifies its whole suit-isomorphism
// class, which makes it usable as a lookup or deduplication key.
func (h Hand) Key() string {
	if len(h.cards) == 0 {
		return ""
	}
	out := h.cards[:HoleSize].Code()
	if len(h.cards) > HoleSize {
		out += "|" + h.cards[HoleSize:].Code()
	}
	return out
}

// Compare orders hands card-by-card in sequence order, shorter hands
// first on a shared prefix. Segment boundaries line up for equal-length
// hands, so this is the segment-respecting lexicographic order.
func (h Hand) Compare(other Hand) int {
	for i := 0; i < len(h.cards) && i < len(other.cards); i++ {
		if h.cards[i] != other.cards[i] {
			if h.cards[i] < other.cards[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(h.cards) < len(other.cards):
		return -1
	case len(h.cards) > len(other.cards):
		return 1
	}
	return 0
}

func (h Hand) Equal(other Hand) bool {
	return h.Compare(other) == 0
}

// Permute relabels every card's suit according to p, keeping each card
// in its position. Segments may come out unsorted; see SortSegments.
func (h Hand) Permute(p SuitPermutation) Hand {
	return Hand{cards: p.Apply(h.cards)}
}

// SortSegments sorts the hole and board segments independently, never
// moving a card across the hole/board boundary.
func (h Hand) SortSegments() Hand {
	cards := h.cards.Clone()
	sortSegments(cards)
	return Hand{cards: cards}
}

func sortSegments(cards card.CardList) {
	if len(cards) < HoleSize {
		return
	}
	cards[:HoleSize].Sort()
	cards[HoleSize:].Sort()
}
