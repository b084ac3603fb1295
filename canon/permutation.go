package canon

import "holdem-canon/card"

// SuitPermutation is a bijective relabeling of the four suits. Entry i
// is the suit that original suit i is output as.
type SuitPermutation SuitMap[card.Suit]

// NewSuitPermutation builds a permutation from its target suits. A
// target set that is not a bijection means the assignment algorithm is
// defective, so this panics rather than returning an error.
func NewSuitPermutation(targets SuitMap[card.Suit]) SuitPermutation {
	var seen SuitMap[bool]
	for _, target := range targets {
		if target >= card.NumSuits || seen[target] {
			panic("canon: suit permutation must use every suit exactly once")
		}
		seen[target] = true
	}
	return SuitPermutation(targets)
}

// IdentitySuitPermutation maps every suit to itself.
func IdentitySuitPermutation() SuitPermutation {
	return SuitPermutation{card.Clubs, card.Diamonds, card.Hearts, card.Spades}
}

// Map returns the relabeled suit for s.
func (p SuitPermutation) Map(s card.Suit) card.Suit {
	return p[s]
}

// Inverse returns the permutation that undoes p.
func (p SuitPermutation) Inverse() SuitPermutation {
	var inv SuitPermutation
	for s, target := range p {
		inv[target] = card.Suit(s)
	}
	return inv
}

// Apply relabels every card's suit according to p. Ranks and sequence
// order are untouched; the input is not modified.
func (p SuitPermutation) Apply(cards card.CardList) card.CardList {
	out := cards.Clone()
	for i, c := range out {
		out[i] = c.WithSuit(p.Map(c.Suit()))
	}
	return out
}

// AllSuitPermutations returns the full 24-element relabeling group in a
// fixed order, with the identity first.
func AllSuitPermutations() []SuitPermutation {
	perms := make([]SuitPermutation, 0, 24)
	for a := card.Clubs; a < card.NumSuits; a++ {
		for b := card.Clubs; b < card.NumSuits; b++ {
			if b == a {
				continue
			}
			for c := card.Clubs; c < card.NumSuits; c++ {
				if c == a || c == b {
					continue
				}
				d := card.Suit(0) + card.Suit(1) + card.Suit(2) + card.Suit(3) - a - b - c
				perms = append(perms, SuitPermutation{a, b, c, d})
			}
		}
	}
	return perms
}
