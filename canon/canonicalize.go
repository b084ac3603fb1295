// Package canon canonicalizes community-card poker hands under the
// 24-element group of suit relabelings. Two hands that differ only by a
// global renaming of suits are strategically identical; Canonicalize
// maps every member of such a class to its lexicographically smallest
// form, so suit-isomorphic hands collapse to one lookup entry.
package canon

import "holdem-canon/card"

// label is a canonical suit once assigned, or absent.
type label struct {
	suit card.Suit
	ok   bool
}

// labelGenerator hands out the canonical suits in enumeration order,
// each exactly once per canonicalization.
type labelGenerator struct {
	next card.Suit
}

func (g *labelGenerator) take() card.Suit {
	if g.next >= card.NumSuits {
		panic("canon: canonical suit labels exhausted")
	}
	s := g.next
	g.next++
	return s
}

// Canonicalize returns the smallest hand, under the segment-respecting
// lexicographic order, among all 24 suit relabelings of h. The result
// has the same length, the same hole/board split and the same rank
// multiset as h, with both segments sorted. It is a pure function and
// safe for concurrent use.
func Canonicalize(h Hand) Hand {
	cards := h.cards.Clone()
	sortSegments(cards)
	resolveHoleOrder(cards)

	var assigned SuitMap[label]
	var gen labelGenerator

	// The hole suits take the first labels in their resolved order:
	// the hole is compared before any board card, so nothing later can
	// justify a different relative labeling.
	for _, c := range cards[:HoleSize] {
		if !assigned[c.Suit()].ok {
			assigned[c.Suit()] = label{suit: gen.take(), ok: true}
		}
	}

	// Walk the board in sorted order. A card is not passed until its
	// suit is labeled; each iteration labels one suit of the card's
	// rank group, which may be another group member's suit when the
	// lookahead says that one sorts first.
	for i := HoleSize; i < len(cards); i++ {
		for !assigned[cards[i].Suit()].ok {
			j := i + 1
			for j < len(cards) && cards[j].Rank() == cards[i].Rank() {
				j++
			}

			var candidates SuitMap[bool]
			ambiguous := 0
			for k := i; k < j; k++ {
				s := cards[k].Suit()
				if !assigned[s].ok && !candidates[s] {
					candidates[s] = true
					ambiguous++
				}
			}

			next := cards[i].Suit()
			if ambiguous > 1 {
				// An unresolved scan leaves the current card's own
				// suit as the pick; any labeling among suits the tail
				// never tells apart yields the same canonical hand.
				if s, ok := resolveFirstSuit(cards[j:], candidates); ok {
					next = s
				}
			}
			assigned[next] = label{suit: gen.take(), ok: true}
		}
	}

	// Suits absent from the hand take the leftover labels in
	// enumeration order so the permutation is total.
	targets := TransformSuitMap(assigned, func(l label) card.Suit {
		if l.ok {
			return l.suit
		}
		return gen.take()
	})

	out := NewSuitPermutation(targets).Apply(cards)
	// Relabeling can reorder cards inside a same-rank group.
	sortSegments(out)
	return Hand{cards: out}
}

// resolveHoleOrder fixes the relative order of a pocket pair's suits
// before any label is handed out. The board decides which hole suit
// sorts first; when it never tells the two apart, the existing order
// stays (both choices produce the same canonical hand).
func resolveHoleOrder(cards card.CardList) {
	if cards[0].Rank() != cards[1].Rank() {
		return
	}
	var candidates SuitMap[bool]
	candidates[cards[0].Suit()] = true
	candidates[cards[1].Suit()] = true
	if first, ok := resolveFirstSuit(cards[HoleSize:], candidates); ok && first == cards[1].Suit() {
		cards[0], cards[1] = cards[1], cards[0]
	}
}

// resolveFirstSuit scans a sorted-by-rank tail for the candidate suit
// that should take the next canonical label. Rank group by rank group:
// a group where exactly one candidate is live resolves it; a group with
// several live candidates narrows the candidate set to those and the
// scan continues. A tail that runs out with 2+ live candidates reports
// no resolution.
func resolveFirstSuit(tail card.CardList, candidates SuitMap[bool]) (card.Suit, bool) {
	var active SuitMap[bool]
	activeCount := 0
	groupRank := card.Rank(0)

	for _, c := range tail {
		if c.Rank() != groupRank {
			if activeCount == 1 {
				return soleSuit(active), true
			}
			if activeCount > 1 {
				candidates = active
			}
			active = SuitMap[bool]{}
			activeCount = 0
			groupRank = c.Rank()
		}
		if candidates[c.Suit()] && !active[c.Suit()] {
			active[c.Suit()] = true
			activeCount++
		}
	}
	if activeCount == 1 {
		return soleSuit(active), true
	}
	return 0, false
}

func soleSuit(set SuitMap[bool]) card.Suit {
	for s, present := range set {
		if present {
			return card.Suit(s)
		}
	}
	panic("canon: empty suit set")
}
