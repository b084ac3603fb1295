package canon

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"holdem-canon/card"
)

func TestCanonicalize_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		in   Hand
		want Hand
	}{
		{
			name: "pocket pair against paired board",
			in: MustHand(
				card.CardClub2, card.CardSpade2,
				card.CardClub3, card.CardSpade3, card.CardDiamond3,
			),
			want: MustHand(
				card.CardClub2, card.CardDiamond2,
				card.CardClub3, card.CardDiamond3, card.CardHeart3,
			),
		},
		{
			name: "pocket pair resolved by suited board",
			in: MustHand(
				card.CardClub2, card.CardSpade2,
				card.CardSpade3, card.CardSpade4, card.CardSpade5,
			),
			want: MustHand(
				card.CardClub2, card.CardDiamond2,
				card.CardClub3, card.CardClub4, card.CardClub5,
			),
		},
		{
			name: "trips feeding into resolution",
			in: MustHand(
				card.CardSpade2, card.CardClub2,
				card.CardHeart2, card.CardSpade3, card.CardDiamond3,
			),
			want: MustHand(
				card.CardClub2, card.CardDiamond2,
				card.CardHeart2, card.CardClub3, card.CardSpade3,
			),
		},
		{
			name: "chained ambiguity resolved at the last card",
			in: MustHand(
				card.CardSpade2, card.CardClub2,
				card.CardSpade3, card.CardClub3, card.CardSpade4, card.CardClub4, card.CardSpade5,
			),
			want: MustHand(
				card.CardClub2, card.CardDiamond2,
				card.CardClub3, card.CardDiamond3, card.CardClub4, card.CardDiamond4, card.CardClub5,
			),
		},
		{
			name: "pocket pair with no disambiguating board",
			in:   MustHand(card.CardHeart5, card.CardSpade5),
			want: MustHand(card.CardClub5, card.CardDiamond5),
		},
		{
			name: "suited hole collapses to clubs",
			in:   MustHand(card.CardHeartA, card.CardHeart2),
			want: MustHand(card.CardClub2, card.CardClubA),
		},
		{
			name: "offsuit hole takes first two labels",
			in:   MustHand(card.CardSpadeA, card.CardDiamondK),
			want: MustHand(card.CardClubK, card.CardDiamondA),
		},
		{
			name: "board pair resolved by a later rank",
			in: MustHand(
				card.CardClub2, card.CardDiamond7,
				card.CardHeart9, card.CardSpade9, card.CardSpadeT,
			),
			want: MustHand(
				card.CardClub2, card.CardDiamond7,
				card.CardHeart9, card.CardSpade9, card.CardHeartT,
			),
		},
		{
			name: "already canonical is a fixpoint",
			in: MustHand(
				card.CardClub2, card.CardDiamond7,
				card.CardHeart9, card.CardSpade9, card.CardHeartT,
			),
			want: MustHand(
				card.CardClub2, card.CardDiamond7,
				card.CardHeart9, card.CardSpade9, card.CardHeartT,
			),
		},
		{
			name: "unresolvable board trips label themselves in suit order",
			in: MustHand(
				card.CardSpade2, card.CardSpade3,
				card.CardClub4, card.CardDiamond4, card.CardHeart4,
			),
			want: MustHand(
				card.CardClub2, card.CardClub3,
				card.CardDiamond4, card.CardHeart4, card.CardSpade4,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonicalize(tt.in)
			require.Equal(t, tt.want.String(), got.String())
		})
	}
}

// randomHand deals 2, 5, 6 or 7 cards from a shuffled deck.
func randomHand(t *testing.T, r *rand.Rand) Hand {
	t.Helper()
	sizes := []int{2, 5, 6, 7}
	deck := card.Deck()
	deck.Shuffle(r)
	h, err := NewHand(deck[:sizes[r.Intn(len(sizes))]])
	require.NoError(t, err)
	return h
}

func TestCanonicalize_IsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 500; trial++ {
		h := randomHand(t, r)
		require.Equal(t, Canonicalize(h), Canonicalize(h), "hand %s", h)
	}
}

func TestCanonicalize_IsIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 500; trial++ {
		h := randomHand(t, r)
		once := Canonicalize(h)
		require.True(t, once.Equal(Canonicalize(once)),
			"hand %s: canonical %s is not a fixpoint", h, once)
	}
}

func TestCanonicalize_IsLexicographicMinimum(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	perms := AllSuitPermutations()

	for trial := 0; trial < 300; trial++ {
		h := randomHand(t, r)
		canonical := Canonicalize(h)

		for _, p := range perms {
			competitor := canonical.Permute(p).SortSegments()
			require.LessOrEqual(t, canonical.Compare(competitor), 0,
				"hand %s: canonical %s is beaten by relabeling %s", h, canonical, competitor)
		}
	}
}

// Every member of an equivalence class canonicalizes to the identical
// hand; this is the deduplication guarantee.
func TestCanonicalize_IsClassInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	perms := AllSuitPermutations()

	for trial := 0; trial < 200; trial++ {
		h := randomHand(t, r)
		canonical := Canonicalize(h)

		for _, p := range perms {
			relabeled := h.Permute(p)
			require.True(t, canonical.Equal(Canonicalize(relabeled)),
				"hand %s and relabeling %s disagree on canonical form", h, relabeled)
			require.Equal(t, canonical.Key(), Canonicalize(relabeled).Key())
		}
	}
}

func TestCanonicalize_PreservesShape(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 500; trial++ {
		h := randomHand(t, r)
		got := Canonicalize(h)

		require.Equal(t, h.Len(), got.Len())
		require.Equal(t, rankMultiset(h.Hole()), rankMultiset(got.Hole()),
			"hole ranks must survive canonicalization of %s", h)
		require.Equal(t, rankMultiset(h.Board()), rankMultiset(got.Board()),
			"board ranks must survive canonicalization of %s", h)
	}
}

func TestCanonicalize_OutputSegmentsAreSorted(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for trial := 0; trial < 500; trial++ {
		got := Canonicalize(randomHand(t, r))
		require.True(t, got.Equal(got.SortSegments()), "canonical hand %s has unsorted segments", got)
	}
}

func TestCanonicalize_DoesNotMutateInput(t *testing.T) {
	h := MustHand(
		card.CardSpade2, card.CardClub2,
		card.CardSpade3, card.CardClub3, card.CardDiamond3,
	)
	before := h.Cards()
	Canonicalize(h)
	require.Equal(t, before, h.Cards())
}

func rankMultiset(cards card.CardList) map[card.Rank]int {
	out := make(map[card.Rank]int, len(cards))
	for _, c := range cards {
		out[c.Rank()]++
	}
	return out
}
