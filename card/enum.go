package card

const CardInvalid Card = 0

// 2
const (
	CardClub2 Card = iota + 0x20
	CardDiamond2
	CardHeart2
	CardSpade2
)

// 3
const (
	CardClub3 Card = iota + 0x30
	CardDiamond3
	CardHeart3
	CardSpade3
)

// 4
const (
	CardClub4 Card = iota + 0x40
	CardDiamond4
	CardHeart4
	CardSpade4
)

// 5
const (
	CardClub5 Card = iota + 0x50
	CardDiamond5
	CardHeart5
	CardSpade5
)

// 6
const (
	CardClub6 Card = iota + 0x60
	CardDiamond6
	CardHeart6
	CardSpade6
)

// 7
const (
	CardClub7 Card = iota + 0x70
	CardDiamond7
	CardHeart7
	CardSpade7
)

// 8
const (
	CardClub8 Card = iota + 0x80
	CardDiamond8
	CardHeart8
	CardSpade8
)

// 9
const (
	CardClub9 Card = iota + 0x90
	CardDiamond9
	CardHeart9
	CardSpade9
)

// T
const (
	CardClubT Card = iota + 0xA0
	CardDiamondT
	CardHeartT
	CardSpadeT
)

// J
const (
	CardClubJ Card = iota + 0xB0
	CardDiamondJ
	CardHeartJ
	CardSpadeJ
)

// Q
const (
	CardClubQ Card = iota + 0xC0
	CardDiamondQ
	CardHeartQ
	CardSpadeQ
)

// K
const (
	CardClubK Card = iota + 0xD0
	CardDiamondK
	CardHeartK
	CardSpadeK
)

// A
const (
	CardClubA Card = iota + 0xE0
	CardDiamondA
	CardHeartA
	CardSpadeA
)

// NumCards 一副牌的张数
const NumCards = NumRanks * NumSuits

// Deck 返回按牌序升序排列的整副 52 张牌
func Deck() CardList {
	deck := make(CardList, 0, NumCards)
	for r := Two; r <= Ace; r++ {
		for s := Clubs; s < NumSuits; s++ {
			deck = append(deck, Of(r, s))
		}
	}
	return deck
}
