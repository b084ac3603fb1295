package card

// Rank 牌面值 2-14 (2..10, J=11, Q=12, K=13, A=14)
//
// A 固定为 14: 比较总是以 A 为最大, 不存在 A=1 的低位用法。
type Rank byte

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks 点数数量
const NumRanks = 13

func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Nine {
		return string('0' + byte(r))
	}
	return "?"
}
