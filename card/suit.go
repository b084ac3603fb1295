package card

// Suit 花色 (0:Clubs, 1:Diamonds, 2:Hearts, 3:Spades)
//
// 枚举顺序是有意义的: 同点数的牌按花色顺序排序, 规范化标签也按此顺序分配。
type Suit byte

const (
	Clubs    Suit = iota // ♣
	Diamonds             // ♦
	Hearts               // ♥
	Spades               // ♠
)

// NumSuits 花色数量
const NumSuits = 4

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

// Code 返回解析用的小写字母 (c/d/h/s)
func (s Suit) Code() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	}
	return "?"
}
