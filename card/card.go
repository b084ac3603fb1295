package card

import (
	"fmt"
	"strings"
)

// Card 牌枚举
//
// 编码规则:
// - 高4位: 点数 (2..14)
// - 低4位: 花色 (0:Clubs, 1:Diamonds, 2:Hearts, 3:Spades)
//
// 点数在高位, 因此字节比较即为"先点数后花色"的牌序, 排序可以直接比较字节。
type Card byte

// Of 组合点数与花色
func Of(r Rank, s Suit) Card {
	return Card(r)<<4 | Card(s)
}

// Rank 获取牌面值 2-14
func (c Card) Rank() Rank {
	return Rank(c >> 4)
}

// Suit 获取花色
func (c Card) Suit() Suit {
	return Suit(c & 0x0F)
}

// WithSuit 返回同点数换花色的牌
func (c Card) WithSuit(s Suit) Card {
	return Of(c.Rank(), s)
}

func (c Card) IsValid() bool {
	return c.Rank() >= Two && c.Rank() <= Ace && c.Suit() < NumSuits
}

func (c Card) String() string {
	if !c.IsValid() {
		return "Invalid"
	}
	return c.Rank().String() + c.Suit().String()
}

// Code 返回解析兼容的紧凑形式, 如 "2c", "Td", "As"
func (c Card) Code() string {
	if !c.IsValid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().Code()
}

// ParseCard 将字符串 (如 "As", "Td", "10h") 转换为 Card
func ParseCard(cardStr string) (Card, error) {
	if len(cardStr) < 2 {
		return CardInvalid, fmt.Errorf("invalid card string: %q", cardStr)
	}

	// 1. 解析花色 (取最后一个字符)
	var suit Suit
	switch cardStr[len(cardStr)-1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return CardInvalid, fmt.Errorf("invalid suit: %c", cardStr[len(cardStr)-1])
	}

	// 2. 解析点数
	var rank Rank
	switch strings.ToUpper(cardStr[:len(cardStr)-1]) {
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return CardInvalid, fmt.Errorf("invalid rank: %q", cardStr[:len(cardStr)-1])
	}

	return Of(rank, suit), nil
}

// MustParseCard 解析失败时 panic, 用于测试和字面量
func MustParseCard(cardStr string) Card {
	c, err := ParseCard(cardStr)
	if err != nil {
		panic(err)
	}
	return c
}
