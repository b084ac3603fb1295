package canon

import "holdem-canon/card"

// SuitMap is a total fixed-size map keyed by the four suits. The zero
// value maps every suit to the zero value of T.
type SuitMap[T any] [card.NumSuits]T

func (m SuitMap[T]) Get(s card.Suit) T {
	return m[s]
}

func (m *SuitMap[T]) Set(s card.Suit, v T) {
	m[s] = v
}

// Each visits all four entries in suit enumeration order.
func (m SuitMap[T]) Each(fn func(card.Suit, T)) {
	for i := range m {
		fn(card.Suit(i), m[i])
	}
}

// TransformSuitMap builds a new map by applying f to every value.
func TransformSuitMap[T, U any](m SuitMap[T], f func(T) U) SuitMap[U] {
	var out SuitMap[U]
	for i := range m {
		out[i] = f(m[i])
	}
	return out
}
