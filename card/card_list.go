package card

import (
	"math/rand"
	"slices"
	"strings"
)

// CardList 牌列表
type CardList []Card

// Clone 深拷贝
func (ds CardList) Clone() CardList {
	out := make(CardList, len(ds))
	copy(out, ds)
	return out
}

// Sort 按牌序升序排序 (先点数后花色)
func (ds CardList) Sort() {
	slices.Sort(ds)
}

// Shuffle 用给定随机源洗牌, 固定种子时可复现
func (ds CardList) Shuffle(r *rand.Rand) {
	r.Shuffle(len(ds), func(i, j int) {
		ds[i], ds[j] = ds[j], ds[i]
	})
}

// Code 返回紧凑编码, 如 "2c2s3d"
func (ds CardList) Code() string {
	var b strings.Builder
	for _, c := range ds {
		b.WriteString(c.Code())
	}
	return b.String()
}

func (ds CardList) String() string {
	parts := make([]string, len(ds))
	for i, c := range ds {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
