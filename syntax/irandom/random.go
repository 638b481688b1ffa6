package irandom

import (
	"math/rand/v2"
)

// Source 随机源，*rand.Rand 直接满足
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	// 全局 ChaCha8，自动播种，无需 Seed
	return rand.IntN(n)
}

// Default 返回全局自动播种的随机源
func Default() Source {
	return globalSource{}
}

// NewSeeded 固定种子的 PCG 随机源，结果可复现
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntRange 生成 [min, max] 闭区间内的随机整数，两端均可取到
func IntRange(src Source, min, max int) int {
	if max < min {
		min, max = max, min
	}
	if min == max {
		return min
	}
	if src == nil {
		src = Default()
	}
	return min + src.IntN(max-min+1)
}
