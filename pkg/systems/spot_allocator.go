package systems

import (
	"slices"
)

// RandSource 随机数来源
// *rand.Rand (math/rand/v2) 满足该接口，测试中可替换为固定序列
type RandSource interface {
	IntN(n int) int
}

// SpotAllocator 车位分配器
//
// 为新卡车挑选字母和外观：
//   - 字母必须与其他车位的字母都不同（严格）
//   - 外观尽量与其他车位不同，有限次尝试失败后接受重复（尽力而为）
type SpotAllocator struct {
	rng             RandSource
	letterPool      []rune
	paletteSize     int
	variantAttempts int
}

// NewSpotAllocator 创建车位分配器
//
// 参数:
//   - rng: 随机数来源
//   - letterPool: 去重后的字母池
//   - paletteSize: 卡车外观数量
//   - variantAttempts: 外观去重的随机尝试次数
func NewSpotAllocator(rng RandSource, letterPool []rune, paletteSize, variantAttempts int) *SpotAllocator {
	return &SpotAllocator{
		rng:             rng,
		letterPool:      slices.Clone(letterPool),
		paletteSize:     paletteSize,
		variantAttempts: variantAttempts,
	}
}

// PickLetter 从字母池中均匀随机选择一个不在 inUse 中的字母
//
// 只在空闲字母中抽取，与"反复抽取直到不冲突"的分布相同，但总能一次结束。
// 字母池大于车位数时（构造会话时已校验）必定返回 true。
func (a *SpotAllocator) PickLetter(inUse []rune) (rune, bool) {
	free := make([]rune, 0, len(a.letterPool))
	for _, r := range a.letterPool {
		if !slices.Contains(inUse, r) {
			free = append(free, r)
		}
	}

	if len(free) == 0 {
		return 0, false
	}
	return free[a.rng.IntN(len(free))], true
}

// PickVariant 选择卡车外观
//
// 最多随机尝试 variantAttempts 次，返回第一个不在 inUse 中的外观；
// 全部冲突时再无条件随机一次。返回值总在 [0, paletteSize) 内。
func (a *SpotAllocator) PickVariant(inUse []int) int {
	if a.paletteSize <= 1 {
		return 0
	}

	for i := 0; i < a.variantAttempts; i++ {
		v := a.rng.IntN(a.paletteSize)
		if !slices.Contains(inUse, v) {
			return v
		}
	}
	return a.rng.IntN(a.paletteSize)
}
