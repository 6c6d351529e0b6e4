package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool = []rune("qwerasdfzxcv")

func TestPickLetterAvoidsLettersInUse(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	a := NewSpotAllocator(rng, testPool, 4, 5)

	inUse := []rune{'q', 'e'}
	for i := 0; i < 500; i++ {
		r, ok := a.PickLetter(inUse)
		require.True(t, ok)
		assert.NotContains(t, inUse, r)
		assert.Contains(t, testPool, r)
	}
}

func TestPickLetterOnlyFreeLetterLeft(t *testing.T) {
	a := NewSpotAllocator(&scriptedRand{values: []int{7}}, []rune("abc"), 4, 5)

	r, ok := a.PickLetter([]rune{'a', 'c'})
	require.True(t, ok)
	assert.Equal(t, 'b', r)
}

func TestPickLetterExhaustedPool(t *testing.T) {
	a := NewSpotAllocator(&scriptedRand{}, []rune("ab"), 4, 5)

	_, ok := a.PickLetter([]rune{'a', 'b'})
	assert.False(t, ok)
}

func TestPickVariantAcceptsFirstFreeDraw(t *testing.T) {
	src := &scriptedRand{values: []int{1, 0, 3}}
	a := NewSpotAllocator(src, testPool, 4, 5)

	v := a.PickVariant([]int{0, 1, 2})
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, src.calls, "should stop drawing at the first free variant")
}

func TestPickVariantFallbackAfterAttempts(t *testing.T) {
	// 5 次都抽到已占用的外观，第 6 次无条件抽取
	src := &scriptedRand{values: []int{0, 1, 2, 0, 1, 2}}
	a := NewSpotAllocator(src, testPool, 4, 5)

	v := a.PickVariant([]int{0, 1, 2})
	assert.Equal(t, 6, src.calls)
	assert.Equal(t, 2, v, "fallback draw is accepted even though it collides")
	assert.GreaterOrEqual(t, v, 0)
	assert.Less(t, v, 4)
}

func TestPickVariantFallbackReachableWithRealSource(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	a := NewSpotAllocator(rng, testPool, 4, 5)

	duplicates := 0
	for i := 0; i < 1000; i++ {
		v := a.PickVariant([]int{0, 1, 2})
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 4)
		if v != 3 {
			duplicates++
		}
	}

	// 单次回退并重复的概率约为 (3/4)^6 ≈ 17.8%
	assert.Greater(t, duplicates, 0, "fallback path should produce duplicates occasionally")
	assert.Less(t, duplicates, 1000)
}

func TestPickVariantSinglePalette(t *testing.T) {
	src := &scriptedRand{values: []int{5}}
	a := NewSpotAllocator(src, testPool, 1, 5)

	assert.Equal(t, 0, a.PickVariant([]int{0}))
	assert.Equal(t, 0, src.calls)
}
