package purefn_test

import (
	"fmt"
	"testing"

	"github.com/k70suK3-k06a7ash1/monadic-go/purefn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemo1_CallsUnderlyingOncePerArg(t *testing.T) {
	calls := 0
	square := purefn.Memo1(func(x int) int {
		calls++
		return x * x
	}, 16)

	require.Equal(t, 9, square(3))
	require.Equal(t, 9, square(3))
	require.Equal(t, 16, square(4))
	require.Equal(t, 9, square(3))

	assert.Equal(t, 2, calls)
}

func TestMemo2_DistinguishesArgPositions(t *testing.T) {
	calls := 0
	concat := purefn.Memo2(func(a, b string) string {
		calls++
		return a + b
	}, 16)

	require.Equal(t, "ab", concat("a", "b"))
	require.Equal(t, "ba", concat("b", "a"))
	require.Equal(t, "ab", concat("a", "b"))

	assert.Equal(t, 2, calls)
}

func TestMemo3(t *testing.T) {
	calls := 0
	clamp := purefn.Memo3(func(lo, x, hi int) int {
		calls++
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}, 16)

	require.Equal(t, 5, clamp(0, 5, 10))
	require.Equal(t, 10, clamp(0, 15, 10))
	require.Equal(t, 5, clamp(0, 5, 10))

	assert.Equal(t, 2, calls)
}

type skuKey struct{ id int }

func (k skuKey) String() string { return fmt.Sprintf("sku-%d", k.id) }

func TestMemo1_StringerKeys(t *testing.T) {
	calls := 0
	lookup := purefn.Memo1(func(k skuKey) int {
		calls++
		return k.id * 10
	}, 16)

	require.Equal(t, 70, lookup(skuKey{id: 7}))
	require.Equal(t, 70, lookup(skuKey{id: 7}))
	assert.Equal(t, 1, calls)
}

// TestMemo1_GenerationRotation: overflowing the young generation must not
// lose correctness, only recompute entries that aged out.
func TestMemo1_GenerationRotation(t *testing.T) {
	calls := map[int]int{}
	ident := purefn.Memo1(func(x int) int {
		calls[x]++
		return x
	}, 2)

	for i := range 10 {
		require.Equal(t, i, ident(i))
	}
	// Recent entries survive the rotations, older ones may be recomputed.
	for i := 6; i < 10; i++ {
		require.Equal(t, i, ident(i))
	}
	for i := range 10 {
		assert.Equal(t, 1, calls[i], "arg %d recomputed", i)
	}
}

func TestMemoTable_ZeroMaxSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		purefn.Memo1(func(x int) int { return x }, 0)
	})
}
