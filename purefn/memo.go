// Package purefn memoizes pure functions. Memoization is only sound for
// functions the monad contract accepts anyway: deterministic and free of
// side effects, so a cached result is indistinguishable from a fresh call.
//
// The table is bounded by a two-generation scheme: when the young
// generation fills up it becomes the old one and a fresh young generation
// starts, so the table never holds more than twice maxSize entries while
// recently used results survive one rotation.
package purefn

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const defaultShardCount = 8

type generation[O any] struct {
	shards []map[string]O
	size   uint32
}

func newGeneration[O any](nshards int) *generation[O] {
	shards := make([]map[string]O, nshards)
	for i := range shards {
		shards[i] = make(map[string]O)
	}
	return &generation[O]{shards: shards}
}

func (g *generation[O]) shardOf(key string) map[string]O {
	return g.shards[xxhash.Sum64String(key)%uint64(len(g.shards))]
}

// memoTable is not goroutine-safe; the containers in this repository are
// single-threaded values and so are their memoized helpers.
type memoTable[O any] struct {
	young, old *generation[O]
	maxSize    uint32
}

func newMemoTable[O any](maxSize uint32) *memoTable[O] {
	if maxSize == 0 {
		panic("purefn: maxSize should be greater than 0")
	}
	return &memoTable[O]{
		young:   newGeneration[O](defaultShardCount),
		old:     newGeneration[O](defaultShardCount),
		maxSize: maxSize,
	}
}

func (t *memoTable[O]) load(key string) (O, bool) {
	if v, ok := t.young.shardOf(key)[key]; ok {
		return v, true
	}
	v, ok := t.old.shardOf(key)[key]
	return v, ok
}

func (t *memoTable[O]) store(key string, value O) {
	if t.young.size >= t.maxSize {
		t.old = t.young
		t.young = newGeneration[O](defaultShardCount)
	}
	t.young.shardOf(key)[key] = value
	t.young.size++
}

// memoKey canonicalizes an argument: Stringer if available, fmt otherwise.
func memoKey(arg any) string {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%v", arg)
}

// Memo1 memoizes a unary pure function with a table bounded by maxSize
// entries per generation.
func Memo1[I comparable, O any](pureFn func(I) O, maxSize uint32) func(I) O {
	table := newMemoTable[O](maxSize)
	return func(i I) O {
		key := memoKey(i)
		if v, ok := table.load(key); ok {
			return v
		}
		v := pureFn(i)
		table.store(key, v)
		return v
	}
}

// Memo2 memoizes a binary pure function.
func Memo2[I1, I2 comparable, O any](pureFn func(I1, I2) O, maxSize uint32) func(I1, I2) O {
	table := newMemoTable[O](maxSize)
	return func(i1 I1, i2 I2) O {
		key := memoKey(i1) + "\x1f" + memoKey(i2)
		if v, ok := table.load(key); ok {
			return v
		}
		v := pureFn(i1, i2)
		table.store(key, v)
		return v
	}
}

// Memo3 memoizes a ternary pure function.
func Memo3[I1, I2, I3 comparable, O any](pureFn func(I1, I2, I3) O, maxSize uint32) func(I1, I2, I3) O {
	table := newMemoTable[O](maxSize)
	return func(i1 I1, i2 I2, i3 I3) O {
		key := memoKey(i1) + "\x1f" + memoKey(i2) + "\x1f" + memoKey(i3)
		if v, ok := table.load(key); ok {
			return v
		}
		v := pureFn(i1, i2, i3)
		table.store(key, v)
		return v
	}
}
