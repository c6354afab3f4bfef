package state_test

import (
	"testing"

	"github.com/k70suK3-k06a7ash1/monadic-go/maybe"
	"github.com/k70suK3-k06a7ash1/monadic-go/shared/helper"
	"github.com/k70suK3-k06a7ash1/monadic-go/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A stack held entirely in the threaded state: push grows the slice, pop
// yields the top as a Maybe so popping an empty stack is data, not a fault.

func push(x int) state.State[[]int, helper.Unit] {
	return state.Modify(func(s []int) []int {
		next := make([]int, len(s), len(s)+1)
		copy(next, s)
		return append(next, x)
	})
}

func pop() state.State[[]int, maybe.Maybe[int]] {
	return state.Of(func(s []int) ([]int, maybe.Maybe[int]) {
		if len(s) == 0 {
			return s, maybe.NoneOf[int]()
		}
		return s[:len(s)-1], maybe.JustOf(s[len(s)-1])
	})
}

func TestStack_Scenario(t *testing.T) {
	s := state.Then(push(10), push(20)).Exec(nil)
	require.Equal(t, []int{10, 20}, s)

	s, top := pop().Run(s)
	require.Equal(t, maybe.JustOf(20), top)
	require.Equal(t, []int{10}, s)

	s, top = state.Then(push(30), pop()).Run(s)
	require.Equal(t, maybe.JustOf(30), top)
	require.Equal(t, []int{10}, s)

	s, top = pop().Run(s)
	require.Equal(t, maybe.JustOf(10), top)
	require.Empty(t, s)

	s, top = pop().Run(s)
	assert.True(t, top.IsNone())
	assert.Empty(t, s, "popping an empty stack leaves the state unchanged")
}

// TestStack_Composed is the same scenario as one composed program: the
// chain yields the values the pops observed, in order.
func TestStack_Composed(t *testing.T) {
	program := state.Then(push(10), state.Then(push(20),
		state.Bind(pop(), func(first maybe.Maybe[int]) state.State[[]int, []maybe.Maybe[int]] {
			return state.Then(push(30),
				state.Bind(pop(), func(second maybe.Maybe[int]) state.State[[]int, []maybe.Maybe[int]] {
					return state.Bind(pop(), func(third maybe.Maybe[int]) state.State[[]int, []maybe.Maybe[int]] {
						return state.Map(pop(), func(fourth maybe.Maybe[int]) []maybe.Maybe[int] {
							return []maybe.Maybe[int]{first, second, third, fourth}
						})
					})
				}))
		})))

	final, pops := program.Run(nil)
	assert.Empty(t, final)
	assert.Equal(t, []maybe.Maybe[int]{
		maybe.JustOf(20),
		maybe.JustOf(30),
		maybe.JustOf(10),
		maybe.NoneOf[int](),
	}, pops)
}

// TestStack_PushIsPersistent: combinators never mutate their inputs, so an
// earlier state snapshot is unaffected by later runs.
func TestStack_PushIsPersistent(t *testing.T) {
	base := state.Then(push(1), push(2)).Exec(nil)

	withThree := push(3).Exec(base)
	withFour := push(4).Exec(base)

	assert.Equal(t, []int{1, 2}, base)
	assert.Equal(t, []int{1, 2, 3}, withThree)
	assert.Equal(t, []int{1, 2, 4}, withFour)
}
