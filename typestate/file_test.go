package typestate_test

import (
	"testing"

	"github.com/k70suK3-k06a7ash1/monadic-go/maybe"
	"github.com/k70suK3-k06a7ash1/monadic-go/typestate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_ReadInOrder(t *testing.T) {
	h := typestate.Open("notes", []string{"first", "second"})

	h, line := typestate.ReadLine(h)
	require.Equal(t, maybe.JustOf("first"), line)

	h, line = typestate.ReadLine(h)
	require.Equal(t, maybe.JustOf("second"), line)

	_, line = typestate.ReadLine(h)
	assert.True(t, line.IsNone(), "exhausted handle reads None")
}

func TestHandle_ReadAll(t *testing.T) {
	h := typestate.Open("notes", []string{"a", "b", "c"})

	h, lines := typestate.ReadAll(h)
	assert.Equal(t, []string{"a", "b", "c"}, lines)

	_, lines = typestate.ReadAll(h)
	assert.Empty(t, lines)
}

func TestHandle_ImmutableReads(t *testing.T) {
	h := typestate.Open("notes", []string{"a", "b"})

	_, first := typestate.ReadLine(h)
	_, again := typestate.ReadLine(h)
	assert.Equal(t, first, again, "reading does not mutate the input handle")
}

func TestHandle_CloseAndReopen(t *testing.T) {
	h := typestate.Open("notes", []string{"a", "b"})
	h, _ = typestate.ReadLine(h)

	closed := typestate.Close(h)
	assert.Equal(t, "notes", closed.Name())

	reopened := typestate.Reopen(closed)
	_, line := typestate.ReadLine(reopened)
	assert.Equal(t, maybe.JustOf("a"), line, "reopen rewinds to the start")
}

func TestHandle_EmptyFile(t *testing.T) {
	h := typestate.Open("empty", nil)
	_, line := typestate.ReadLine(h)
	assert.True(t, line.IsNone())
}
