package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	st := newStack()
	require.NoError(t, st.push(wordFromUint64(1)))
	require.NoError(t, st.push(wordFromUint64(2)))
	require.Equal(t, 2, st.len())

	top, err := st.pop()
	require.NoError(t, err)
	require.Equal(t, wordFromUint64(2), top)
	require.Equal(t, 1, st.len())
}

func TestStackUnderflow(t *testing.T) {
	st := newStack()
	_, err := st.pop()
	require.Error(t, err)
	var underflow *ErrStackUnderflow
	require.ErrorAs(t, err, &underflow)
}

func TestStackOverflow(t *testing.T) {
	st := newStack()
	for i := 0; i < maxStackDepth; i++ {
		require.NoError(t, st.push(zero()))
	}
	err := st.push(zero())
	require.Error(t, err)
	var overflow *ErrStackOverflow
	require.ErrorAs(t, err, &overflow)
}

func TestStackCloneIsIndependent(t *testing.T) {
	st := newStack()
	require.NoError(t, st.push(wordFromUint64(1)))

	clone := st.clone()
	require.NoError(t, clone.push(wordFromUint64(2)))

	require.Equal(t, 1, st.len())
	require.Equal(t, 2, clone.len())
}

func TestStackDupAndSwap(t *testing.T) {
	st := newStack()
	require.NoError(t, st.push(wordFromUint64(1)))
	require.NoError(t, st.push(wordFromUint64(2)))

	require.NoError(t, st.dup(2))
	top, _ := st.peek(0)
	require.Equal(t, wordFromUint64(1), top, "dup(2) duplicates the second-from-top element")

	require.NoError(t, st.swap(1))
	top, _ = st.peek(0)
	second, _ := st.peek(1)
	require.Equal(t, wordFromUint64(2), top)
	require.Equal(t, wordFromUint64(1), second)
}

func TestStackTopFirst(t *testing.T) {
	st := newStack()
	require.NoError(t, st.push(wordFromUint64(1)))
	require.NoError(t, st.push(wordFromUint64(2)))
	require.NoError(t, st.push(wordFromUint64(3)))

	got := st.topFirst()
	require.Equal(t, []Word{wordFromUint64(3), wordFromUint64(2), wordFromUint64(1)}, got)
}
