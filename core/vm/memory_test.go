package vm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryExpansionIsQuadratic(t *testing.T) {
	m := newMemory()
	cost, err := m.ensure(0, 32)
	require.NoError(t, err)
	require.Equal(t, memoryGasCost(1), cost)
	require.Equal(t, 32, m.Len())

	cost, err = m.ensure(0, 64)
	require.NoError(t, err)
	require.Equal(t, memoryGasCost(2)-memoryGasCost(1), cost)
	require.Equal(t, 64, m.Len())
}

func TestMemoryZeroSizeNeverExpands(t *testing.T) {
	m := newMemory()
	cost, err := m.ensure(1000, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), cost)
	require.Equal(t, 0, m.Len())
}

func TestMemorySet32RoundTrips(t *testing.T) {
	m := newMemory()
	w := wordFromUint64(0xdeadbeef)
	_, err := m.set32(0, &w)
	require.NoError(t, err)

	data, _, err := m.getCopy(0, 32)
	require.NoError(t, err)
	var got Word
	got.SetBytes(data)
	require.Equal(t, w, got)
}

func TestMemoryNeverShrinks(t *testing.T) {
	m := newMemory()
	m.resize(4)
	require.Equal(t, 128, m.Len())
	m.resize(1)
	require.Equal(t, 128, m.Len())
}

func TestMemoryCloneIsIndependent(t *testing.T) {
	m := newMemory()
	_, err := m.set(0, []byte{1, 2, 3})
	require.NoError(t, err)

	clone := m.clone()
	_, err = clone.set(0, []byte{9, 9, 9})
	require.NoError(t, err)

	require.Equal(t, byte(1), m.Data()[0])
	require.Equal(t, byte(9), clone.Data()[0])
}

func TestMemoryEnsureRejectsOverflowingRange(t *testing.T) {
	m := newMemory()
	_, err := m.ensure(math.MaxUint64, 32)
	require.ErrorIs(t, err, ErrOutOfGas)
	require.Equal(t, 0, m.Len(), "a rejected expansion must not resize the store")
}
