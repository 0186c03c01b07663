package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeSkipsPushImmediates(t *testing.T) {
	// PUSH1 0x5b (a byte that looks like JUMPDEST), then a real JUMPDEST.
	code := []byte{byte(PUSH1), byte(JUMPDEST), byte(JUMPDEST)}
	dests := analyze(code)

	require.False(t, dests.valid(1), "the 0x5b pushed as PUSH1's immediate is not a jump destination")
	require.True(t, dests.valid(2))
}

func TestAnalyzeOutOfRangeIsInvalid(t *testing.T) {
	dests := analyze([]byte{byte(STOP)})
	require.False(t, dests.valid(100))
}

func TestJumpdestCacheIsContentAddressed(t *testing.T) {
	cache := &jumpdestCache{byHash: make(map[[32]byte]jumpdests)}
	code := []byte{byte(JUMPDEST), byte(STOP)}

	a := cache.get(code)
	b := cache.get(code)
	require.Same(t, &a[0], &b[0], "repeated analysis of identical code should hit the cache")
	require.True(t, a.valid(0))
}
