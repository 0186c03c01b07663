package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// pushGas encodes a PUSH4 of gas, giving tests room for six-figure gas
// amounts without fiddling with multi-byte PUSHn sizing by hand.
func pushGas(gas uint32) []byte {
	return []byte{byte(PUSH4), byte(gas >> 24), byte(gas >> 16), byte(gas >> 8), byte(gas)}
}

// buildCallCode assembles: PUSH1 retSize, PUSH1 retOffset, PUSH1 argsSize,
// PUSH1 argsOffset, PUSH1 value, PUSH20 target, PUSH4 gas, CALL, STOP.
func buildCallCode(gas uint32, target Address, value, argsOffset, argsSize, retOffset, retSize byte) []byte {
	// Pushed in reverse of pop order, so gas ends up on top: CALL pops
	// gas, addr, value, argsOffset, argsSize, retOffset, retSize.
	code := []byte{
		byte(PUSH1), retSize,
		byte(PUSH1), retOffset,
		byte(PUSH1), argsSize,
		byte(PUSH1), argsOffset,
		byte(PUSH1), value,
	}
	code = append(code, byte(PUSH20))
	code = append(code, target[:]...)
	code = append(code, pushGas(gas)...)
	code = append(code, byte(CALL), byte(STOP))
	return code
}

// TestCallIntoEmptyAccountPushesOne verifies that a CALL into an address
// with no code still transfers value and pushes a success flag of 1,
// without recursing into a sub-frame.
func TestCallIntoEmptyAccountPushesOne(t *testing.T) {
	target := Address{0x99}
	code := buildCallCode(50_000, target, 5, 0, 0, 0, 0)

	ctx := newTestContext(code, 1_000_000)
	ctx.State.Account(ctx.Address).Balance = wordFromUint64(10)

	res := Execute(ctx)
	require.True(t, res.Success)
	require.Equal(t, one(), res.Stack[0])
	require.Equal(t, wordFromUint64(5), ctx.State.Get(target).Balance)
	require.Equal(t, wordFromUint64(5), ctx.State.Get(ctx.Address).Balance)
}

// TestCallIntoCodeRecursesAndReturns exercises an actual nested frame: the
// callee's code itself is PUSH1 0x2a PUSH1 0 MSTORE PUSH1 32 PUSH1 0
// RETURN, and the caller copies that 32-byte return value into its own
// memory.
func TestCallIntoCodeRecursesAndReturns(t *testing.T) {
	target := Address{0x42}
	calleeCode := []byte{
		byte(PUSH1), 0x2a,
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}

	code := buildCallCode(100_000, target, 0, 0, 0, 0, 32)

	ctx := newTestContext(code, 1_000_000)
	ctx.State.Account(target).Code = calleeCode

	res := Execute(ctx)
	require.True(t, res.Success)
	require.Equal(t, one(), res.Stack[0])

	var got Word
	got.SetBytes(res.Memory[0:32])
	require.Equal(t, wordFromUint64(0x2a), got)
}

// TestStaticCallForcesSubFrameStatic verifies that a STATICCALL into code
// that tries to SSTORE fails the sub-frame without touching the caller's
// own success/failure (the caller still observes a clean 0-on-the-stack
// failure signal, not a propagated fatal error).
func TestStaticCallForcesSubFrameStatic(t *testing.T) {
	target := Address{0x77}
	calleeCode := []byte{
		byte(PUSH1), 1,
		byte(PUSH1), 0,
		byte(SSTORE),
	}

	// Pushed in reverse of pop order, so gas ends up on top: STATICCALL
	// pops gas, addr, argsOffset, argsSize, retOffset, retSize.
	code := []byte{
		byte(PUSH1), 0, // retSize
		byte(PUSH1), 0, // retOffset
		byte(PUSH1), 0, // argsSize
		byte(PUSH1), 0, // argsOffset
	}
	code = append(code, byte(PUSH20))
	code = append(code, target[:]...)
	code = append(code, pushGas(100_000)...)
	code = append(code, byte(STATICCALL), byte(STOP))

	ctx := newTestContext(code, 1_000_000)
	ctx.State.Account(target).Code = calleeCode

	res := Execute(ctx)
	require.True(t, res.Success, "the caller's own frame succeeds even though the callee reverted")
	require.Equal(t, zero(), res.Stack[0], "a failed sub-call pushes 0, not a fatal error")
}
