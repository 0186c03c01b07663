package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestContext(code []byte, gasLeft uint64) *Context {
	return &Context{
		Address:  Address{0x01},
		Caller:   Address{0xca, 0x11, 0xe2},
		GasLeft:  gasLeft,
		Bytecode: code,
		State:    NewState(),
	}
}

// TestPushAndAdd: PUSH1 1 PUSH1 2 ADD STOP must leave {3} on the stack.
func TestPushAndAdd(t *testing.T) {
	code := []byte{byte(PUSH1), 1, byte(PUSH1), 2, byte(ADD), byte(STOP)}
	res := Execute(newTestContext(code, 100_000))

	require.True(t, res.Success)
	require.NoError(t, res.Err)
	require.Equal(t, []Word{wordFromUint64(3)}, res.Stack)
}

// TestUnsignedOverflowWraps: MAX_UINT256 + 1 wraps to 0, it never faults.
func TestUnsignedOverflowWraps(t *testing.T) {
	code := []byte{
		byte(PUSH1), 1,
	}
	// PUSH32 of all-0xff (2**256-1), then PUSH1 1, then ADD.
	push32 := append([]byte{byte(PUSH32)}, bytes32OfOnes()...)
	code = append(push32, code...)
	code = append(code, byte(ADD), byte(STOP))

	res := Execute(newTestContext(code, 100_000))
	require.True(t, res.Success)
	require.Len(t, res.Stack, 1)
	require.True(t, res.Stack[0].IsZero())
}

func bytes32OfOnes() []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = 0xff
	}
	return b
}

// TestDivisionByZeroYieldsZero: DIV by zero never faults, it pushes 0.
func TestDivisionByZeroYieldsZero(t *testing.T) {
	code := []byte{
		byte(PUSH1), 0,
		byte(PUSH1), 5,
		byte(DIV),
		byte(STOP),
	}
	res := Execute(newTestContext(code, 100_000))
	require.True(t, res.Success)
	require.Equal(t, []Word{zero()}, res.Stack)
}

// TestConditionalJumpTaken: JUMPI to a JUMPDEST when the condition is
// non-zero actually jumps, skipping the code in between.
func TestConditionalJumpTaken(t *testing.T) {
	// pc: 0 PUSH1 1 (cond)      -> 0,1
	//     2 PUSH1 7 (dest)      -> 2,3
	//     4 JUMPI
	//     5 PUSH1 0xff (skipped)
	//     7 JUMPDEST
	//     8 PUSH1 0x2a
	//     10 STOP
	code := []byte{
		byte(PUSH1), 1,
		byte(PUSH1), 7,
		byte(JUMPI),
		byte(PUSH1), 0xff,
		byte(JUMPDEST),
		byte(PUSH1), 0x2a,
		byte(STOP),
	}
	res := Execute(newTestContext(code, 100_000))
	require.True(t, res.Success)
	require.Equal(t, []Word{wordFromUint64(0x2a)}, res.Stack)
}

// TestInvalidJumpDestination: jumping into a JUMPDEST-less byte is fatal.
func TestInvalidJumpDestination(t *testing.T) {
	code := []byte{byte(PUSH1), 0x05, byte(JUMP)}
	res := Execute(newTestContext(code, 100_000))
	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, ErrInvalidJump)
}

// TestStackUnderflowIsFatal: POP on an empty stack ends the frame.
func TestStackUnderflowIsFatal(t *testing.T) {
	code := []byte{byte(POP)}
	res := Execute(newTestContext(code, 100_000))
	require.False(t, res.Success)
	var underflow *ErrStackUnderflow
	require.ErrorAs(t, res.Err, &underflow)
	require.Equal(t, uint64(0), res.GasLeft, "a fatal error zeroes the frame's remaining gas")
}

// TestMemoryExpansionGas: MSTORE at a fresh offset charges the quadratic
// memory-expansion cost on top of MSTORE's own GasFastestStep.
func TestMemoryExpansionGas(t *testing.T) {
	code := []byte{
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(STOP),
	}
	const startGas = 100_000
	res := Execute(newTestContext(code, startGas))
	require.True(t, res.Success)

	wantCost := GasFastestStep /*PUSH*/ + GasFastestStep /*PUSH*/ + GasFastestStep + memoryGasCost(1) /*MSTORE*/
	require.Equal(t, startGas-wantCost, res.GasLeft)
}

// TestOutOfGasIsFatal: a budget too small for even the first instruction
// ends the frame with ErrOutOfGas and zero gas left.
func TestOutOfGasIsFatal(t *testing.T) {
	code := []byte{byte(PUSH1), 1}
	res := Execute(newTestContext(code, 1))
	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, ErrOutOfGas)
	require.Equal(t, uint64(0), res.GasLeft)
}

// TestRunningOffTheEndIsSuccess: code with no terminating STOP still ends
// the frame successfully once PC runs past the last byte.
func TestRunningOffTheEndIsSuccess(t *testing.T) {
	code := []byte{byte(PUSH1), 1}
	res := Execute(newTestContext(code, 100_000))
	require.True(t, res.Success)
	require.Equal(t, []Word{wordFromUint64(1)}, res.Stack)
}

// TestRevertPreservesGas: REVERT surfaces as a failure but does not zero
// the frame's remaining gas the way a fatal error does.
func TestRevertPreservesGas(t *testing.T) {
	code := []byte{
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(REVERT),
	}
	const startGas = 100_000
	res := Execute(newTestContext(code, startGas))
	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, ErrExecutionReverted)
	require.Greater(t, res.GasLeft, uint64(0))
}

// TestSstoreUnderStaticIsWriteProtected confirms the static-context
// restriction surfaces like a revert rather than a generic fatal error.
func TestSstoreUnderStaticIsWriteProtected(t *testing.T) {
	code := []byte{
		byte(PUSH1), 1,
		byte(PUSH1), 0,
		byte(SSTORE),
	}
	ctx := newTestContext(code, 100_000)
	ctx.IsStatic = true
	res := Execute(ctx)

	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, ErrWriteProtection)
	require.Greater(t, res.GasLeft, uint64(0))
}
