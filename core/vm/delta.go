// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package vm

// Delta is what an opcode handler returns instead of mutating its RunState
// directly: a description of the state change for the frame executor to
// apply, charge gas for, and act on. Every field is optional; a zero-value
// Delta changes nothing and, since ContinueExecution defaults to false,
// ends the frame successfully -- which is all STOP returns. Handlers that
// keep going build their Delta with cont.
type Delta struct {
	// Stack, if non-nil, replaces RunState.Stack wholesale. Every handler
	// that touches the stack clones it first (Stack.clone), so the input
	// RunState is never mutated.
	Stack *Stack

	// NewPC, if non-nil, sets the next program counter absolutely (JUMP,
	// JUMPI-taken). Otherwise the frame executor advances PC by
	// 1+len(immediate) on its own.
	NewPC *uint64

	// Memory, if non-nil, replaces RunState.Memory wholesale.
	Memory *Memory

	// ReturnDataSet is true when ReturnData should replace RunState's
	// current return data (RETURN, REVERT, or a completed sub-call);
	// distinguishing "no change" from "set to empty" requires this flag
	// since a nil slice is a valid return value.
	ReturnDataSet bool
	ReturnData    []byte

	// Logs is appended to RunState.Logs (LOG0..LOG4).
	Logs []LogEntry

	// State, if non-nil, replaces the Context's state reference. In
	// practice this is always the same map the handler was already handed
	// -- the state map is aliased by reference across frames and mutated
	// directly -- carried here only to make the mutation visible in the
	// Delta itself rather than as a side effect hidden from the frame
	// executor.
	State State

	// AdditionalGas is charged on top of the opcode table entry's minimum
	// gas (memory expansion, EXP's per-byte cost, SHA3/LOG word costs,
	// CALL's forwarded gas, ...).
	AdditionalGas uint64

	// ContinueExecution is false for STOP/RETURN/REVERT/INVALID and any
	// fatal error -- anything that ends the frame on this instruction.
	ContinueExecution bool

	// Err is set for any of the error kinds in errors.go. All of them are
	// frame-fatal (gas is zeroed) except ErrExecutionReverted and
	// ErrWriteProtection, which the frame executor treats as a REVERT
	// (return data preserved, remaining gas refunded to the caller).
	Err error
}

// cont is the Delta most handlers return: new stack, keep going.
func cont(stack *Stack, additionalGas uint64) Delta {
	return Delta{Stack: stack, AdditionalGas: additionalGas, ContinueExecution: true}
}

// fatal wraps err as a frame-terminating Delta.
func fatal(err error) Delta {
	return Delta{Err: err}
}
