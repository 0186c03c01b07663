// Copyright 2015 by the Authors
// This file is part of the go-core library.
//
// The go-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-core library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"errors"
	"fmt"
)

// ErrStackUnderflow is returned when a handler needs more operands than the
// stack currently holds.
type ErrStackUnderflow struct {
	StackLen int
	Required int
}

func (e *ErrStackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow (%d <=> %d)", e.StackLen, e.Required)
}

// ErrStackOverflow is returned when a push would exceed maxStackDepth.
type ErrStackOverflow struct {
	StackLen int
	Limit    int
}

func (e *ErrStackOverflow) Error() string {
	return fmt.Sprintf("stack limit reached %d (%d)", e.StackLen, e.Limit)
}

var (
	// ErrOutOfGas is the fatal error raised when cumulative gas cost would
	// exceed the frame's remaining budget.
	ErrOutOfGas = errors.New("out of gas")

	// ErrInvalidJump covers both "not a JUMPDEST" and "lands inside PUSH
	// immediate data".
	ErrInvalidJump = errors.New("invalid jump destination")

	// ErrInvalidOpcode covers byte 0xFE and any unmapped opcode.
	ErrInvalidOpcode = errors.New("invalid opcode")

	// ErrWriteProtection is raised by SSTORE, LOG*, or a value-bearing CALL
	// executed while the frame is static; it surfaces to the frame executor
	// exactly like a REVERT (return data preserved, remaining gas refunded).
	ErrWriteProtection = errors.New("write protection")

	// ErrExecutionReverted is the explicit REVERT opcode's error.
	ErrExecutionReverted = errors.New("execution reverted")
)

// nonFatal reports whether err should leave the frame's remaining gas
// intact instead of zeroing it -- true only for REVERT and the
// static-context violations that surface as a REVERT to the parent frame.
func nonFatal(err error) bool {
	return errors.Is(err, ErrExecutionReverted) || errors.Is(err, ErrWriteProtection)
}
