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

func opPop(rs *RunState) Delta {
	st := rs.Stack.clone()
	if _, err := st.pop(); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

// opJump implements unconditional JUMP: the destination must be a
// JUMPDEST that does not fall inside a PUSHn's immediate data, checked
// against the frame's cached jumpdest analysis.
func opJump(rs *RunState) Delta {
	st := rs.Stack.clone()
	destW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	dest := memOffset(&destW)
	if !globalJumpdestCache.get(rs.Ctx.Bytecode).valid(dest) {
		return fatal(ErrInvalidJump)
	}
	d := cont(st, 0)
	d.NewPC = &dest
	return d
}

// opJumpi implements conditional JUMPI: jump only if cond != 0, otherwise
// fall through to the next instruction.
func opJumpi(rs *RunState) Delta {
	st := rs.Stack.clone()
	destW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	cond, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	if cond.IsZero() {
		return cont(st, 0)
	}
	dest := memOffset(&destW)
	if !globalJumpdestCache.get(rs.Ctx.Bytecode).valid(dest) {
		return fatal(ErrInvalidJump)
	}
	d := cont(st, 0)
	d.NewPC = &dest
	return d
}

func opPc(rs *RunState) Delta {
	return push1(rs, wordFromUint64(rs.PC))
}

// opGas pushes the gas remaining after this instruction's own cost is
// charged, matching GAS's yellow-paper semantics. The frame executor
// charges minGas (GasQuickStep, see jump_table.go) after the handler
// returns, so the handler subtracts it up front.
func opGas(rs *RunState) Delta {
	left := rs.Ctx.GasLeft
	if left >= GasQuickStep {
		left -= GasQuickStep
	} else {
		left = 0
	}
	return push1(rs, wordFromUint64(left))
}

func opJumpdest(rs *RunState) Delta {
	return cont(rs.Stack.clone(), 0)
}
