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

// unary pops one operand (x) and pushes f(x). x is the value that was on
// top of the stack.
func unary(rs *RunState, f func(x *Word) Word) Delta {
	st := rs.Stack.clone()
	x, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	r := f(&x)
	if err := st.push(r); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

// binary pops two operands, x (top) then y (second from top), and pushes
// f(x, y) -- i.e. f(top, second), matching the yellow paper's
// mus'[0] = OP(mus[0], mus[1]) convention for every two-operand opcode.
func binary(rs *RunState, f func(x, y *Word) Word) Delta {
	st := rs.Stack.clone()
	x, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	y, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	r := f(&x, &y)
	if err := st.push(r); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

// ternary pops three operands top-to-bottom (x, y, z) and pushes f(x, y, z).
func ternary(rs *RunState, f func(x, y, z *Word) Word) Delta {
	st := rs.Stack.clone()
	x, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	y, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	z, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	r := f(&x, &y, &z)
	if err := st.push(r); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

// account returns the AccountState at addr in the frame's world state,
// creating an empty one on first touch (reads of an untouched address
// behave as if it held balance 0, nonce 0, no code, empty storage).
func (rs *RunState) account(addr Address) *AccountState {
	return rs.Ctx.State.Account(addr)
}

// self returns the executing contract's own account.
func (rs *RunState) self() *AccountState {
	return rs.account(rs.Ctx.Address)
}
