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

// maxStackDepth is the EVM's fixed stack capacity: depth must never exceed
// 1024 items.
const maxStackDepth = 1024

// Stack is the 256-bit-word LIFO operand stack. Handlers never mutate a
// RunState's stack directly; instead they clone it, apply their pops and
// pushes to the clone, and hand the clone back inside a Delta, keeping each
// handler a pure function of its input RunState.
type Stack struct {
	data []Word
}

func newStack() *Stack {
	return &Stack{data: make([]Word, 0, 16)}
}

// clone returns a deep copy suitable for a handler to mutate and return as
// part of a Delta without aliasing the caller's stack.
func (st *Stack) clone() *Stack {
	cp := make([]Word, len(st.data))
	copy(cp, st.data)
	return &Stack{data: cp}
}

func (st *Stack) len() int {
	return len(st.data)
}

func (st *Stack) push(w Word) error {
	if len(st.data) >= maxStackDepth {
		return &ErrStackOverflow{StackLen: len(st.data), Limit: maxStackDepth}
	}
	st.data = append(st.data, w)
	return nil
}

// pop removes and returns the top of stack. Returns ErrStackUnderflow if
// the stack is empty.
func (st *Stack) pop() (Word, error) {
	n := len(st.data)
	if n == 0 {
		return Word{}, &ErrStackUnderflow{StackLen: 0, Required: 1}
	}
	w := st.data[n-1]
	st.data = st.data[:n-1]
	return w, nil
}

// require returns ErrStackUnderflow unless the stack holds at least n items.
func (st *Stack) require(n int) error {
	if len(st.data) < n {
		return &ErrStackUnderflow{StackLen: len(st.data), Required: n}
	}
	return nil
}

// peek returns the n-th element from the top, 0-indexed (peek(0) is top).
func (st *Stack) peek(n int) (Word, error) {
	idx := len(st.data) - 1 - n
	if idx < 0 {
		return Word{}, &ErrStackUnderflow{StackLen: len(st.data), Required: n + 1}
	}
	return st.data[idx], nil
}

// dup pushes a copy of the n-th element from the top (1-indexed, as DUPn
// names it: dup(1) duplicates the current top).
func (st *Stack) dup(n int) error {
	v, err := st.peek(n - 1)
	if err != nil {
		return err
	}
	return st.push(v)
}

// swap exchanges the top element with the element n positions below it
// (1-indexed, as SWAPn names it: swap(1) swaps top with second-from-top).
func (st *Stack) swap(n int) error {
	if err := st.require(n + 1); err != nil {
		return err
	}
	top := len(st.data) - 1
	st.data[top], st.data[top-n] = st.data[top-n], st.data[top]
	return nil
}

// Data returns the stack contents bottom-first. Callers must not modify the
// returned slice.
func (st *Stack) Data() []Word {
	return st.data
}

// topFirst returns the stack contents top-first, the order Result.Stack is
// rendered in.
func (st *Stack) topFirst() []Word {
	out := make([]Word, len(st.data))
	for i, w := range st.data {
		out[len(st.data)-1-i] = w
	}
	return out
}
