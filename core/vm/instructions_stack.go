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

// makePush returns the handler for PUSH0..PUSH32: read n bytes immediately
// following the opcode in the bytecode, left-pad to 32 bytes, push as a
// Word, and advance the PC past the immediate data. PUSH0 (n=0) pushes a
// zero Word and consumes no immediate bytes.
func makePush(n int) executionFunc {
	return func(rs *RunState) Delta {
		st := rs.Stack.clone()
		var buf [32]byte
		start := rs.PC + 1
		code := rs.Ctx.Bytecode
		for i := 0; i < n; i++ {
			idx := start + uint64(i)
			if idx < uint64(len(code)) {
				buf[32-n+i] = code[idx]
			}
		}
		var w Word
		w.SetBytes(buf[:])
		if err := st.push(w); err != nil {
			return fatal(err)
		}
		d := cont(st, 0)
		newPC := rs.PC + 1 + uint64(n)
		d.NewPC = &newPC
		return d
	}
}

func makeDup(n int) executionFunc {
	return func(rs *RunState) Delta {
		st := rs.Stack.clone()
		if err := st.dup(n); err != nil {
			return fatal(err)
		}
		return cont(st, 0)
	}
}

func makeSwap(n int) executionFunc {
	return func(rs *RunState) Delta {
		st := rs.Stack.clone()
		if err := st.swap(n); err != nil {
			return fatal(err)
		}
		return cont(st, 0)
	}
}
