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

// makeLog returns the handler for LOG0..LOG4: pop offset and size, then n
// topics, and append a LogEntry built from the current memory range. Like
// SSTORE, it is write-protected: a static frame must surface
// ErrWriteProtection instead of emitting anything. The table's minGas
// already carries 375*(n+1); the handler adds the per-data-byte cost and
// any memory expansion.
func makeLog(n int) executionFunc {
	return func(rs *RunState) Delta {
		if rs.Ctx.IsStatic {
			return fatal(ErrWriteProtection)
		}
		st := rs.Stack.clone()
		offsetW, err := st.pop()
		if err != nil {
			return fatal(err)
		}
		sizeW, err := st.pop()
		if err != nil {
			return fatal(err)
		}
		topics := make([]Word, n)
		for i := 0; i < n; i++ {
			topics[i], err = st.pop()
			if err != nil {
				return fatal(err)
			}
		}
		offset, size := memOffset(&offsetW), memOffset(&sizeW)
		mem := rs.Memory.clone()
		data, memCost, err := mem.getCopy(offset, size)
		if err != nil {
			return fatal(err)
		}

		d := cont(st, memCost+GasLogDataByte*size)
		d.Memory = mem
		d.Logs = []LogEntry{{Address: rs.Ctx.Address, Data: data, Topics: topics}}
		return d
	}
}
