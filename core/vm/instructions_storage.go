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

func opSload(rs *RunState) Delta {
	st := rs.Stack.clone()
	key, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	if err := st.push(rs.self().SLoad(key)); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

// opSstore writes a storage slot. It is one of the three write operations
// (with LOG* and value-bearing CALL) that must surface ErrWriteProtection
// instead of mutating state when the frame is static.
func opSstore(rs *RunState) Delta {
	if rs.Ctx.IsStatic {
		return fatal(ErrWriteProtection)
	}
	st := rs.Stack.clone()
	key, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	value, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	rs.self().SStore(key, value)
	return cont(st, 0)
}
