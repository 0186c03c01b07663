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

import "math"

// memOffset projects a stack word onto a byte offset/size. Values that do
// not fit in a uint64 are clamped to math.MaxUint64, which drives the
// memory-expansion cost high enough to exhaust any realistic gas budget
// rather than risk a silent wraparound.
func memOffset(w *Word) uint64 {
	if w.IsUint64() {
		return w.Uint64()
	}
	return math.MaxUint64
}

func opMload(rs *RunState) Delta {
	st := rs.Stack.clone()
	offsetW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	offset := memOffset(&offsetW)
	mem := rs.Memory.clone()
	word, cost, err := mem.getCopy(offset, 32)
	if err != nil {
		return fatal(err)
	}
	var w Word
	w.SetBytes(word)
	if err := st.push(w); err != nil {
		return fatal(err)
	}
	d := cont(st, cost)
	d.Memory = mem
	return d
}

func opMstore(rs *RunState) Delta {
	st := rs.Stack.clone()
	offsetW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	value, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	mem := rs.Memory.clone()
	cost, err := mem.set32(memOffset(&offsetW), &value)
	if err != nil {
		return fatal(err)
	}
	d := cont(st, cost)
	d.Memory = mem
	return d
}

func opMstore8(rs *RunState) Delta {
	st := rs.Stack.clone()
	offsetW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	value, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	mem := rs.Memory.clone()
	b := value.Bytes32()
	cost, err := mem.setByte(memOffset(&offsetW), b[31])
	if err != nil {
		return fatal(err)
	}
	d := cont(st, cost)
	d.Memory = mem
	return d
}

func opMsize(rs *RunState) Delta {
	st := rs.Stack.clone()
	if err := st.push(wordFromUint64(uint64(rs.Memory.Len()))); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

// opSha3 implements the SHA3/KECCAK256 opcode: Keccak256 of a memory range,
// 6 gas per (rounded-up) 32-byte word plus memory expansion.
func opSha3(rs *RunState) Delta {
	st := rs.Stack.clone()
	offsetW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	sizeW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	offset, size := memOffset(&offsetW), memOffset(&sizeW)
	mem := rs.Memory.clone()
	data, memCost, err := mem.getCopy(offset, size)
	if err != nil {
		return fatal(err)
	}
	hash := keccak256(data)
	var w Word
	w.SetBytes(hash[:])
	if err := st.push(w); err != nil {
		return fatal(err)
	}
	words, _ := wordsFor(0, size)
	d := cont(st, memCost+GasSha3Word*words)
	d.Memory = mem
	return d
}
