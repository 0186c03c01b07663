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

// Memory is the linear, byte-addressable, 32-byte-word-granular scratch
// space of a single frame. It is never shared across frames; every CALL/
// DELEGATECALL/STATICCALL constructs a fresh one for its sub-frame.
type Memory struct {
	store []byte
}

func newMemory() *Memory {
	return &Memory{}
}

// clone deep-copies the memory so a handler can hand back a mutated copy
// inside a Delta without aliasing the frame's current memory.
func (m *Memory) clone() *Memory {
	cp := make([]byte, len(m.store))
	copy(cp, m.store)
	return &Memory{store: cp}
}

// Len returns the current memory size in bytes, always a multiple of 32.
func (m *Memory) Len() int {
	return len(m.store)
}

// wordsFor returns the number of 32-byte words needed to cover size bytes
// starting at offset, i.e. ceil((offset+size)/32), and false if offset+size
// (or the rounding up to a whole word) would overflow uint64 -- a 32-byte
// stack word clamped by memOffset to math.MaxUint64 is the common way this
// triggers.
func wordsFor(offset, size uint64) (uint64, bool) {
	if size == 0 {
		return 0, true
	}
	if offset > math.MaxUint64-size {
		return 0, false
	}
	sum := offset + size
	if sum > math.MaxUint64-31 {
		return 0, false
	}
	return (sum + 31) / 32, true
}

// affordableMemorySize reports whether a copy of size bytes could possibly
// be paid for out of gasLeft, without allocating size bytes just to find
// out. Every memory-word cost component (memoryGasCost, GasCopyWord,
// GasSha3Word, GasLogDataByte) charges at least GasMemoryWord gas per
// 32-byte word, so no affordable size can cover more words than gasLeft
// divides into. Callers use this to reject a *COPY opcode's attacker-
// controlled size with ErrOutOfGas before calling make([]byte, size).
func affordableMemorySize(gasLeft, size uint64) bool {
	if size == 0 {
		return true
	}
	return size/32 <= gasLeft/GasMemoryWord+1
}

// resize grows the store to wordsNew*32 bytes, zero-filling the extension.
// It never shrinks, and wordsNew=0 is a no-op.
func (m *Memory) resize(wordsNew uint64) {
	newLen := wordsNew * 32
	if uint64(len(m.store)) >= newLen {
		return
	}
	grown := make([]byte, newLen)
	copy(grown, m.store)
	m.store = grown
}

// ensure expands m in place to cover [offset, offset+size) and returns the
// incremental quadratic gas cost of doing so. A size of 0 never expands and
// never costs gas. Returns ErrOutOfGas instead of expanding if offset+size
// overflows uint64, rather than silently wrapping to a tiny, underpriced
// word count that later slicing would panic on.
func (m *Memory) ensure(offset, size uint64) (uint64, error) {
	if size == 0 {
		return 0, nil
	}
	wordsOld := uint64(len(m.store)) / 32
	wordsNew, ok := wordsFor(offset, size)
	if !ok {
		return 0, ErrOutOfGas
	}
	if wordsNew <= wordsOld {
		return 0, nil
	}
	cost := memoryGasCost(wordsNew) - memoryGasCost(wordsOld)
	m.resize(wordsNew)
	return cost, nil
}

// set writes value into the memory at offset, expanding first. Returns the
// expansion gas cost.
func (m *Memory) set(offset uint64, value []byte) (uint64, error) {
	cost, err := m.ensure(offset, uint64(len(value)))
	if err != nil {
		return 0, err
	}
	copy(m.store[offset:], value)
	return cost, nil
}

// set32 writes a big-endian 32-byte word at offset (MSTORE).
func (m *Memory) set32(offset uint64, val *Word) (uint64, error) {
	cost, err := m.ensure(offset, 32)
	if err != nil {
		return 0, err
	}
	b := val.Bytes32()
	copy(m.store[offset:offset+32], b[:])
	return cost, nil
}

// setByte writes the low byte of val at offset (MSTORE8).
func (m *Memory) setByte(offset uint64, val byte) (uint64, error) {
	cost, err := m.ensure(offset, 1)
	if err != nil {
		return 0, err
	}
	m.store[offset] = val
	return cost, nil
}

// getCopy returns a freshly allocated copy of memory[offset:offset+size],
// expanding first, along with the expansion gas cost. size=0 returns an
// empty (possibly nil) slice with zero cost and no expansion.
func (m *Memory) getCopy(offset, size uint64) ([]byte, uint64, error) {
	if size == 0 {
		return nil, 0, nil
	}
	cost, err := m.ensure(offset, size)
	if err != nil {
		return nil, 0, err
	}
	out := make([]byte, size)
	copy(out, m.store[offset:offset+size])
	return out, cost, nil
}

// Data returns the full memory contents. Callers must not modify it.
func (m *Memory) Data() []byte {
	return m.store
}
