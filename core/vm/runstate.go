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

// LogEntry is one LOG0..LOG4 emission: the emitting address, its data
// blob, and 0-4 indexed topics, in the order LOG instructions execute
// across the entire nested call tree.
type LogEntry struct {
	Address Address
	Data    []byte
	Topics  []Word
}

// RunState is the mutable-per-frame machine state: program counter, stack,
// memory, the most recent sub-call's return data, and the logs emitted so
// far in this frame. It is created when a frame begins and discarded when
// the frame terminates; it is never shared across frames.
type RunState struct {
	PC         uint64
	Stack      *Stack
	Memory     *Memory
	ReturnData []byte
	Logs       []LogEntry
	Ctx        *Context
}

func newRunState(ctx *Context) *RunState {
	return &RunState{
		Stack:  newStack(),
		Memory: newMemory(),
		Ctx:    ctx,
	}
}
