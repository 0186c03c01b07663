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

// Result is what a completed frame -- top-level or nested -- hands back:
// whether it succeeded, the final stack and memory, remaining gas, return
// data, emitted logs, the (possibly mutated) world state, and the error
// that ended it, if any.
type Result struct {
	Success    bool
	Stack      []Word
	Memory     []byte
	GasLeft    uint64
	ReturnData []byte
	Logs       []LogEntry
	State      State
	Err        error
}

// Execute runs ctx's bytecode to completion. It is the library's single
// entry point: cmd/evm and internal/testsuite both call through it, and a
// CALL/DELEGATECALL/STATICCALL recurses into it for each nested frame.
func Execute(ctx *Context) *Result {
	return runFrame(ctx)
}
