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

// BlockHeader carries the block-scoped values the environment opcodes
// (COINBASE, TIMESTAMP, NUMBER, ...) project onto the stack.
type BlockHeader struct {
	BaseFee    Word
	Coinbase   Address
	Timestamp  Word
	Number     Word
	Difficulty Word
	GasLimit   Word
	ChainID    Word
}

// Context is the immutable-within-a-frame execution environment. A
// CALL/DELEGATECALL/STATICCALL builds a derived Context for its sub-frame;
// gasLeft and state are the two fields every frame in a single top-level
// invocation actually shares mutation of (gasLeft only ever decreases
// except for a refund on sub-call return; state is aliased by reference
// across every nested frame).
type Context struct {
	Address   Address
	Caller    Address
	Origin    Address
	GasPrice  Word
	GasLeft   uint64
	IsStatic  bool
	CallValue Word
	CallData  []byte
	Bytecode  []byte
	Block     BlockHeader
	State     State

	// Verbosity is the external trace-verbosity knob (0 silent .. 3
	// maximum detail). It is not part of the EVM's own semantics; cmd/evm
	// sets it from --verbose and core/vm/trace.go reads it to decide what
	// to print as the interpreter runs.
	Verbosity int

	// Depth is the current call-stack depth, 0 for the top-level
	// invocation, incremented by one per nested CALL/DELEGATECALL/
	// STATICCALL. Used only for trace indentation.
	Depth int
}

// derive builds the Context for a nested frame, copying the fields that
// stay unchanged across a call (origin, gasPrice, block, the shared state
// reference) and letting the caller override address/caller/callValue/
// isStatic/bytecode/callData/gasLeft per the call kind.
func (c *Context) derive() *Context {
	return &Context{
		Origin:    c.Origin,
		GasPrice:  c.GasPrice,
		Block:     c.Block,
		State:     c.State,
		Verbosity: c.Verbosity,
		Depth:     c.Depth + 1,
	}
}
