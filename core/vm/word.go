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

// Package vm implements a Shanghai-hardfork EVM bytecode interpreter.
package vm

import (
	"github.com/holiman/uint256"
)

// Word is the 256-bit unsigned integer that every stack slot, storage key,
// storage value, and address is carried as. All arithmetic and bitwise
// opcode results are reduced modulo 2**256, which is exactly what
// uint256.Int's in-place operations already do.
type Word = uint256.Int

// zero and one are convenience constructors used throughout the opcode
// handlers for the 0/1 results comparison operators push.
func zero() Word { return Word{} }

func one() Word {
	var w Word
	w.SetOne()
	return w
}

func wordFromUint64(v uint64) Word {
	var w Word
	w.SetUint64(v)
	return w
}

// boolWord returns 1 if b, else 0 -- the pattern every comparison opcode
// (LT, GT, SLT, SGT, EQ, ISZERO) reduces to.
func boolWord(b bool) Word {
	if b {
		return one()
	}
	return zero()
}

// Address is the 20-byte low-order projection of a Word, used as the
// world-state map key exactly as go-ethereum's common.Address is.
type Address [20]byte

// AddressFromWord projects a 256-bit Word onto its low 20 bytes, the same
// truncation EVM addresses always undergo when a full stack word is
// interpreted as an address operand (e.g. BALANCE, EXTCODESIZE, CALL).
func AddressFromWord(w *Word) Address {
	var a Address
	b := w.Bytes20()
	copy(a[:], b[:])
	return a
}

// Word returns the 256-bit zero-extended representation of the address,
// the form pushed back onto the stack by ADDRESS/CALLER/ORIGIN/COINBASE.
func (a Address) Word() Word {
	var w Word
	w.SetBytes(a[:])
	return w
}

func (a Address) Hex() string {
	const hextable = "0123456789abcdef"
	buf := make([]byte, 2+len(a)*2)
	buf[0], buf[1] = '0', 'x'
	for i, b := range a {
		buf[2+i*2] = hextable[b>>4]
		buf[3+i*2] = hextable[b&0xf]
	}
	return string(buf)
}
