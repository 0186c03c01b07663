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

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

// jumpdests marks every byte offset in a piece of bytecode that is a valid
// JUMP/JUMPI target: a JUMPDEST opcode that does not fall inside a PUSHn's
// immediate-data span.
type jumpdests []bool

// analyze scans code once, skipping PUSHn immediates so a 0x5b byte that is
// really push data is never mistaken for a JUMPDEST.
func analyze(code []byte) jumpdests {
	dests := make(jumpdests, len(code))
	for i := 0; i < len(code); {
		op := OpCode(code[i])
		if op == JUMPDEST {
			dests[i] = true
			i++
			continue
		}
		if n, ok := isPush(op); ok {
			i += 1 + n
			continue
		}
		i++
	}
	return dests
}

func (d jumpdests) valid(pos uint64) bool {
	return pos < uint64(len(d)) && d[pos]
}

// jumpdestCache memoizes analyze() per distinct bytecode, keyed by its
// Keccak256 digest -- the same content-addressing a contract's codehash
// gives it -- so repeated calls into the same code across many frames
// only ever analyze it once.
type jumpdestCache struct {
	mu     sync.Mutex
	byHash map[[32]byte]jumpdests
}

var globalJumpdestCache = &jumpdestCache{byHash: make(map[[32]byte]jumpdests)}

func (c *jumpdestCache) get(code []byte) jumpdests {
	hash := keccak256(code)
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.byHash[hash]; ok {
		return d
	}
	d := analyze(code)
	c.byHash[hash] = d
	return d
}

func keccak256(data []byte) [32]byte {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return out
}
