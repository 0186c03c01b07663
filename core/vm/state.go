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

// AccountState is the tuple attached to every address: balance, nonce,
// immutable code, and a private key/value storage map.
type AccountState struct {
	Balance Word
	Nonce   Word
	Code    []byte
	Storage map[Word]Word
}

// NewAccountState returns an account with no code and empty storage, the
// state a freshly-touched address starts from.
func NewAccountState() *AccountState {
	return &AccountState{Storage: make(map[Word]Word)}
}

// SLoad reads a storage slot; an unset key yields zero rather than faulting.
func (a *AccountState) SLoad(key Word) Word {
	if a == nil || a.Storage == nil {
		return Word{}
	}
	return a.Storage[key]
}

// SStore writes a storage slot.
func (a *AccountState) SStore(key, value Word) {
	if a.Storage == nil {
		a.Storage = make(map[Word]Word)
	}
	a.Storage[key] = value
}

// HasCode reports whether the account carries executable code. An account
// with no code is the fast path CALL/DELEGATECALL/STATICCALL take when
// their destination has nothing to run: the call still succeeds and any
// value still transfers, but no sub-frame is entered.
func (a *AccountState) HasCode() bool {
	return a != nil && len(a.Code) > 0
}

// State is the world state: a map from address to account, threaded by
// reference through every nested frame so that a write in a sub-call is
// visible to its caller immediately, without any explicit commit step.
type State map[Address]*AccountState

// NewState returns an empty world state.
func NewState() State {
	return make(State)
}

// Account returns the account at addr, creating an empty one on first
// touch so callers never have to nil-check before writing to it.
func (s State) Account(addr Address) *AccountState {
	acc, ok := s[addr]
	if !ok {
		acc = NewAccountState()
		s[addr] = acc
	}
	return acc
}

// Get returns the account at addr without creating it, or nil.
func (s State) Get(addr Address) *AccountState {
	return s[addr]
}
