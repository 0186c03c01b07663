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

// isPrecompile reports whether addr falls in the reserved precompile range
// 0x01-0x09. This interpreter implements no precompiled contracts: a CALL
// into one of these addresses is just a call into whatever ordinary (most
// likely empty) account happens to sit there. The check exists so that
// boundary is visible and testable rather than silently falling out of
// "account has no code".
func isPrecompile(addr Address) bool {
	for i := 0; i < 19; i++ {
		if addr[i] != 0 {
			return false
		}
	}
	return addr[19] >= 1 && addr[19] <= 9
}
