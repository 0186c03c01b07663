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

// Fixed per-step gas costs, named the way every fork in the go-ethereum
// family names them.
const (
	GasZeroStep    uint64 = 0
	GasQuickStep   uint64 = 2
	GasFastestStep uint64 = 3
	GasFastStep    uint64 = 5
	GasMidStep     uint64 = 8
	GasSlowStep    uint64 = 10
	GasExtStep     uint64 = 20

	GasSha3Word      uint64 = 6
	GasCopyWord      uint64 = 3
	GasExpByte       uint64 = 50
	GasLogBase       uint64 = 375
	GasLogTopic      uint64 = 375
	GasLogDataByte   uint64 = 8
	GasSstore        uint64 = 100
	GasSload         uint64 = 100
	GasBalance       uint64 = 100
	GasExtcodeSize   uint64 = 100
	GasExtcodeCopy   uint64 = 100
	GasExtcodeHash   uint64 = 100
	GasCall          uint64 = 100
	GasJumpi         uint64 = 10 // yellow-paper value
	GasMemoryWord    uint64 = 3
	GasMemoryQuadDiv uint64 = 512
)

// memoryGasCost is the quadratic memory-expansion cost function:
// cost(w) = floor(w^2/512) + 3w.
func memoryGasCost(words uint64) uint64 {
	return words*words/GasMemoryQuadDiv + GasMemoryWord*words
}

// callGasForwarded implements the "all but one 64th" yellow-paper rule:
// cap the requested gas at (gasLeft-100) - floor((gasLeft-100)/64).
func callGasForwarded(gasLeft uint64, requested *Word) uint64 {
	if gasLeft < GasCall {
		return 0
	}
	available := gasLeft - GasCall
	capped := available - available/64
	if requested.IsUint64() && requested.Uint64() < capped {
		return requested.Uint64()
	}
	return capped
}

// expByteLen returns the big-endian byte length of exponent, used for
// EXP's additional 50-gas-per-byte cost.
func expByteLen(exponent *Word) int {
	return (exponent.BitLen() + 7) / 8
}
