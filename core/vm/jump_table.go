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

// executionFunc is the handler signature every opcode implements: a pure
// mapping from the frame's current RunState to the Delta describing what
// changed.
type executionFunc func(rs *RunState) Delta

// operation is one instruction table entry: its trace mnemonic, its
// constant minimum gas charge, and its handler. There is deliberately no
// separate dynamicGas/memorySize callback pair here, unlike the
// fork-by-fork jump tables this is grounded on -- additional gas (memory
// expansion, per-word/per-byte costs, forwarded call gas) is folded into
// the Delta the handler itself returns.
type operation struct {
	mnemonic string
	minGas   uint64
	execute  executionFunc
}

// JumpTable is a dense array indexed by opcode byte. A nil entry (an
// unmapped byte) terminates the frame fatally, as does the INVALID (0xFE)
// entry's handler.
type JumpTable [256]*operation

var shanghaiInstructionSet = newShanghaiInstructionSet()

// newShanghaiInstructionSet builds the single instruction set this
// interpreter supports. The whole interpreter targets the Shanghai
// hardfork only, so there is no per-fork table chain to build here, unlike
// the jump tables this is grounded on, which layer Frontier..Prague
// incrementally.
func newShanghaiInstructionSet() JumpTable {
	var t JumpTable

	set := func(op OpCode, minGas uint64, fn executionFunc) {
		t[op] = &operation{mnemonic: op.String(), minGas: minGas, execute: fn}
	}

	set(STOP, GasZeroStep, opStop)

	// Arithmetic
	set(ADD, GasFastestStep, opAdd)
	set(MUL, GasFastStep, opMul)
	set(SUB, GasFastestStep, opSub)
	set(DIV, GasFastStep, opDiv)
	set(SDIV, GasFastStep, opSdiv)
	set(MOD, GasFastStep, opMod)
	set(SMOD, GasFastStep, opSmod)
	set(ADDMOD, GasMidStep, opAddmod)
	set(MULMOD, GasMidStep, opMulmod)
	set(EXP, GasSlowStep, opExp)
	set(SIGNEXTEND, GasFastStep, opSignExtend)

	// Comparison / bitwise / shift
	set(LT, GasFastestStep, opLt)
	set(GT, GasFastestStep, opGt)
	set(SLT, GasFastestStep, opSlt)
	set(SGT, GasFastestStep, opSgt)
	set(EQ, GasFastestStep, opEq)
	set(ISZERO, GasFastestStep, opIszero)
	set(AND, GasFastestStep, opAnd)
	set(OR, GasFastestStep, opOr)
	set(XOR, GasFastestStep, opXor)
	set(NOT, GasFastestStep, opNot)
	set(BYTE, GasFastestStep, opByte)
	set(SHL, GasFastestStep, opShl)
	set(SHR, GasFastestStep, opShr)
	set(SAR, GasFastestStep, opSar)

	// Hash
	set(SHA3, 30, opSha3)

	// Environment
	set(ADDRESS, GasQuickStep, opAddress)
	set(BALANCE, GasBalance, opBalance)
	set(ORIGIN, GasQuickStep, opOrigin)
	set(CALLER, GasQuickStep, opCaller)
	set(CALLVALUE, GasQuickStep, opCallValue)
	set(CALLDATALOAD, GasFastestStep, opCallDataLoad)
	set(CALLDATASIZE, GasQuickStep, opCallDataSize)
	set(CALLDATACOPY, GasFastestStep, opCallDataCopy)
	set(CODESIZE, GasQuickStep, opCodeSize)
	set(CODECOPY, GasFastestStep, opCodeCopy)
	set(GASPRICE, GasQuickStep, opGasPrice)
	set(EXTCODESIZE, GasExtcodeSize, opExtCodeSize)
	set(EXTCODECOPY, GasExtcodeCopy, opExtCodeCopy)
	set(RETURNDATASIZE, GasQuickStep, opReturnDataSize)
	set(RETURNDATACOPY, GasFastestStep, opReturnDataCopy)
	set(EXTCODEHASH, GasExtcodeHash, opExtCodeHash)

	// Block
	set(BLOCKHASH, GasExtStep, opBlockHash)
	set(COINBASE, GasQuickStep, opCoinbase)
	set(TIMESTAMP, GasQuickStep, opTimestamp)
	set(NUMBER, GasQuickStep, opNumber)
	set(DIFFICULTY, GasQuickStep, opDifficulty)
	set(GASLIMIT, GasQuickStep, opGasLimit)
	set(CHAINID, GasQuickStep, opChainID)
	set(SELFBALANCE, GasFastStep, opSelfBalance)
	set(BASEFEE, GasQuickStep, opBaseFee)

	// Stack / memory / flow
	set(POP, GasQuickStep, opPop)
	set(MLOAD, GasFastestStep, opMload)
	set(MSTORE, GasFastestStep, opMstore)
	set(MSTORE8, GasFastestStep, opMstore8)
	set(SLOAD, GasSload, opSload)
	set(SSTORE, GasSstore, opSstore)
	set(JUMP, GasMidStep, opJump)
	set(JUMPI, GasJumpi, opJumpi)
	set(PC, GasQuickStep, opPc)
	set(MSIZE, GasQuickStep, opMsize)
	set(GAS, GasQuickStep, opGas)
	set(JUMPDEST, 1, opJumpdest)

	// Push
	set(PUSH0, GasQuickStep, makePush(0))
	for i := 1; i <= 32; i++ {
		set(PUSH1+OpCode(i-1), GasFastestStep, makePush(i))
	}

	// Dup / swap
	for i := 1; i <= 16; i++ {
		set(DUP1+OpCode(i-1), GasFastestStep, makeDup(i))
		set(SWAP1+OpCode(i-1), GasFastestStep, makeSwap(i))
	}

	// Log
	for i := 0; i <= 4; i++ {
		set(LOG0+OpCode(i), GasLogBase*uint64(i+1), makeLog(i))
	}

	// Calls, return, revert, invalid
	set(CALL, GasCall, opCall)
	set(DELEGATECALL, GasCall, opDelegateCall)
	set(STATICCALL, GasCall, opStaticCall)
	set(RETURN, GasZeroStep, opReturn)
	set(REVERT, GasZeroStep, opRevert)
	set(INVALID, 0, opInvalid)

	return t
}
