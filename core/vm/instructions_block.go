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

// opBlockHash always pushes zero: this interpreter carries no block
// history, so there is no honest ancestor hash to return.
func opBlockHash(rs *RunState) Delta { return push1(rs, zero()) }

func opCoinbase(rs *RunState) Delta   { return push1(rs, rs.Ctx.Block.Coinbase.Word()) }
func opTimestamp(rs *RunState) Delta  { return push1(rs, rs.Ctx.Block.Timestamp) }
func opNumber(rs *RunState) Delta     { return push1(rs, rs.Ctx.Block.Number) }
func opDifficulty(rs *RunState) Delta { return push1(rs, rs.Ctx.Block.Difficulty) }
func opGasLimit(rs *RunState) Delta   { return push1(rs, rs.Ctx.Block.GasLimit) }
func opChainID(rs *RunState) Delta    { return push1(rs, rs.Ctx.Block.ChainID) }
func opBaseFee(rs *RunState) Delta    { return push1(rs, rs.Ctx.Block.BaseFee) }
