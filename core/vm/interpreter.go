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

// runFrame is the fetch-decode-dispatch loop of a single frame, run once
// per top-level invocation and once per nested CALL/DELEGATECALL/
// STATICCALL. It never recurses into itself directly -- the call opcodes
// in instructions_call.go do that by invoking Execute again with a derived
// Context.
func runFrame(ctx *Context) *Result {
	rs := newRunState(ctx)

	for {
		// 1. Fetch: running off the end of the bytecode is a clean,
		// successful stop (the "implicit STOP" every EVM assumes).
		if rs.PC >= uint64(len(ctx.Bytecode)) {
			traceStop(rs)
			return finish(rs, true, nil)
		}
		opByte := ctx.Bytecode[rs.PC]

		// 2. Decode: an unmapped opcode is fatal.
		entry := shanghaiInstructionSet[opByte]
		if entry == nil {
			traceError(rs, OpCode(opByte), ErrInvalidOpcode)
			ctx.GasLeft = 0
			return finish(rs, false, ErrInvalidOpcode)
		}

		// 3. Dispatch: the handler is a pure function of rs.
		delta := entry.execute(rs)

		// 4. Charge. Insufficient gas is fatal and discards the delta
		// entirely -- none of the handler's intended mutations happened.
		cost := entry.minGas + delta.AdditionalGas
		if ctx.GasLeft < cost {
			traceError(rs, OpCode(opByte), ErrOutOfGas)
			ctx.GasLeft = 0
			return finish(rs, false, ErrOutOfGas)
		}
		ctx.GasLeft -= cost

		// 5. Merge.
		if delta.Stack != nil {
			rs.Stack = delta.Stack
		}
		if delta.Memory != nil {
			rs.Memory = delta.Memory
		}
		if delta.ReturnDataSet {
			rs.ReturnData = delta.ReturnData
		}
		if len(delta.Logs) > 0 {
			rs.Logs = append(rs.Logs, delta.Logs...)
		}
		if delta.State != nil {
			ctx.State = delta.State
		}

		traceOp(rs, entry, OpCode(opByte))

		// 6. A fatal error ends the frame with its gas zeroed; REVERT and
		// the static-write violations surface like REVERT instead --
		// return data and remaining gas both survive.
		if delta.Err != nil {
			if nonFatal(delta.Err) {
				traceRevert(rs, delta.Err)
				return finish(rs, false, delta.Err)
			}
			traceError(rs, OpCode(opByte), delta.Err)
			ctx.GasLeft = 0
			return finish(rs, false, delta.Err)
		}

		// 7. STOP/RETURN end the frame successfully here (REVERT and
		// INVALID carry an error and were handled above).
		if !delta.ContinueExecution {
			return finish(rs, true, nil)
		}

		// 8. Advance PC and loop.
		if delta.NewPC != nil {
			rs.PC = *delta.NewPC
			continue
		}
		step := uint64(1)
		if n, ok := isPush(OpCode(opByte)); ok {
			step += uint64(n)
		}
		rs.PC += step
	}
}

func finish(rs *RunState, success bool, err error) *Result {
	return &Result{
		Success:    success,
		Stack:      rs.Stack.topFirst(),
		Memory:     rs.Memory.Data(),
		GasLeft:    rs.Ctx.GasLeft,
		ReturnData: rs.ReturnData,
		Logs:       rs.Logs,
		State:      rs.Ctx.State,
		Err:        err,
	}
}
