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

// callArgs is the subset of a CALL-family opcode's popped stack operands
// shared by all three kinds.
type callArgs struct {
	gas                  Word
	addr                 Address
	value                Word
	argsOffset, argsSize uint64
	retOffset, retSize   uint64
}

func popCallArgs(st *Stack, withValue bool) (callArgs, error) {
	var a callArgs
	gas, err := st.pop()
	if err != nil {
		return a, err
	}
	addrW, err := st.pop()
	if err != nil {
		return a, err
	}
	if withValue {
		a.value, err = st.pop()
		if err != nil {
			return a, err
		}
	}
	argsOffsetW, err := st.pop()
	if err != nil {
		return a, err
	}
	argsSizeW, err := st.pop()
	if err != nil {
		return a, err
	}
	retOffsetW, err := st.pop()
	if err != nil {
		return a, err
	}
	retSizeW, err := st.pop()
	if err != nil {
		return a, err
	}
	a.gas = gas
	a.addr = AddressFromWord(&addrW)
	a.argsOffset, a.argsSize = memOffset(&argsOffsetW), memOffset(&argsSizeW)
	a.retOffset, a.retSize = memOffset(&retOffsetW), memOffset(&retSizeW)
	return a, nil
}

// opCall implements CALL: a value-bearing call into another account's
// code, forwarding a bounded slice of the caller's remaining gas.
func opCall(rs *RunState) Delta {
	if rs.Ctx.IsStatic {
		st := rs.Stack.clone()
		args, err := popCallArgs(st, true)
		if err != nil {
			return fatal(err)
		}
		if !args.value.IsZero() {
			return fatal(ErrWriteProtection)
		}
		return dispatchCall(rs, st, args, args.addr, rs.Ctx.Address, args.value, rs.Ctx.IsStatic)
	}
	st := rs.Stack.clone()
	args, err := popCallArgs(st, true)
	if err != nil {
		return fatal(err)
	}
	return dispatchCall(rs, st, args, args.addr, rs.Ctx.Address, args.value, false)
}

// opDelegateCall implements DELEGATECALL: the target's code runs with the
// *current* frame's address, caller, and call value -- only the code is
// borrowed.
func opDelegateCall(rs *RunState) Delta {
	st := rs.Stack.clone()
	args, err := popCallArgs(st, false)
	if err != nil {
		return fatal(err)
	}
	return dispatchCall(rs, st, args, rs.Ctx.Address, rs.Ctx.Caller, rs.Ctx.CallValue, rs.Ctx.IsStatic)
}

// opStaticCall implements STATICCALL: like CALL but value-less and with
// the static restriction forced on for the sub-frame, so the callee can
// touch no state.
func opStaticCall(rs *RunState) Delta {
	st := rs.Stack.clone()
	args, err := popCallArgs(st, false)
	if err != nil {
		return fatal(err)
	}
	return dispatchCall(rs, st, args, args.addr, rs.Ctx.Address, zero(), true)
}

// dispatchCall is shared by all three call opcodes once their
// kind-specific operands (subAddress, subCaller, subValue, subStatic)
// have been worked out. subAddress is the account whose *address* the
// sub-frame runs as (the target for CALL/STATICCALL, the current frame's
// own address for DELEGATECALL); the code always comes from args.addr.
func dispatchCall(rs *RunState, st *Stack, args callArgs, subAddress, subCaller Address, subValue Word, subStatic bool) Delta {
	mem := rs.Memory.clone()
	input, argsMemCost, err := mem.getCopy(args.argsOffset, args.argsSize)
	if err != nil {
		return fatal(err)
	}
	retMemCost, err := mem.ensure(args.retOffset, args.retSize)
	if err != nil {
		return fatal(err)
	}

	target := rs.Ctx.State.Get(args.addr)
	forwarded := callGasForwarded(rs.Ctx.GasLeft, &args.gas)

	// Only a call that runs as the target moves value; DELEGATECALL's
	// inherited call value is not sent to the account it borrows code from.
	transfers := !subValue.IsZero() && subAddress == args.addr

	if target == nil || !target.HasCode() {
		if isPrecompile(args.addr) && rs.Ctx.Verbosity >= VerbosityOps {
			traceDim.Printf("%scall to reserved precompile address %s treated as empty account\n", indent(rs), args.addr.Hex())
		}
		if transfers {
			transferValue(rs.Ctx.State, rs.Ctx.Address, args.addr, subValue)
		}
		if err := st.push(one()); err != nil {
			return fatal(err)
		}
		d := cont(st, argsMemCost+retMemCost)
		d.Memory = mem
		d.ReturnDataSet = true
		d.ReturnData = nil
		return d
	}

	if transfers {
		transferValue(rs.Ctx.State, rs.Ctx.Address, args.addr, subValue)
	}

	subCtx := rs.Ctx.derive()
	subCtx.Address = subAddress
	subCtx.Caller = subCaller
	subCtx.Origin = rs.Ctx.Origin
	subCtx.CallValue = subValue
	subCtx.CallData = input
	subCtx.Bytecode = target.Code
	subCtx.IsStatic = subStatic
	subCtx.GasLeft = forwarded

	sub := Execute(subCtx)

	consumed := forwarded - sub.GasLeft
	success := one()
	if !sub.Success {
		success = zero()
	}
	if err := st.push(success); err != nil {
		return fatal(err)
	}

	n := args.retSize
	if uint64(len(sub.ReturnData)) < n {
		n = uint64(len(sub.ReturnData))
	}
	copyCost, err := mem.set(args.retOffset, sub.ReturnData[:n])
	if err != nil {
		return fatal(err)
	}

	d := cont(st, argsMemCost+retMemCost+copyCost+consumed)
	d.Memory = mem
	d.ReturnDataSet = true
	d.ReturnData = sub.ReturnData
	d.Logs = sub.Logs
	d.State = sub.State
	return d
}

// transferValue moves value from from's balance to to's, creating the
// destination account on first touch. The EVM never lets a transfer drive
// a balance negative; this interpreter trusts its caller (cmd/evm,
// internal/testsuite) to have pre-funded accounts it sends value from, and
// does not model a failed transfer.
func transferValue(state State, from, to Address, value Word) {
	sender := state.Account(from)
	var newSenderBal Word
	newSenderBal.Sub(&sender.Balance, &value)
	sender.Balance = newSenderBal

	receiver := state.Account(to)
	var newReceiverBal Word
	newReceiverBal.Add(&receiver.Balance, &value)
	receiver.Balance = newReceiverBal
}

// opReturn implements RETURN: end the frame successfully with the given
// memory range as return data.
func opReturn(rs *RunState) Delta {
	st := rs.Stack.clone()
	offsetW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	sizeW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	mem := rs.Memory.clone()
	data, cost, err := mem.getCopy(memOffset(&offsetW), memOffset(&sizeW))
	if err != nil {
		return fatal(err)
	}
	d := cont(st, cost)
	d.Memory = mem
	d.ReturnDataSet = true
	d.ReturnData = data
	d.ContinueExecution = false
	return d
}

// opRevert implements REVERT: like RETURN, but surfaces ErrExecutionReverted
// so the frame executor preserves remaining gas and propagates the data as
// a failure.
func opRevert(rs *RunState) Delta {
	st := rs.Stack.clone()
	offsetW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	sizeW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	mem := rs.Memory.clone()
	data, cost, err := mem.getCopy(memOffset(&offsetW), memOffset(&sizeW))
	if err != nil {
		return fatal(err)
	}
	d := cont(st, cost)
	d.Memory = mem
	d.ReturnDataSet = true
	d.ReturnData = data
	d.ContinueExecution = false
	d.Err = ErrExecutionReverted
	return d
}

func opInvalid(rs *RunState) Delta {
	return fatal(ErrInvalidOpcode)
}
