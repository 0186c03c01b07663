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

func push1(rs *RunState, w Word) Delta {
	st := rs.Stack.clone()
	if err := st.push(w); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

func opAddress(rs *RunState) Delta { return push1(rs, rs.Ctx.Address.Word()) }

func opBalance(rs *RunState) Delta {
	st := rs.Stack.clone()
	addrW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	acc := rs.Ctx.State.Get(AddressFromWord(&addrW))
	bal := zero()
	if acc != nil {
		bal = acc.Balance
	}
	if err := st.push(bal); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

func opOrigin(rs *RunState) Delta    { return push1(rs, rs.Ctx.Origin.Word()) }
func opCaller(rs *RunState) Delta    { return push1(rs, rs.Ctx.Caller.Word()) }
func opCallValue(rs *RunState) Delta { return push1(rs, rs.Ctx.CallValue) }

// opCallDataLoad pushes the 32 bytes of call data starting at the popped
// offset, zero-padded past the end -- the same "read past the end is zero"
// rule as memory and code.
func opCallDataLoad(rs *RunState) Delta {
	st := rs.Stack.clone()
	offsetW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	var buf [32]byte
	copyPadded(buf[:], rs.Ctx.CallData, memOffset(&offsetW))
	var w Word
	w.SetBytes(buf[:])
	if err := st.push(w); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

func opCallDataSize(rs *RunState) Delta {
	return push1(rs, wordFromUint64(uint64(len(rs.Ctx.CallData))))
}

func opCallDataCopy(rs *RunState) Delta {
	return copyToMemory(rs, rs.Ctx.CallData)
}

func opCodeSize(rs *RunState) Delta {
	return push1(rs, wordFromUint64(uint64(len(rs.Ctx.Bytecode))))
}

func opCodeCopy(rs *RunState) Delta {
	return copyToMemory(rs, rs.Ctx.Bytecode)
}

func opGasPrice(rs *RunState) Delta { return push1(rs, rs.Ctx.GasPrice) }

func opExtCodeSize(rs *RunState) Delta {
	st := rs.Stack.clone()
	addrW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	acc := rs.Ctx.State.Get(AddressFromWord(&addrW))
	size := 0
	if acc != nil {
		size = len(acc.Code)
	}
	if err := st.push(wordFromUint64(uint64(size))); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

func opExtCodeCopy(rs *RunState) Delta {
	st := rs.Stack.clone()
	addrW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	destW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	offsetW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	sizeW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	acc := rs.Ctx.State.Get(AddressFromWord(&addrW))
	var code []byte
	if acc != nil {
		code = acc.Code
	}
	dest, offset, size := memOffset(&destW), memOffset(&offsetW), memOffset(&sizeW)
	if !affordableMemorySize(rs.Ctx.GasLeft, size) {
		return fatal(ErrOutOfGas)
	}
	buf := make([]byte, size)
	copyPadded(buf, code, offset)
	mem := rs.Memory.clone()
	cost, err := mem.set(dest, buf)
	if err != nil {
		return fatal(err)
	}
	words, _ := wordsFor(0, size)
	d := cont(st, cost+GasCopyWord*words)
	d.Memory = mem
	return d
}

func opReturnDataSize(rs *RunState) Delta {
	return push1(rs, wordFromUint64(uint64(len(rs.ReturnData))))
}

func opReturnDataCopy(rs *RunState) Delta {
	return copyToMemory(rs, rs.ReturnData)
}

func opExtCodeHash(rs *RunState) Delta {
	st := rs.Stack.clone()
	addrW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	acc := rs.Ctx.State.Get(AddressFromWord(&addrW))
	var w Word
	if acc != nil && acc.HasCode() {
		hash := keccak256(acc.Code)
		w.SetBytes(hash[:])
	}
	if err := st.push(w); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}

func opSelfBalance(rs *RunState) Delta { return push1(rs, rs.self().Balance) }

// copyPadded copies src[offset:] into dst, zero-filling dst past len(src).
func copyPadded(dst, src []byte, offset uint64) {
	if offset >= uint64(len(src)) {
		return
	}
	copy(dst, src[offset:])
}

// copyToMemory implements the *COPY family: pop destOffset, offset, size,
// and copy size bytes of src starting at offset (zero-padded past its end)
// into memory at destOffset.
func copyToMemory(rs *RunState, src []byte) Delta {
	st := rs.Stack.clone()
	destW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	offsetW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	sizeW, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	dest, offset, size := memOffset(&destW), memOffset(&offsetW), memOffset(&sizeW)
	if !affordableMemorySize(rs.Ctx.GasLeft, size) {
		return fatal(ErrOutOfGas)
	}
	buf := make([]byte, size)
	copyPadded(buf, src, offset)
	mem := rs.Memory.clone()
	cost, err := mem.set(dest, buf)
	if err != nil {
		return fatal(err)
	}
	words, _ := wordsFor(0, size)
	d := cont(st, cost+GasCopyWord*words)
	d.Memory = mem
	return d
}
