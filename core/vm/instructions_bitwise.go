// Copyright 2015 by the Authors
// This file is part of the go-core library.
//
// The go-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-core library. If not, see <http://www.gnu.org/licenses/>.

package vm

func opLt(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { return boolWord(x.Lt(y)) })
}

func opGt(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { return boolWord(x.Gt(y)) })
}

func opSlt(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { return boolWord(x.Slt(y)) })
}

func opSgt(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { return boolWord(x.Sgt(y)) })
}

func opEq(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { return boolWord(x.Eq(y)) })
}

func opIszero(rs *RunState) Delta {
	return unary(rs, func(x *Word) Word { return boolWord(x.IsZero()) })
}

func opAnd(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { var r Word; return *r.And(x, y) })
}

func opOr(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { var r Word; return *r.Or(x, y) })
}

func opXor(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { var r Word; return *r.Xor(x, y) })
}

func opNot(rs *RunState) Delta {
	return unary(rs, func(x *Word) Word { var r Word; return *r.Not(x) })
}

// opByte implements BYTE(i, x): the i-th big-endian byte of x, 0 when
// i >= 32. Stack order: i is on top, x is second.
func opByte(rs *RunState) Delta {
	return binary(rs, func(i, x *Word) Word {
		r := *x
		return *r.Byte(i)
	})
}

// opShl implements SHL: value shifted left by shift bits, zero when
// shift >= 256. Stack order: shift is on top, value is second.
func opShl(rs *RunState) Delta {
	return binary(rs, func(shift, value *Word) Word {
		var r Word
		if shift.LtUint64(256) {
			r.Lsh(value, uint(shift.Uint64()))
		}
		return r
	})
}

// opShr implements SHR: logical (zero-fill) right shift.
func opShr(rs *RunState) Delta {
	return binary(rs, func(shift, value *Word) Word {
		var r Word
		if shift.LtUint64(256) {
			r.Rsh(value, uint(shift.Uint64()))
		}
		return r
	})
}

// opSar implements SAR: arithmetic (sign-extending) right shift. A shift
// of >= 256 yields 0 for non-negative values, all-ones for negative ones.
func opSar(rs *RunState) Delta {
	return binary(rs, func(shift, value *Word) Word {
		if !shift.LtUint64(256) {
			if value.Sign() >= 0 {
				return Word{}
			}
			var allOnes Word
			return *allOnes.Not(&allOnes)
		}
		var r Word
		r.SRsh(value, uint(shift.Uint64()))
		return r
	})
}
