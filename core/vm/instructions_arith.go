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

func opStop(rs *RunState) Delta {
	return Delta{ContinueExecution: false}
}

func opAdd(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { var r Word; return *r.Add(x, y) })
}

func opMul(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { var r Word; return *r.Mul(x, y) })
}

func opSub(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { var r Word; return *r.Sub(x, y) })
}

// opDiv implements DIV: x/y, or zero when y is zero (division by zero
// yields zero, never a fault).
func opDiv(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { var r Word; return *r.Div(x, y) })
}

func opSdiv(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { var r Word; return *r.SDiv(x, y) })
}

func opMod(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { var r Word; return *r.Mod(x, y) })
}

func opSmod(rs *RunState) Delta {
	return binary(rs, func(x, y *Word) Word { var r Word; return *r.SMod(x, y) })
}

// opAddmod computes (x+y) mod z over the unbounded integers, with z=0
// yielding zero.
func opAddmod(rs *RunState) Delta {
	return ternary(rs, func(x, y, z *Word) Word {
		var r Word
		if z.IsZero() {
			return r
		}
		return *r.AddMod(x, y, z)
	})
}

func opMulmod(rs *RunState) Delta {
	return ternary(rs, func(x, y, z *Word) Word {
		var r Word
		if z.IsZero() {
			return r
		}
		return *r.MulMod(x, y, z)
	})
}

// opExp implements repeated-squaring EXP, charging an additional 50 gas
// per byte of the exponent on top of its table-entry minimum.
func opExp(rs *RunState) Delta {
	st := rs.Stack.clone()
	base, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	exponent, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	var r Word
	r.Exp(&base, &exponent)
	if err := st.push(r); err != nil {
		return fatal(err)
	}
	return cont(st, GasExpByte*uint64(expByteLen(&exponent)))
}

// opSignExtend implements SIGNEXTEND(b, x): for b<31, sign-extends the
// (b+1)-byte two's-complement value x to 256 bits.
func opSignExtend(rs *RunState) Delta {
	st := rs.Stack.clone()
	back, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	num, err := st.pop()
	if err != nil {
		return fatal(err)
	}
	var r Word
	r.ExtendSign(&num, &back)
	if err := st.push(r); err != nil {
		return fatal(err)
	}
	return cont(st, 0)
}
