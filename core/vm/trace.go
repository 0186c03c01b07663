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

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Verbosity levels for Context.Verbosity: 0 prints nothing, 1 prints one
// line per executed opcode, 2 additionally dumps the stack after each
// step, 3 additionally dumps memory.
const (
	VerbositySilent = 0
	VerbosityOps    = 1
	VerbosityStack  = 2
	VerbosityMemory = 3
)

var (
	traceMnemonic = color.New(color.FgCyan)
	traceDim      = color.New(color.FgHiBlack)
	traceErr      = color.New(color.FgRed, color.Bold)
)

func indent(rs *RunState) string {
	return strings.Repeat("  ", rs.Ctx.Depth)
}

func traceOp(rs *RunState, entry *operation, op OpCode) {
	if rs.Ctx.Verbosity < VerbosityOps {
		return
	}
	fmt.Printf("%s%s pc=%04d %s gas=%d\n",
		indent(rs), traceMnemonic.Sprint(entry.mnemonic), rs.PC, traceDim.Sprintf("(0x%02x)", byte(op)), rs.Ctx.GasLeft)

	if rs.Ctx.Verbosity >= VerbosityStack {
		printStack(rs)
	}
	if rs.Ctx.Verbosity >= VerbosityMemory {
		printMemory(rs)
	}
}

func printStack(rs *RunState) {
	top := rs.Stack.topFirst()
	parts := make([]string, len(top))
	for i, w := range top {
		parts[i] = wordHex(&w)
	}
	fmt.Printf("%s  stack: [%s]\n", indent(rs), strings.Join(parts, ", "))
}

// wordHex renders a Word for the trace's stack dump: "0x" plus the minimal
// big-endian hex digits, with a lone "0x0" for zero rather than 64 zero
// digits.
func wordHex(w *Word) string {
	if w.IsZero() {
		return "0x0"
	}
	b := w.Bytes32()
	i := 0
	for b[i] == 0 {
		i++
	}
	s := fmt.Sprintf("%x", b[i:])
	return "0x" + strings.TrimLeft(s, "0")
}

func printMemory(rs *RunState) {
	fmt.Printf("%s  memory: %x\n", indent(rs), rs.Memory.Data())
}

func traceStop(rs *RunState) {
	if rs.Ctx.Verbosity < VerbosityOps {
		return
	}
	fmt.Printf("%s%s\n", indent(rs), traceDim.Sprint("STOP (ran off end of code)"))
}

func traceRevert(rs *RunState, err error) {
	if rs.Ctx.Verbosity < VerbosityOps {
		return
	}
	fmt.Println(indent(rs) + traceErr.Sprintf("revert: %v", err))
}

func traceError(rs *RunState, op OpCode, err error) {
	if rs.Ctx.Verbosity < VerbosityOps {
		return
	}
	fmt.Println(indent(rs) + traceErr.Sprintf("fatal at pc=%d %s: %v", rs.PC, op, err))
}
