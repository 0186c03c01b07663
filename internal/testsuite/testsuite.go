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

// Package testsuite loads JSON conformance cases and runs them against
// core/vm, the way every mature interpreter in this family ships a
// state-test harness alongside the opcode implementation itself.
package testsuite

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/holiman/uint256"

	"github.com/evmlab/shanghai-evm/core/vm"
)

// Case is one test-harness JSON file's decoded contents.
type Case struct {
	Name  string              `json:"name"`
	Code  codeField           `json:"code"`
	Tx    txField             `json:"tx"`
	Block blockField          `json:"block"`
	State map[string]preState `json:"state"`
	Expect expectField        `json:"expect"`
}

type codeField struct {
	Bin string `json:"bin"`
	Asm string `json:"asm"`
}

type txField struct {
	To       string `json:"to"`
	From     string `json:"from"`
	Value    string `json:"value"`
	Data     string `json:"data"`
	GasLimit string `json:"gasLimit"`
	GasPrice string `json:"gasPrice"`
}

type blockField struct {
	Number     string `json:"number"`
	Timestamp  string `json:"timestamp"`
	Coinbase   string `json:"coinbase"`
	GasLimit   string `json:"gasLimit"`
	Difficulty string `json:"difficulty"`
	ChainID    string `json:"chainId"`
	BaseFee    string `json:"baseFee"`
}

type preState struct {
	Balance string            `json:"balance"`
	Nonce   string            `json:"nonce"`
	Code    string            `json:"code"`
	Storage map[string]string `json:"storage"`
}

type expectField struct {
	Success bool     `json:"success"`
	Stack   []string `json:"stack"`
	Return  string   `json:"return"`
	Logs    []logExpect `json:"logs"`
}

type logExpect struct {
	Address string   `json:"address"`
	Data    string   `json:"data"`
	Topics  []string `json:"topics"`
}

// Load parses one conformance-case JSON file.
func Load(path string) (*Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsuite: read %s: %w", path, err)
	}
	var c Case
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("testsuite: decode %s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = path
	}
	return &c, nil
}

func mustWord(s string) vm.Word {
	if s == "" {
		return vm.Word{}
	}
	var w uint256.Int
	if err := w.SetFromDecimal(s); err != nil {
		w.SetBytes(mustHex(s))
	}
	return vm.Word(w)
}

func mustHex(s string) []byte {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, _ := hex.DecodeString(s)
	return b
}

func mustAddress(s string) vm.Address {
	var a vm.Address
	b := mustHex(s)
	off := 20 - len(b)
	if off < 0 {
		b = b[-off:]
		off = 0
	}
	copy(a[off:], b)
	return a
}

// BuildContext turns a decoded Case into the Context Execute runs.
func (c *Case) BuildContext() (*vm.Context, error) {
	code, err := c.resolveCode()
	if err != nil {
		return nil, err
	}

	state := vm.NewState()
	for addrHex, pre := range c.State {
		acc := state.Account(mustAddress(addrHex))
		acc.Balance = mustWord(pre.Balance)
		acc.Nonce = mustWord(pre.Nonce)
		acc.Code = mustHex(pre.Code)
		for k, v := range pre.Storage {
			acc.SStore(mustWord(k), mustWord(v))
		}
	}

	to := mustAddress(c.Tx.To)
	if target := state.Get(to); target != nil && len(target.Code) == 0 {
		target.Code = code
	} else if target == nil {
		acc := state.Account(to)
		acc.Code = code
	}

	gasLeft := uint64(10_000_000)
	if c.Tx.GasLimit != "" {
		gasLeft = mustWord(c.Tx.GasLimit).Uint64()
	}

	return &vm.Context{
		Address:   to,
		Caller:    mustAddress(c.Tx.From),
		Origin:    mustAddress(c.Tx.From),
		GasPrice:  mustWord(c.Tx.GasPrice),
		GasLeft:   gasLeft,
		CallValue: mustWord(c.Tx.Value),
		CallData:  mustHex(c.Tx.Data),
		Bytecode:  code,
		Block: vm.BlockHeader{
			BaseFee:    mustWord(c.Block.BaseFee),
			Coinbase:   mustAddress(c.Block.Coinbase),
			Timestamp:  mustWord(c.Block.Timestamp),
			Number:     mustWord(c.Block.Number),
			Difficulty: mustWord(c.Block.Difficulty),
			GasLimit:   mustWord(c.Block.GasLimit),
			ChainID:    mustWord(c.Block.ChainID),
		},
		State: state,
	}, nil
}

// assemble turns a minimal newline-separated mnemonic listing into
// bytecode: one instruction per line, PUSHn followed by its hex immediate
// on the same line (e.g. "PUSH1 0x01"). Blank lines and lines starting
// with "//" are ignored.
func assemble(src string) ([]byte, error) {
	var out []byte
	for lineNo, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.Fields(line)
		op, ok := vm.LookupOpCode(fields[0])
		if !ok {
			return nil, fmt.Errorf("testsuite: asm line %d: unknown mnemonic %q", lineNo+1, fields[0])
		}
		out = append(out, byte(op))
		if n, isPush := pushImmediateLen(fields[0]); isPush {
			if len(fields) < 2 {
				return nil, fmt.Errorf("testsuite: asm line %d: %s needs an operand", lineNo+1, fields[0])
			}
			imm := mustHex(fields[1])
			if len(imm) < n {
				padded := make([]byte, n)
				copy(padded[n-len(imm):], imm)
				imm = padded
			}
			out = append(out, imm[len(imm)-n:]...)
		}
	}
	return out, nil
}

func pushImmediateLen(mnemonic string) (int, bool) {
	var n int
	if _, err := fmt.Sscanf(strings.ToUpper(mnemonic), "PUSH%d", &n); err == nil && n >= 1 && n <= 32 {
		return n, true
	}
	return 0, false
}

func (c *Case) resolveCode() ([]byte, error) {
	if c.Code.Bin != "" {
		return mustHex(c.Code.Bin), nil
	}
	if c.Code.Asm != "" {
		return assemble(c.Code.Asm)
	}
	return nil, fmt.Errorf("testsuite: case %s has neither code.bin nor code.asm", c.Name)
}

// Verify checks an already-executed result against Expect, returning a
// human-readable mismatch description when it doesn't match. It compares
// the success flag, the stack (when Expect lists one) and the return data
// (when Expect gives one); expected logs are not compared.
func Verify(result *vm.Result, expect expectField) error {
	if result.Success != expect.Success {
		return fmt.Errorf("success: got %v, want %v (err=%v)", result.Success, expect.Success, result.Err)
	}
	if len(expect.Stack) > 0 {
		if len(result.Stack) != len(expect.Stack) {
			return fmt.Errorf("stack length: got %d, want %d", len(result.Stack), len(expect.Stack))
		}
		for i, want := range expect.Stack {
			got := result.Stack[i]
			if got.String() != want {
				return fmt.Errorf("stack[%d]: got %s, want %s", i, got.String(), want)
			}
		}
	}
	if expect.Return != "" {
		want := mustHex(expect.Return)
		if hex.EncodeToString(result.ReturnData) != hex.EncodeToString(want) {
			return fmt.Errorf("return data: got %x, want %x", result.ReturnData, want)
		}
	}
	return nil
}
