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

// Command evm runs a single piece of EVM bytecode through the Shanghai
// interpreter and prints the outcome.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/evmlab/shanghai-evm/core/vm"
)

// txOverride is the optional --tx JSON payload overriding the top-level
// invocation's transaction-shaped fields, since most ad-hoc bytecode
// snippets don't need a full state-test fixture.
type txOverride struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Data     string `json:"data"`
	GasLeft  uint64 `json:"gasLeft"`
	Origin   string `json:"origin"`
	GasPrice string `json:"gasprice"`
}

func main() {
	app := &cli.App{
		Name:  "evm",
		Usage: "run a piece of Shanghai-hardfork EVM bytecode",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "code",
				Aliases:  []string{"c"},
				Usage:    "bytecode as a hex string, 0x-prefixed or not",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "trace verbosity: 0 silent, 1 ops, 2 +stack, 3 +memory",
				Value:   vm.VerbosityOps,
			},
			&cli.StringFlag{
				Name:  "tx",
				Usage: "JSON object overriding from/to/value/data/gasLeft/origin/gasprice for the call",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the result as JSON instead of the human-readable summary",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("evm: %v", err))
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	code, err := decodeHexArg(cctx.String("code"))
	if err != nil {
		return fmt.Errorf("--code: %w", err)
	}

	tx := txOverride{GasLeft: 10_000_000}
	if raw := cctx.String("tx"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &tx); err != nil {
			return fmt.Errorf("--tx: %w", err)
		}
	}

	callValue, err := parseWord(tx.Value)
	if err != nil {
		return fmt.Errorf("tx.value: %w", err)
	}
	callData, err := decodeHexArg(tx.Data)
	if err != nil {
		return fmt.Errorf("tx.data: %w", err)
	}
	from, err := parseAddress(tx.From)
	if err != nil {
		return fmt.Errorf("tx.from: %w", err)
	}
	to := vm.Address{0x01}
	if tx.To != "" {
		to, err = parseAddress(tx.To)
		if err != nil {
			return fmt.Errorf("tx.to: %w", err)
		}
	}
	origin := from
	if tx.Origin != "" {
		origin, err = parseAddress(tx.Origin)
		if err != nil {
			return fmt.Errorf("tx.origin: %w", err)
		}
	}
	gasPrice, err := parseWord(tx.GasPrice)
	if err != nil {
		return fmt.Errorf("tx.gasprice: %w", err)
	}

	state := vm.NewState()
	contract := state.Account(to)
	contract.Code = code

	ctx := &vm.Context{
		Address:   to,
		Caller:    from,
		Origin:    origin,
		GasPrice:  gasPrice,
		GasLeft:   tx.GasLeft,
		CallValue: callValue,
		CallData:  callData,
		Bytecode:  code,
		State:     state,
		Verbosity: cctx.Int("verbose"),
	}

	result := vm.Execute(ctx)

	if cctx.Bool("json") {
		return printJSON(result)
	}
	printHuman(result)
	return nil
}

func decodeHexArg(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, nil
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// parseAddress decodes a hex address, left-padding short input the way
// vm.AddressFromWord pads a stack word: the low-order bytes are the ones
// supplied, so "ca" means address ...000ca, not ca000...0.
func parseAddress(s string) (vm.Address, error) {
	var a vm.Address
	if s == "" {
		return a, nil
	}
	b, err := decodeHexArg(s)
	if err != nil {
		return a, err
	}
	if len(b) > len(a) {
		return a, fmt.Errorf("address %q longer than 20 bytes", s)
	}
	copy(a[len(a)-len(b):], b)
	return a, nil
}

func parseWord(s string) (vm.Word, error) {
	if s == "" {
		return vm.Word{}, nil
	}
	var w uint256.Int
	if err := w.SetFromDecimal(s); err == nil {
		return vm.Word(w), nil
	}
	b, err := decodeHexArg(s)
	if err != nil {
		return vm.Word{}, err
	}
	w.SetBytes(b)
	return vm.Word(w), nil
}

func printJSON(result *vm.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	stack := make([]string, len(result.Stack))
	for i, w := range result.Stack {
		stack[i] = w.String()
	}
	errStr := ""
	if result.Err != nil {
		errStr = result.Err.Error()
	}
	return enc.Encode(struct {
		Success bool     `json:"success"`
		Stack   []string `json:"stack"`
		Return  string   `json:"return"`
		GasLeft uint64   `json:"gasLeft"`
		Error   string   `json:"error,omitempty"`
	}{
		Success: result.Success,
		Stack:   stack,
		Return:  "0x" + hex.EncodeToString(result.ReturnData),
		GasLeft: result.GasLeft,
		Error:   errStr,
	})
}

func printHuman(result *vm.Result) {
	status := color.GreenString("success")
	if !result.Success {
		status = color.RedString("failure: %v", result.Err)
	}
	fmt.Printf("%s  gasLeft=%d\n", status, result.GasLeft)
	if len(result.Stack) > 0 {
		fmt.Println("stack (top first):")
		for i, w := range result.Stack {
			fmt.Printf("  [%d] %s\n", i, w.String())
		}
	}
	if len(result.ReturnData) > 0 {
		fmt.Printf("return: 0x%x\n", result.ReturnData)
	}
	for _, l := range result.Logs {
		fmt.Printf("log: address=%s topics=%d data=0x%x\n", l.Address.Hex(), len(l.Topics), l.Data)
	}
}
