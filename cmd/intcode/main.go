// This file is part of intcode - https://github.com/dcoles/intcode
//
// Copyright 2019 David Coles
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dcoles/intcode/vm"
)

var (
	ascii   bool
	debug   bool
	dump    bool
	noRaw   bool
	trace   bool
	memSize int
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		i.DumpRegisters(os.Stderr)
		i.DumpMemory(os.Stderr)
	}
	os.Exit(1)
}

// rawInput reads single bytes, for feeding key presses to a program while
// the terminal is in raw mode.
func rawInput(r io.Reader) vm.InHandler {
	var b [1]byte
	return func(_ *vm.Context) (vm.Cell, error) {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		return vm.Cell(b[0]), nil
	}
}

func main() {
	flag.BoolVar(&ascii, "ascii", false, "use the ASCII text adapter instead of the numeric console")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics on errors")
	flag.BoolVar(&dump, "dump", false, "dump registers and memory upon exit")
	flag.IntVar(&memSize, "mem", vm.DefaultMemSize, "memory size in cells")
	flag.BoolVar(&noRaw, "noraw", false, "disable raw terminal IO")
	flag.BoolVar(&trace, "trace", false, "disassemble every instruction to stderr as it executes")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] program\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	p, err := vm.LoadFile(flag.Arg(0))
	if err != nil {
		atExit(nil, err)
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	var opts = []vm.Option{vm.MemSize(memSize)}
	if trace {
		opts = append(opts, vm.Trace(os.Stderr))
	}
	if ascii {
		a := vm.NewASCIIAdapter(os.Stdin, os.Stdout)
		in := a.Input
		if !noRaw && term.IsTerminal(int(os.Stdin.Fd())) {
			if tearDown, err := setRawIO(); err == nil {
				defer tearDown()
				in = rawInput(os.Stdin)
			}
		}
		opts = append(opts, vm.Input(in), vm.Output(a.Output))
	} else {
		opts = append(opts,
			vm.Input(vm.ConsoleInput(os.Stdin)),
			vm.Output(vm.ConsoleOutput(stdout)))
	}

	i, err := vm.New(p, opts...)
	if err != nil {
		atExit(nil, err)
	}

	// nothing suspends here by default, but a handler may; resume until the
	// machine halts or faults
	st, err := i.Run()
	for st == vm.Suspended {
		st, err = i.Run()
	}
	stdout.Flush()
	if err != nil {
		atExit(i, err)
	}
	if dump {
		i.DumpRegisters(os.Stdout)
		i.DumpMemory(os.Stdout)
	}
}
