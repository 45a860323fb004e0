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

package vm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dcoles/intcode/internal/ici"
)

// Diagnostics are read-only: nothing here mutates machine state or affects
// subsequent execution.

// Disassemble writes a disassembly of the instruction at pc in mem to w and
// returns the position of the next instruction. Operands are rendered per
// their addressing mode: position as a bracketed address, immediate as a
// literal, relative as an offset from the relative base. A word that does
// not decode is rendered as "???".
func Disassemble(mem []Cell, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*ici.ErrWriter)
	if ew == nil {
		ew = ici.NewErrWriter(w)
	}
	in, derr := Decode(mem[pc])
	if derr != nil {
		io.WriteString(ew, "???")
		return pc + 1, ew.Err
	}
	io.WriteString(ew, in.Op.String())
	for p := 1; p <= in.Op.Arity(); p++ {
		var v Cell
		if pc+p < len(mem) {
			v = mem[pc+p]
		}
		ew.Write([]byte{' '})
		switch in.Mode(p) {
		case ModePosition:
			io.WriteString(ew, "["+strconv.FormatInt(int64(v), 10)+"]")
		case ModeImmediate:
			io.WriteString(ew, "$"+strconv.FormatInt(int64(v), 10))
		case ModeRelative:
			fmt.Fprintf(ew, "rb%+d", int64(v))
		default:
			io.WriteString(ew, "?"+strconv.FormatInt(int64(v), 10))
		}
	}
	return pc + 1 + in.Op.Arity(), ew.Err
}

// Disassemble writes the instruction at the instruction pointer to w,
// prefixed with its address.
func (i *Instance) Disassemble(w io.Writer) error {
	if i.PC < 0 || i.PC >= len(i.Mem) {
		return SegmentationFaultError(i.PC)
	}
	ew := ici.NewErrWriter(w)
	fmt.Fprintf(ew, "%08x  ", i.PC)
	Disassemble(i.Mem, i.PC, ew)
	ew.Write([]byte{'\n'})
	return ew.Err
}

// DumpRegisters writes the instruction pointer and relative base to w.
func (i *Instance) DumpRegisters(w io.Writer) error {
	_, err := fmt.Fprintf(w, "pc:%08x rb:%d\n", i.PC, int64(i.RB))
	return err
}

// DumpMemory writes memory to w in rows of eight cells, skipping rows that
// are entirely zero. The row holding the instruction pointer is always
// printed, flagged with '>', and the cell itself is marked.
func (i *Instance) DumpMemory(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for addr := 0; addr < len(i.Mem); addr += 8 {
		end := addr + 8
		if end > len(i.Mem) {
			end = len(i.Mem)
		}
		row := i.Mem[addr:end]
		here := i.PC >= addr && i.PC < end
		if !here && allZero(row) {
			continue
		}
		flag := byte(' ')
		if here {
			flag = '>'
		}
		fmt.Fprintf(ew, "%c %08x", flag, addr)
		for n, v := range row {
			mark := byte(' ')
			if addr+n == i.PC {
				mark = '<'
			}
			fmt.Fprintf(ew, " %11d%c", int64(v), mark)
		}
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return ew.Err
}

func allZero(row []Cell) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}
