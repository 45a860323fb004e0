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

package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dcoles/intcode/vm"
)

func TestDisassemble(t *testing.T) {
	var disTests = [...]struct {
		pc   int
		text string
		next int
	}{
		{0, "arb $1", 2},
		{2, "out rb-1", 4},
		{4, "add [100] $1 [100]", 8},
		{8, "eq [100] $16 [101]", 12},
		{12, "jz [101] $0", 15},
		{15, "halt", 16},
	}
	for _, test := range disTests {
		var b bytes.Buffer
		next, err := vm.Disassemble(quine, test.pc, &b)
		if err != nil {
			t.Errorf("Disassemble(%d): %v", test.pc, err)
			continue
		}
		if b.String() != test.text {
			t.Errorf("Disassemble(%d): expected %q, got %q", test.pc, test.text, b.String())
		}
		if next != test.next {
			t.Errorf("Disassemble(%d): expected next %d, got %d", test.pc, test.next, next)
		}
	}
}

func TestDisassembleBadWord(t *testing.T) {
	var b bytes.Buffer
	next, err := vm.Disassemble(C{42}, 0, &b)
	if err != nil {
		t.Fatal(err)
	}
	if b.String() != "???" {
		t.Errorf("expected \"???\", got %q", b.String())
	}
	if next != 1 {
		t.Errorf("expected next 1, got %d", next)
	}
}

func TestInstanceDisassemble(t *testing.T) {
	i, _ := setup(t, quine, nil)
	var b bytes.Buffer
	if err := i.Disassemble(&b); err != nil {
		t.Fatal(err)
	}
	if b.String() != "00000000  arb $1\n" {
		t.Errorf("got %q", b.String())
	}
	i.PC = len(i.Mem)
	err := i.Disassemble(&b)
	if _, ok := err.(vm.SegmentationFaultError); !ok {
		t.Errorf("expected SegmentationFaultError, got %v", err)
	}
}

func TestDumpRegisters(t *testing.T) {
	i, _ := setup(t, C{99}, nil)
	i.PC = 4
	i.RB = -3
	var b bytes.Buffer
	if err := i.DumpRegisters(&b); err != nil {
		t.Fatal(err)
	}
	if b.String() != "pc:00000004 rb:-3\n" {
		t.Errorf("got %q", b.String())
	}
}

func TestDumpMemory(t *testing.T) {
	i, _ := setup(t, C{99}, nil, vm.MemSize(32))
	i.Mem[9] = 5
	var b bytes.Buffer
	if err := i.DumpMemory(&b); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d:\n%s", len(lines), b.String())
	}
	if !strings.HasPrefix(lines[0], "> 00000000") || !strings.Contains(lines[0], "99<") {
		t.Errorf("bad row 0: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  00000008") || !strings.Contains(lines[1], " 5 ") {
		t.Errorf("bad row 1: %q", lines[1])
	}

	// an all-zero row holding the instruction pointer is still printed
	i.PC = 16
	b.Reset()
	if err := i.DumpMemory(&b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "> 00000010") {
		t.Errorf("pointer row elided:\n%s", b.String())
	}
}
