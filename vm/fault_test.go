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
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/dcoles/intcode/vm"
)

func runFaulting(t *testing.T, code C, opts ...vm.Option) (*vm.Instance, error) {
	t.Helper()
	i, _ := setup(t, code, nil, opts...)
	st, err := i.Run()
	if st != vm.Faulted || err == nil {
		t.Fatalf("expected fault, got %v (%v)", st, err)
	}
	return i, err
}

func TestIllegalOpcode(t *testing.T) {
	_, err := runFaulting(t, C{42, 0, 0, 0})
	if e, ok := err.(vm.IllegalInstructionError); !ok || vm.Cell(e) != 42 {
		t.Errorf("expected illegal instruction 42, got %v", err)
	}
}

func TestIllegalMode(t *testing.T) {
	// mode digit 3 on parameter 1
	_, err := runFaulting(t, C{304, 1, 99})
	if e, ok := err.(vm.IllegalInstructionError); !ok || vm.Cell(e) != 304 {
		t.Errorf("expected illegal instruction 304, got %v", err)
	}
}

func TestImmediateStore(t *testing.T) {
	// store through an immediate-mode parameter must fault, not no-op
	i, err := runFaulting(t, C{11101, 1, 1, 0, 99})
	if e, ok := err.(vm.IllegalInstructionError); !ok || vm.Cell(e) != 11101 {
		t.Errorf("expected illegal instruction 11101, got %v", err)
	}
	if i.Mem[0] != 11101 {
		t.Errorf("memory mutated by faulting instruction: mem[0] = %d", i.Mem[0])
	}
}

func TestNegativeJumpTarget(t *testing.T) {
	_, err := runFaulting(t, C{1105, 1, -1, 99})
	if e, ok := err.(vm.IllegalInstructionError); !ok || vm.Cell(e) != 1105 {
		t.Errorf("expected illegal instruction 1105, got %v", err)
	}
}

func TestSegfaultOperandAddress(t *testing.T) {
	// operand names address 8 in an 8-cell memory; cell 7 must keep its value
	i, err := runFaulting(t, C{1, 8, 4, 7, 99, 0, 0, 123}, vm.MemSize(8))
	if e, ok := err.(vm.SegmentationFaultError); !ok || int(e) != 8 {
		t.Errorf("expected segmentation fault at 8, got %v", err)
	}
	if i.Mem[7] != 123 {
		t.Errorf("memory mutated by faulting instruction: mem[7] = %d", i.Mem[7])
	}
}

func TestSegfaultStoreAddress(t *testing.T) {
	i, err := runFaulting(t, C{1101, 1, 1, 9, 99}, vm.MemSize(8))
	if e, ok := err.(vm.SegmentationFaultError); !ok || int(e) != 9 {
		t.Errorf("expected segmentation fault at 9, got %v", err)
	}
	for n, v := range i.Mem[5:] {
		if v != 0 {
			t.Errorf("memory mutated by faulting instruction: mem[%d] = %d", n+5, v)
		}
	}
}

func TestSegfaultParameterCell(t *testing.T) {
	// the instruction's own parameter cells run off the end of memory
	_, err := runFaulting(t, C{1101, 1, 1}, vm.MemSize(3))
	if e, ok := err.(vm.SegmentationFaultError); !ok || int(e) != 3 {
		t.Errorf("expected segmentation fault at 3, got %v", err)
	}
}

func TestSegfaultInstructionFetch(t *testing.T) {
	// add commits, then the pointer runs off the end
	i, err := runFaulting(t, C{1101, 1, 1, 3}, vm.MemSize(4))
	if e, ok := err.(vm.SegmentationFaultError); !ok || int(e) != 4 {
		t.Errorf("expected segmentation fault at 4, got %v", err)
	}
	if i.Mem[3] != 2 {
		t.Errorf("committed instruction lost: mem[3] = %d", i.Mem[3])
	}
}

func TestSegfaultNegativeRelative(t *testing.T) {
	_, err := runFaulting(t, C{109, -5, 204, 0, 99})
	if e, ok := err.(vm.SegmentationFaultError); !ok || int(e) != -5 {
		t.Errorf("expected segmentation fault at -5, got %v", err)
	}
}

func TestIOErrorCause(t *testing.T) {
	// console input at EOF surfaces through the fault
	i, err := vm.New(vm.Program{3, 0, 99},
		vm.Input(vm.ConsoleInput(strings.NewReader(""))))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	st, err := i.Run()
	if st != vm.Faulted {
		t.Fatalf("expected fault, got %v", st)
	}
	if _, ok := err.(*vm.IOError); !ok {
		t.Fatalf("expected IOError, got %v", err)
	}
	if errors.Cause(err) != io.EOF {
		t.Errorf("expected io.EOF cause, got %v", errors.Cause(err))
	}
}

func TestIOErrorInputExhausted(t *testing.T) {
	_, err := runFaulting(t, C{3, 0, 99})
	ioe, ok := err.(*vm.IOError)
	if !ok {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioe.Err == nil {
		t.Error("IOError with no underlying failure")
	}
}
