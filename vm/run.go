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

// Run steps the machine until it halts, faults or an I/O handler requests
// suspension.
//
// On Halted the program ran to completion; running again is a no-op and
// returns Halted. On Suspended no state was lost: calling Run again
// continues with the instruction after the one that suspended. On a fault
// the returned error is one of IllegalInstructionError,
// SegmentationFaultError or IOError, memory and pointers are exactly as
// they were when the fault was detected, and resuming is undefined.
func (i *Instance) Run() (Status, error) {
	for {
		st, err := i.Step()
		if st != Running {
			return st, err
		}
	}
}

// Step executes a single instruction.
func (i *Instance) Step() (Status, error) {
	if i.PC < 0 || i.PC >= len(i.Mem) {
		return Faulted, SegmentationFaultError(i.PC)
	}
	in, err := Decode(i.Mem[i.PC])
	if err != nil {
		return Faulted, err
	}
	i.inst = in
	if i.trace != nil {
		i.Disassemble(i.trace)
	}

	// Every declared parameter cell must exist before anything executes, so
	// a partially resolvable instruction has no effect.
	for p := 1; p <= in.Op.Arity(); p++ {
		if i.PC+p >= len(i.Mem) {
			return Faulted, SegmentationFaultError(i.PC + p)
		}
	}

	switch op := in.Op; op {
	case OpAdd, OpMul, OpLessThan, OpEqual:
		a, err := i.load(1)
		if err != nil {
			return Faulted, err
		}
		b, err := i.load(2)
		if err != nil {
			return Faulted, err
		}
		dst, err := i.storeAddr(3)
		if err != nil {
			return Faulted, err
		}
		switch op {
		case OpAdd:
			i.Mem[dst] = a + b
		case OpMul:
			i.Mem[dst] = a * b
		case OpLessThan:
			i.Mem[dst] = btoc(a < b)
		case OpEqual:
			i.Mem[dst] = btoc(a == b)
		}
	case OpInput:
		// Resolve the slot first: a store-side fault must not consume input.
		dst, err := i.storeAddr(1)
		if err != nil {
			return Faulted, err
		}
		var c Context
		v, err := i.inH(&c)
		if err != nil {
			return Faulted, &IOError{Err: err}
		}
		i.Mem[dst] = v
		i.suspend = c.suspend
	case OpOutput:
		v, err := i.load(1)
		if err != nil {
			return Faulted, err
		}
		var c Context
		if err := i.outH(&c, v); err != nil {
			return Faulted, &IOError{Err: err}
		}
		i.suspend = c.suspend
	case OpJmpTrue, OpJmpFalse:
		v, err := i.load(1)
		if err != nil {
			return Faulted, err
		}
		t, err := i.load(2)
		if err != nil {
			return Faulted, err
		}
		if (v != 0) == (op == OpJmpTrue) {
			if t < 0 {
				return Faulted, IllegalInstructionError(i.Mem[i.PC])
			}
			i.PC = int(t)
			i.insCount++
			return i.commit()
		}
	case OpRelBase:
		v, err := i.load(1)
		if err != nil {
			return Faulted, err
		}
		i.RB += v
	case OpHalt:
		return Halted, nil
	}
	i.PC += 1 + in.Op.Arity()
	i.insCount++
	return i.commit()
}

// commit finishes a step, honoring a suspension requested by this step's
// handler. The flag never survives the step that set it.
func (i *Instance) commit() (Status, error) {
	if i.suspend {
		i.suspend = false
		return Suspended, nil
	}
	return Running, nil
}

// load resolves parameter p of the current instruction and returns its
// value.
func (i *Instance) load(p int) (Cell, error) {
	v := i.Mem[i.PC+p]
	switch i.inst.Mode(p) {
	case ModePosition:
		return i.fetch(int(v))
	case ModeImmediate:
		return v, nil
	case ModeRelative:
		return i.fetch(int(i.RB + v))
	}
	return 0, IllegalInstructionError(i.Mem[i.PC])
}

// storeAddr resolves parameter p of the current instruction to a writable
// memory index. Immediate mode never names a slot.
func (i *Instance) storeAddr(p int) (int, error) {
	v := i.Mem[i.PC+p]
	var addr int
	switch i.inst.Mode(p) {
	case ModePosition:
		addr = int(v)
	case ModeRelative:
		addr = int(i.RB + v)
	default:
		return 0, IllegalInstructionError(i.Mem[i.PC])
	}
	if addr < 0 || addr >= len(i.Mem) {
		return 0, SegmentationFaultError(addr)
	}
	return addr, nil
}

func (i *Instance) fetch(addr int) (Cell, error) {
	if addr < 0 || addr >= len(i.Mem) {
		return 0, SegmentationFaultError(addr)
	}
	return i.Mem[addr], nil
}

func btoc(b bool) Cell {
	if b {
		return 1
	}
	return 0
}
