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
	"io"
	"os"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location. Instructions and data
// share this representation.
type Cell int64

// DefaultMemSize is the default memory capacity of an Instance, in Cells.
const DefaultMemSize = 1 << 15 // 32Ki

// Status is the execution state of an Instance as reported by Step and Run.
type Status int

// Machine states. A fault is reported as a non-nil error alongside Faulted.
const (
	Running Status = iota
	Suspended
	Halted
	Faulted
)

var statusNames = [...]string{"running", "suspended", "halted", "faulted"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Context carries per-invocation state handed to an I/O handler. Each in or
// out instruction receives a fresh Context; nothing in it survives the
// handler's return except the suspend request, which the machine consumes at
// the end of the same step.
type Context struct {
	suspend bool
}

// Suspend asks the machine to pause once the current instruction has
// committed. Run will return Suspended; a later Run or Step call resumes
// with the next instruction.
func (c *Context) Suspend() {
	c.suspend = true
}

// InHandler is the function prototype for input handlers. It is invoked
// exactly once per in opcode and must return the Cell to store.
type InHandler func(c *Context) (Cell, error)

// OutHandler is the function prototype for output handlers. It is invoked
// exactly once per out opcode with the Cell the program wrote.
type OutHandler func(c *Context, v Cell) error

// Instance represents an Intcode VM instance.
type Instance struct {
	PC  int  // Instruction Pointer
	RB  Cell // Relative Base
	Mem []Cell

	inst     Instruction // currently decoded instruction
	inH      InHandler
	outH     OutHandler
	suspend  bool
	trace    io.Writer
	insCount int64
}

// Option interface
type Option func(*Instance) error

// MemSize sets the memory capacity, in Cells. Memory never grows or shrinks
// during a run; access past the capacity is a fault. The default is
// DefaultMemSize.
func MemSize(size int) Option {
	return func(i *Instance) error {
		if size < 1 {
			return errors.Errorf("invalid memory size %d", size)
		}
		i.Mem = make([]Cell, size)
		return nil
	}
}

// Input sets the input handler.
func Input(h InHandler) Option {
	return func(i *Instance) error { i.inH = h; return nil }
}

// Output sets the output handler.
func Output(h OutHandler) Option {
	return func(i *Instance) error { i.outH = h; return nil }
}

// Trace makes the machine write a disassembly of every instruction to w as
// it executes.
func Trace(w io.Writer) Option {
	return func(i *Instance) error { i.trace = w; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance and loads the given program.
//
// Without options the machine gets DefaultMemSize cells of memory and
// console handlers on stdin/stdout. Options will be set by calling
// SetOptions.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem:  make([]Cell, DefaultMemSize),
		inH:  ConsoleInput(os.Stdin),
		outH: ConsoleOutput(os.Stdout),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if err := i.Load(p); err != nil {
		return nil, err
	}
	return i, nil
}

// Load resets the machine and copies p into memory: the instruction pointer
// and relative base return to zero and every cell beyond the program is
// zero-filled. The same Instance may load successive programs.
func (i *Instance) Load(p Program) error {
	if len(p) > len(i.Mem) {
		return errors.Errorf("program length %d exceeds memory size %d", len(p), len(i.Mem))
	}
	i.PC = 0
	i.RB = 0
	i.suspend = false
	i.insCount = 0
	for n := range i.Mem {
		i.Mem[n] = 0
	}
	copy(i.Mem, p)
	return nil
}

// SetInput replaces the input handler. Safe between runs or steps on a live
// machine.
func (i *Instance) SetInput(h InHandler) {
	i.inH = h
}

// SetOutput replaces the output handler.
func (i *Instance) SetOutput(h OutHandler) {
	i.outH = h
}

// Halted reports whether the next instruction is halt.
func (i *Instance) Halted() bool {
	if i.PC < 0 || i.PC >= len(i.Mem) {
		return false
	}
	in, err := Decode(i.Mem[i.PC])
	return err == nil && in.Op == OpHalt
}

// InstructionCount returns the number of instructions executed since the
// last program load.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
