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

// Package vm implements an Intcode virtual machine.
//
// The machine executes a linear integer instruction set against a flat,
// fixed-size memory of Cells. Instructions and data share the same
// representation: the low two decimal digits of a word select the opcode and
// the remaining digits give one addressing-mode digit per parameter
// (position, immediate or relative).
//
// Programs communicate with the host through pluggable input and output
// handlers, invoked synchronously on the in and out opcodes. A handler may
// ask the machine to pause through its Context; Run then returns Suspended
// once the current instruction has committed, and a later Run call resumes
// with the next instruction. This is how a host interleaves several machine
// instances (for example wiring one machine's output into another's input
// queue) without any threading inside the machine itself.
//
// Execution stops on Halted, on Suspended, or on a fault. Faults are typed
// errors (IllegalInstructionError, SegmentationFaultError, IOError) and are
// detected before the faulting instruction mutates anything, so machine
// state after a fault is whatever it was before that instruction.
//
// Note that for performance reasons the instruction pointer is not
// incremented in a single place; each opcode deals with it as needed. This
// only matters if you hack on the dispatch loop itself.
package vm
