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

// Opcode is the operation selector decoded from the low two decimal digits
// of an instruction word.
type Opcode Cell

// Intcode Virtual Machine Opcodes.
const (
	OpAdd      Opcode = 1  // [p3] = [p1] + [p2]
	OpMul      Opcode = 2  // [p3] = [p1] * [p2]
	OpInput    Opcode = 3  // [p1] = in()
	OpOutput   Opcode = 4  // out([p1])
	OpJmpTrue  Opcode = 5  // if [p1] != 0 { pc = [p2] }
	OpJmpFalse Opcode = 6  // if [p1] == 0 { pc = [p2] }
	OpLessThan Opcode = 7  // [p3] = [p1] < [p2]
	OpEqual    Opcode = 8  // [p3] = [p1] == [p2]
	OpRelBase  Opcode = 9  // rb += [p1]
	OpHalt     Opcode = 99 // ...but don't catch fire
)

// Parameter addressing modes.
const (
	ModePosition  Cell = 0 // operand is an address
	ModeImmediate Cell = 1 // operand is the value itself
	ModeRelative  Cell = 2 // operand is an offset from the relative base
)

var arity = map[Opcode]int{
	OpAdd:      3,
	OpMul:      3,
	OpInput:    1,
	OpOutput:   1,
	OpJmpTrue:  2,
	OpJmpFalse: 2,
	OpLessThan: 3,
	OpEqual:    3,
	OpRelBase:  1,
	OpHalt:     0,
}

var mnemonics = map[Opcode]string{
	OpAdd:      "add",
	OpMul:      "mul",
	OpInput:    "in",
	OpOutput:   "out",
	OpJmpTrue:  "jnz",
	OpJmpFalse: "jz",
	OpLessThan: "lt",
	OpEqual:    "eq",
	OpRelBase:  "arb",
	OpHalt:     "halt",
}

// Arity returns the number of parameters the opcode declares.
func (op Opcode) Arity() int {
	return arity[op]
}

func (op Opcode) String() string {
	if s, ok := mnemonics[op]; ok {
		return s
	}
	return "???"
}

// Instruction is a decoded instruction word: an opcode plus its
// per-parameter addressing mode digits.
type Instruction struct {
	Op    Opcode
	modes Cell
}

// Decode splits a raw memory word into an opcode and addressing mode vector.
// It fails with IllegalInstructionError for an unknown opcode. Decoding is
// pure and can be re-derived from a raw word at any time.
func Decode(w Cell) (Instruction, error) {
	in := Instruction{Op: Opcode(w % 100), modes: w / 100}
	if _, ok := arity[in.Op]; !ok {
		return Instruction{}, IllegalInstructionError(w)
	}
	return in, nil
}

// Mode returns the addressing mode digit for parameter p (1-based). Digits
// the word does not spell out are position mode.
func (in Instruction) Mode(p int) Cell {
	m := in.modes
	for ; p > 1; p-- {
		m /= 10
	}
	return m % 10
}

// Word re-encodes the instruction as a raw memory word.
func (in Instruction) Word() Cell {
	return in.modes*100 + Cell(in.Op)
}
