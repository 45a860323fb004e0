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

import "fmt"

// IllegalInstructionError reports an instruction word that cannot execute:
// an unknown opcode, a bad addressing mode digit, a store through an
// immediate-mode parameter or a negative jump target. The value is the raw
// instruction word.
type IllegalInstructionError Cell

func (e IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction %d", Cell(e))
}

// SegmentationFaultError reports a memory access outside machine memory:
// an instruction fetch, a parameter fetch or a resolved operand address.
// The value is the offending address.
type SegmentationFaultError int

func (e SegmentationFaultError) Error() string {
	return fmt.Sprintf("segmentation fault at %08x", int(e))
}

// IOError reports a failed input or output handler.
type IOError struct {
	Err error // the handler's failure
}

func (e *IOError) Error() string {
	return "I/O error: " + e.Err.Error()
}

// Cause returns the handler's failure, letting errors.Cause reach sentinel
// values such as io.EOF through the fault.
func (e *IOError) Cause() error { return e.Err }

func (e *IOError) Unwrap() error { return e.Err }
