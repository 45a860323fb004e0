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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ConsoleInput returns an input handler that reads one line from r per in
// instruction and parses it as a Cell. The reader's EOF surfaces as the
// cause of the resulting IOError.
func ConsoleInput(r io.Reader) InHandler {
	br := bufio.NewReader(r)
	return func(_ *Context) (Cell, error) {
		line, err := br.ReadString('\n')
		if line == "" && err != nil {
			return 0, err
		}
		v, perr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if perr != nil {
			return 0, errors.Wrapf(perr, "bad input %q", strings.TrimSpace(line))
		}
		return Cell(v), nil
	}
}

// ConsoleOutput returns an output handler that writes each Cell on its own
// line.
func ConsoleOutput(w io.Writer) OutHandler {
	return func(_ *Context, v Cell) error {
		_, err := fmt.Fprintln(w, int64(v))
		return errors.Wrap(err, "write failed")
	}
}

// ASCIIAdapter converts between the machine's Cell stream and line-oriented
// text. Input text is fed to the program one code point per in instruction;
// lines starting with '#' are comments and are dropped. Output Cells in the
// 0-127 range are emitted as characters; anything else is reported on Warn
// without faulting the machine.
//
// The adapter owns its pending-character buffer. Bind it with
//
//	a := vm.NewASCIIAdapter(os.Stdin, os.Stdout)
//	i, err := vm.New(p, vm.Input(a.Input), vm.Output(a.Output))
type ASCIIAdapter struct {
	in      *bufio.Reader
	out     io.Writer
	Warn    io.Writer // destination for non-ASCII output reports
	pending []Cell
}

// NewASCIIAdapter returns an ASCIIAdapter reading text from r and writing
// characters to w. Warnings go to stderr unless Warn is replaced.
func NewASCIIAdapter(r io.Reader, w io.Writer) *ASCIIAdapter {
	return &ASCIIAdapter{in: bufio.NewReader(r), out: w, Warn: os.Stderr}
}

// Input dequeues one pending character code, reading further lines from the
// underlying reader as needed.
func (a *ASCIIAdapter) Input(_ *Context) (Cell, error) {
	for len(a.pending) == 0 {
		line, err := a.in.ReadString('\n')
		if line == "" && err != nil {
			return 0, errors.Wrap(err, "input exhausted")
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		for _, r := range line {
			a.pending = append(a.pending, Cell(r))
		}
	}
	v := a.pending[0]
	a.pending = a.pending[1:]
	return v, nil
}

// Output writes v as a character when it lies in the ASCII range.
func (a *ASCIIAdapter) Output(_ *Context, v Cell) error {
	if v < 0 || v > 0x7f {
		fmt.Fprintf(a.Warn, "WARN: Non-ASCII output: %d\n", int64(v))
		return nil
	}
	_, err := a.out.Write([]byte{byte(v)})
	return errors.Wrap(err, "write failed")
}

// Queue is a FIFO of Cells for wiring machines together: bind one machine's
// Output to it and another machine's Input, and have the host move between
// runs. The zero value is an empty queue.
type Queue struct {
	cells []Cell
}

// Push appends v to the queue.
func (q *Queue) Push(v Cell) {
	q.cells = append(q.cells, v)
}

// Pop removes and returns the oldest Cell. ok is false on an empty queue.
func (q *Queue) Pop() (v Cell, ok bool) {
	if len(q.cells) == 0 {
		return 0, false
	}
	v = q.cells[0]
	q.cells = q.cells[1:]
	return v, true
}

// Len returns the number of queued Cells.
func (q *Queue) Len() int {
	return len(q.cells)
}

// Input is an InHandler that pops from the queue. An empty queue is an I/O
// failure, not a block: hosts that want to refill the queue should suspend
// from the producing machine's Output instead.
func (q *Queue) Input(_ *Context) (Cell, error) {
	v, ok := q.Pop()
	if !ok {
		return 0, errors.New("input exhausted")
	}
	return v, nil
}

// Output is an OutHandler that pushes to the queue.
func (q *Queue) Output(_ *Context, v Cell) error {
	q.Push(v)
	return nil
}
