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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Program is an ordered, immutable instruction/data image ready to load
// into an Instance.
type Program []Cell

// ParseProgram parses a program from its textual form: a single line of
// comma-separated signed base-10 integers, optionally surrounded by
// whitespace.
func ParseProgram(s string) (Program, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	p := make(Program, len(fields))
	for n, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad value %q at position %d", f, n)
		}
		p[n] = Cell(v)
	}
	return p, nil
}

// ReadProgram parses a program read from r.
func ReadProgram(r io.Reader) (Program, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return ParseProgram(string(b))
}

// LoadFile reads a program from the named file.
func LoadFile(fileName string) (Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	p, err := ReadProgram(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return p, nil
}
