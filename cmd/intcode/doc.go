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

// The intcode command line tool runs Intcode programs with the package
// github.com/dcoles/intcode/vm.
//
// A program file is a single line of comma-separated integers. By default
// the program talks numbers: each in instruction reads one line from stdin
// and each out instruction prints one value. With -ascii the program talks
// text instead: input is fed one character code per in instruction (lines
// starting with # are comments) and output values in the ASCII range are
// printed as characters. On a POSIX terminal, -ascii switches the terminal
// to raw IO and feeds key presses straight to the program; -noraw keeps
// line-oriented input instead.
//
// Usage:
//
//	intcode [flags] program
//
//	-ascii
//		  use the ASCII text adapter instead of the numeric console
//	-debug
//		  enable debug diagnostics on errors
//	-dump
//		  dump registers and memory upon exit
//	-mem int
//		  memory size in cells (default 32768)
//	-noraw
//		  disable raw terminal IO
//	-trace
//		  disassemble every instruction to stderr as it executes
package main
