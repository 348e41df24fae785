// This file is part of bfvm - https://github.com/db47h/bfvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package asm

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/db47h/bfvm/internal/vmi"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

// Malformed program errors.
var (
	ErrUnmatchedClose = errors.New("unmatched ']'")
	ErrUnmatchedOpen  = errors.New("unmatched '['")
)

// Error is the error type returned by Assemble. Pos is the position in the
// source of the offending instruction.
type Error struct {
	Pos scanner.Position
	Err error
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Err.Error()
}

// Cause returns the underlying error. This makes Error usable with
// errors.Cause from github.com/pkg/errors.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// Assemble loads the program source read from the supplied io.Reader and
// returns the resulting program and error if any.
//
// Any byte other than the eight instruction symbols is a comment and is
// dropped. Loop instructions are matched by nesting and the resulting jump
// table is stored in the returned program.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, is an *Error whose cause is
// ErrUnmatchedClose, ErrUnmatchedOpen or the error returned by r. No program
// is returned in that case.
func Assemble(name string, r io.Reader) (*vm.Program, error) {
	return newParser(name).Parse(r)
}

// AssembleString is like Assemble, but reads the source from a string.
func AssembleString(name string, src string) (*vm.Program, error) {
	return Assemble(name, strings.NewReader(src))
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given program to the specified io.Writer and returns the position of the
// next instruction and any write error. Loop instructions are followed by the
// position of their matching instruction.
func Disassemble(p *vm.Program, pc int, w io.Writer) (next int, err error) {
	ew := vmi.NewErrWriter(w)
	ew.Item = pc

	if pc < 0 || pc >= p.Len() {
		ew.WriteString("???")
		return pc + 1, ew.Err
	}
	op := p.Code[pc]
	ew.WriteString(op.String())
	ew.WriteByte(' ')
	ew.WriteString(op.Name())
	if op.IsJump() {
		ew.WriteByte(' ')
		ew.WriteInt(p.Match(pc))
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of the whole program to the specified
// io.Writer, one instruction per line. It will return any write error.
func DisassembleAll(p *vm.Program, w io.Writer) error {
	ew := vmi.NewErrWriter(w)
	for pc := 0; pc < p.Len(); {
		ew.Item = pc
		fmt.Fprintf(ew, "% 10d\t", pc)
		pc, _ = Disassemble(p, pc, ew)
		ew.WriteByte('\n')
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
