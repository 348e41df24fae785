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

package vm

import (
	"github.com/pkg/errors"
)

// Program is a loaded instruction stream together with its jump table.
//
// Jumps has the same length as Code. For each OpOpen or OpClose at index pc,
// Jumps[pc] is the index of the matching bracket, so that
// Jumps[Jumps[pc]] == pc. Entries for other opcodes are -1.
//
// A Program must not be modified once it has been handed to New.
type Program struct {
	Code  []Opcode
	Jumps []int
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.Code)
}

// Match returns the index of the bracket matching the one at pc, or -1 if the
// instruction at pc is not a bracket.
func (p *Program) Match(pc int) int {
	if pc < 0 || pc >= len(p.Jumps) {
		return -1
	}
	return p.Jumps[pc]
}

// String returns the program source with all comments stripped.
func (p *Program) String() string {
	b := make([]byte, len(p.Code))
	for i, op := range p.Code {
		b[i] = byte(op)
	}
	return string(b)
}

// check verifies that the jump table is consistent with the code. Programs
// built by the asm package always pass; this guards hand-built ones.
func (p *Program) check() error {
	if len(p.Jumps) != len(p.Code) {
		return errors.Errorf("jump table size %d does not match code size %d", len(p.Jumps), len(p.Code))
	}
	for pc, op := range p.Code {
		j := p.Jumps[pc]
		switch op {
		case OpOpen, OpClose:
			if j < 0 || j >= len(p.Code) || p.Jumps[j] != pc {
				return errors.Errorf("bad jump target %d for %v @pc=%d", j, op, pc)
			}
			if op == OpOpen && (j <= pc || p.Code[j] != OpClose) ||
				op == OpClose && (j >= pc || p.Code[j] != OpOpen) {
				return errors.Errorf("mismatched jump target %d for %v @pc=%d", j, op, pc)
			}
		default:
			if !op.Valid() {
				return errors.Errorf("invalid opcode %d @pc=%d", op, pc)
			}
		}
	}
	return nil
}
