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

// Opcode is a single VM instruction. Its value is the source symbol of the
// instruction.
type Opcode uint8

// VM Opcodes.
const (
	OpRight Opcode = '>' // move the data pointer right
	OpLeft  Opcode = '<' // move the data pointer left
	OpInc   Opcode = '+' // increment the current cell
	OpDec   Opcode = '-' // decrement the current cell
	OpOut   Opcode = '.' // write the current cell to the output
	OpIn    Opcode = ',' // read a byte from the input into the current cell
	OpOpen  Opcode = '[' // jump past the matching OpClose if the current cell is 0
	OpClose Opcode = ']' // jump back after the matching OpOpen if the current cell is not 0
)

var opcodes = [...]struct {
	op   Opcode
	name string
}{
	{OpRight, "right"},
	{OpLeft, "left"},
	{OpInc, "inc"},
	{OpDec, "dec"},
	{OpOut, "out"},
	{OpIn, "in"},
	{OpOpen, "open"},
	{OpClose, "close"},
}

var opcodeIndex [256]bool

func init() {
	for _, v := range opcodes {
		opcodeIndex[v.op] = true
	}
}

// Decode returns the Opcode for the given source byte. The boolean result is
// false if b is not an instruction symbol.
func Decode(b byte) (Opcode, bool) {
	return Opcode(b), opcodeIndex[b]
}

// Valid reports whether op is one of the eight VM opcodes.
func (op Opcode) Valid() bool {
	return opcodeIndex[op]
}

// Name returns the mnemonic of the opcode, or "???" for invalid opcodes.
func (op Opcode) Name() string {
	for _, v := range opcodes {
		if v.op == op {
			return v.name
		}
	}
	return "???"
}

func (op Opcode) String() string {
	if !op.Valid() {
		return "???"
	}
	return string(rune(op))
}

// IsJump reports whether op is a loop instruction.
func (op Opcode) IsJump() bool {
	return op == OpOpen || op == OpClose
}
