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

package bf

import (
	"io"

	"github.com/db47h/bfvm/vm"
	"github.com/kr/pretty"
)

// window is the number of cells on each side of the data pointer included in
// a State.
const window = 8

// State is a snapshot of a VM instance, suitable for diagnostics.
type State struct {
	PC           int
	Instruction  string
	Ptr          int
	Cell         byte
	TapeLen      int
	WindowStart  int
	Window       []byte
	Instructions int64
}

// Snapshot returns the current state of the VM instance. Only the cells close
// to the data pointer are copied.
func Snapshot(i *vm.Instance) State {
	s := State{
		PC:           i.PC,
		Instruction:  "<end>",
		Ptr:          i.Ptr,
		TapeLen:      len(i.Tape),
		Instructions: i.InstructionCount(),
	}
	if p := i.Program(); i.PC >= 0 && i.PC < p.Len() {
		s.Instruction = p.Code[i.PC].Name()
	}
	if i.Ptr >= 0 && i.Ptr < len(i.Tape) {
		s.Cell = i.Tape[i.Ptr]
		lo, hi := i.Ptr-window, i.Ptr+window+1
		if lo < 0 {
			lo = 0
		}
		if hi > len(i.Tape) {
			hi = len(i.Tape)
		}
		s.WindowStart = lo
		s.Window = append([]byte(nil), i.Tape[lo:hi]...)
	}
	return s
}

// DumpState pretty prints a snapshot of the VM instance to w.
func DumpState(i *vm.Instance, w io.Writer) error {
	_, err := pretty.Fprintf(w, "%# v\n", Snapshot(i))
	return err
}
