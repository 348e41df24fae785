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

import "github.com/pkg/errors"

// Run starts execution of the VM and returns once the PC moves past the last
// instruction.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error and the tape is left as it was just before that instruction. Errors
// wrap one of ErrTapeUnderflow, ErrTapeOverflow, or the I/O error returned by
// the input or output stream; use errors.Cause to get at them. Reaching the end
// of the input is not an error, see EOF.
//
// Output is flushed before returning, whatever the outcome.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d/%d, ptr=%d/%d", i.PC, len(i.prog.Code), i.Ptr, len(i.Tape))
			default:
				panic(e)
			}
		}
		if ferr := i.flush(); ferr != nil && err == nil {
			err = errors.Wrap(ferr, "output flush failed")
		}
	}()
	code, jumps := i.prog.Code, i.prog.Jumps
	i.insCount = 0
	for i.PC < len(code) {
		switch code[i.PC] {
		case OpRight:
			if err = i.right(); err != nil {
				return errors.Wrapf(err, "@pc=%d, ptr=%d", i.PC, i.Ptr)
			}
			i.PC++
		case OpLeft:
			if err = i.left(); err != nil {
				return errors.Wrapf(err, "@pc=%d, ptr=%d", i.PC, i.Ptr)
			}
			i.PC++
		case OpInc:
			i.Tape[i.Ptr]++
			i.PC++
		case OpDec:
			i.Tape[i.Ptr]--
			i.PC++
		case OpOut:
			if err = i.output.WriteByte(i.Tape[i.Ptr]); err != nil {
				return errors.Wrapf(err, "output failed @pc=%d", i.PC)
			}
			i.PC++
		case OpIn:
			if err = i.in(); err != nil {
				return errors.Wrapf(err, "@pc=%d", i.PC)
			}
			i.PC++
		case OpOpen:
			if i.Tape[i.Ptr] == 0 {
				i.PC = jumps[i.PC] + 1
			} else {
				i.PC++
			}
		case OpClose:
			if i.Tape[i.Ptr] != 0 {
				i.PC = jumps[i.PC] + 1
			} else {
				i.PC++
			}
		default:
			return errors.Errorf("invalid opcode %d @pc=%d", code[i.PC], i.PC)
		}
		i.insCount++
	}
	return nil
}
