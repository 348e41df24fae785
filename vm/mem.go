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

// right moves the data pointer one cell to the right, growing the tape when
// the pointer moves past the last touched cell.
func (i *Instance) right() error {
	p := i.Ptr + 1
	if p == len(i.Tape) {
		if i.maxTape > 0 && p >= i.maxTape {
			return ErrTapeOverflow
		}
		// append amortizes growth; new cells are zero.
		i.Tape = append(i.Tape, 0)
	}
	i.Ptr = p
	return nil
}

// left moves the data pointer one cell to the left.
func (i *Instance) left() error {
	if i.Ptr == 0 {
		return ErrTapeUnderflow
	}
	i.Ptr--
	return nil
}
