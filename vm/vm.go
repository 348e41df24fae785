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
	"io"

	"github.com/db47h/bfvm/internal/vmi"
	"github.com/pkg/errors"
)

const defaultTapeSize = 30000

// Runtime errors. Errors returned by Run wrap these and can be tested with
// errors.Cause.
var (
	ErrTapeUnderflow = errors.New("tape underflow")
	ErrTapeOverflow  = errors.New("tape overflow")
)

// Instance represents a VM instance running a single Program.
type Instance struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	Ptr      int    // Data pointer
	Tape     []byte // Tape cells touched so far
	prog     *Program
	maxTape  int
	eof      EOFPolicy
	input    io.ByteReader
	output   io.ByteWriter
	insCount int64
}

// Option interface
type Option func(*Instance) error

// Input sets the input stream read by the OpIn instruction. If r does not
// implement io.ByteReader, it will be read one byte at a time, without any
// read-ahead. A nil reader behaves as an empty stream.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.input = newByteReader(r); return nil }
}

// Output sets the output stream written to by the OpOut instruction. If w
// implements Flush() error, it will be flushed before any input is read and
// when Run returns. A nil writer discards all output.
func Output(w io.Writer) Option {
	return func(i *Instance) error { i.output = newByteWriter(w); return nil }
}

// EOF sets the policy applied by OpIn when the input stream is exhausted. The
// default is EOFUnchanged.
func EOF(policy EOFPolicy) Option {
	return func(i *Instance) error {
		switch policy {
		case EOFUnchanged, EOFZero, EOFMinusOne:
			i.eof = policy
			return nil
		}
		return errors.Errorf("unknown EOF policy %d", policy)
	}
}

// TapeSize sets the initial capacity of the tape. The tape still grows past
// that size as needed. The default is 30000 cells.
func TapeSize(size int) Option {
	return func(i *Instance) error {
		if size < 1 {
			return errors.Errorf("invalid tape size %d", size)
		}
		t := make([]byte, len(i.Tape), size)
		copy(t, i.Tape)
		i.Tape = t
		return nil
	}
}

// MaxTapeSize limits the number of cells the tape can grow to. Moving the data
// pointer past the limit aborts the run with ErrTapeOverflow. The default, 0,
// means unbounded.
func MaxTapeSize(size int) Option {
	return func(i *Instance) error {
		if size < 0 {
			return errors.Errorf("invalid max tape size %d", size)
		}
		i.maxTape = size
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance for the given program.
//
// The program is only read by the VM and may be shared between instances. The
// tape starts with a single zero cell, the data pointer and PC at 0.
//
// Options will be set by calling SetOptions.
func New(p *Program, opts ...Option) (*Instance, error) {
	if p == nil {
		return nil, errors.New("nil program")
	}
	if err := p.check(); err != nil {
		return nil, errors.Wrap(err, "invalid program")
	}
	i := &Instance{
		Tape: make([]byte, 1, defaultTapeSize),
		prog: p,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.input == nil {
		i.input = newByteReader(nil)
	}
	if i.output == nil {
		i.output = newByteWriter(nil)
	}
	return i, nil
}

// Program returns the program run by the instance.
func (i *Instance) Program() *Program {
	return i.prog
}

// Cell returns the value of the cell under the data pointer.
func (i *Instance) Cell() byte {
	return i.Tape[i.Ptr]
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump dumps the data pointer and tape to the specified io.Writer. The data
// pointer comes first, prefixed with '\x1C', then the tape cells, prefixed with
// '\x1D' and separated by spaces.
func (i *Instance) Dump(w io.Writer) error {
	ew := vmi.NewErrWriter(w)
	ew.Item = i.Ptr
	ew.WriteByte('\x1C')
	ew.WriteInt(i.Ptr)
	ew.WriteByte('\x1D')
	for k, c := range i.Tape {
		ew.Item = k
		if k > 0 {
			ew.WriteByte(' ')
		}
		ew.WriteInt(int(c))
	}
	return ew.Err
}
