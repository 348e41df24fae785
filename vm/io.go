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

	"github.com/pkg/errors"
)

// EOFPolicy selects what OpIn does to the current cell once the input stream
// is exhausted.
type EOFPolicy int

// EOF policies.
const (
	EOFUnchanged EOFPolicy = iota // leave the cell as is
	EOFZero                       // set the cell to 0
	EOFMinusOne                   // set the cell to 255
)

var eofPolicies = [...]string{
	"unchanged",
	"zero",
	"minus-one",
}

func (p EOFPolicy) String() string {
	if p < 0 || int(p) >= len(eofPolicies) {
		return "unknown"
	}
	return eofPolicies[p]
}

// ParseEOFPolicy returns the EOFPolicy named s. Valid names are "unchanged",
// "zero" and "minus-one".
func ParseEOFPolicy(s string) (EOFPolicy, error) {
	for i, n := range eofPolicies {
		if n == s {
			return EOFPolicy(i), nil
		}
	}
	return EOFUnchanged, errors.Errorf("unknown EOF policy %q", s)
}

type flusher interface {
	Flush() error
}

// byteReaderWrapper wraps a basic reader into an io.ByteReader. It reads one
// byte at a time so that no input is consumed past what the program asked
// for.
type byteReaderWrapper struct {
	io.Reader
}

func (r *byteReaderWrapper) ReadByte() (byte, error) {
	var b [1]byte
	for {
		n, err := r.Reader.Read(b[:])
		if n > 0 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

type eofReader struct{}

func (eofReader) ReadByte() (byte, error) { return 0, io.EOF }

func newByteReader(r io.Reader) io.ByteReader {
	switch rr := r.(type) {
	case nil:
		return eofReader{}
	case io.ByteReader:
		return rr
	default:
		return &byteReaderWrapper{r}
	}
}

type byteWriterWrapper struct {
	io.Writer
}

func (w *byteWriterWrapper) WriteByte(c byte) error {
	_, err := w.Writer.Write([]byte{c})
	return err
}

func (w *byteWriterWrapper) Flush() error {
	if f, ok := w.Writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

type discard struct{}

func (discard) WriteByte(byte) error { return nil }

// newByteWriter returns either w if it implements io.ByteWriter or wraps it up
// into a byteWriterWrapper
func newByteWriter(w io.Writer) io.ByteWriter {
	switch ww := w.(type) {
	case nil:
		return discard{}
	case io.ByteWriter:
		return ww
	default:
		return &byteWriterWrapper{w}
	}
}

func (i *Instance) flush() error {
	if f, ok := i.output.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func (i *Instance) in() error {
	if err := i.flush(); err != nil {
		return errors.Wrap(err, "output flush failed")
	}
	b, err := i.input.ReadByte()
	switch err {
	case nil:
		i.Tape[i.Ptr] = b
	case io.EOF:
		switch i.eof {
		case EOFZero:
			i.Tape[i.Ptr] = 0
		case EOFMinusOne:
			i.Tape[i.Ptr] = 0xff
		}
	default:
		return errors.Wrap(err, "input failed")
	}
	return nil
}
