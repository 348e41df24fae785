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

// Package vmi - or vm-internal with some commonly used stuff.
package vmi

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ErrWriter is a simple wrapper to track io errors in listings and dumps.
// Once a write fails, all further writes are no-ops returning the same error.
//
// Item is the index of the instruction or tape cell being written. Callers
// update it as they go and it is reported in the wrapped error.
type ErrWriter struct {
	w    io.Writer
	buf  []byte
	Item int
	Err  error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrapf(err, "write failed @%d", w.Item)
	}
	return n, w.Err
}

// WriteByte writes a single byte.
func (w *ErrWriter) WriteByte(c byte) error {
	w.buf = append(w.buf[:0], c)
	_, err := w.Write(w.buf)
	return err
}

// WriteString writes s.
func (w *ErrWriter) WriteString(s string) (int, error) {
	w.buf = append(w.buf[:0], s...)
	return w.Write(w.buf)
}

// WriteInt writes the decimal representation of v.
func (w *ErrWriter) WriteInt(v int) error {
	w.buf = strconv.AppendInt(w.buf[:0], int64(v), 10)
	_, err := w.Write(w.buf)
	return err
}

// NewErrWriter returns a new ErrWriter. If w is already an *ErrWriter, it is
// returned as is.
func NewErrWriter(w io.Writer) *ErrWriter {
	if ew, ok := w.(*ErrWriter); ok {
		return ew
	}
	return &ErrWriter{w: w, buf: make([]byte, 0, 16)}
}
