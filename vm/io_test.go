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

package vm_test

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEOF(t *testing.T) {
	var tests = [...]struct {
		policy vm.EOFPolicy
		want   byte
	}{
		{vm.EOFUnchanged, 42},
		{vm.EOFZero, 0},
		{vm.EOFMinusOne, 255},
	}
	code := strings.Repeat("+", 42) + ",,"
	for _, test := range tests {
		i := setup(t, code, vm.Input(strings.NewReader("")), vm.EOF(test.policy))
		require.NoError(t, i.Run(), test.policy.String())
		assert.Equal(t, test.want, i.Cell(), test.policy.String())
	}

	// default policy
	i := setup(t, code)
	require.NoError(t, i.Run())
	assert.Equal(t, byte(42), i.Cell())

	// a cat program terminates on EOF with the zero policy
	var out bytes.Buffer
	i = setup(t, ",[.,]", vm.Input(strings.NewReader("foo")), vm.Output(&out), vm.EOF(vm.EOFZero))
	require.NoError(t, i.Run())
	assert.Equal(t, "foo", out.String())
}

func TestParseEOFPolicy(t *testing.T) {
	for _, p := range []vm.EOFPolicy{vm.EOFUnchanged, vm.EOFZero, vm.EOFMinusOne} {
		got, err := vm.ParseEOFPolicy(p.String())
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := vm.ParseEOFPolicy("bogus")
	assert.Error(t, err)
	assert.Equal(t, "unknown", vm.EOFPolicy(-1).String())
}

// readerOnly hides any other method than Read.
type readerOnly struct {
	io.Reader
}

func TestInput_noReadAhead(t *testing.T) {
	r := strings.NewReader("abcdef")
	var out bytes.Buffer
	i := setup(t, ",.,.", vm.Input(readerOnly{r}), vm.Output(&out))
	require.NoError(t, i.Run())
	assert.Equal(t, "ab", out.String())
	assert.Equal(t, 4, r.Len())
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestInput_error(t *testing.T) {
	i := setup(t, "+,+", vm.Input(failReader{}))
	err := i.Run()
	assert.Equal(t, io.ErrClosedPipe, errors.Cause(err))
	assert.Equal(t, 1, i.PC)
	assert.Equal(t, byte(1), i.Cell())
}

type failWriter struct {
	n int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, io.ErrClosedPipe
	}
	w.n--
	return len(p), nil
}

func TestOutput_error(t *testing.T) {
	i := setup(t, "+.+.+.", vm.Output(&failWriter{n: 1}))
	err := i.Run()
	assert.Equal(t, io.ErrClosedPipe, errors.Cause(err))
	assert.Equal(t, 3, i.PC)
	assert.Equal(t, byte(2), i.Cell())
}

// checkReader checks the output written so far every time a byte is read.
type checkReader struct {
	t    *testing.T
	out  *bytes.Buffer
	want []string
}

func (r *checkReader) Read(p []byte) (int, error) {
	if len(r.want) == 0 {
		return 0, io.EOF
	}
	assert.Equal(r.t, r.want[0], r.out.String())
	r.want = r.want[1:]
	p[0] = 'x'
	return 1, nil
}

func TestOutput_incremental(t *testing.T) {
	var out bytes.Buffer
	r := &checkReader{t, &out, []string{"A", "Ax"}}
	i := setup(t, strings.Repeat("+", 65)+".,.,.", vm.Input(r), vm.Output(&out))
	require.NoError(t, i.Run())
	assert.Equal(t, "Axx", out.String())
	assert.Empty(t, r.want)
}

func TestOutput_flush(t *testing.T) {
	// output is buffered: it must be flushed before reading and on exit.
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	r := &checkReader{t, &out, []string{"A"}}
	i := setup(t, strings.Repeat("+", 65)+".,.", vm.Input(r), vm.Output(w))
	require.NoError(t, i.Run())
	assert.Equal(t, "Ax", out.String())

	// also on error
	out.Reset()
	w = bufio.NewWriter(&out)
	i = setup(t, "+++.<", vm.Output(w))
	assert.Equal(t, vm.ErrTapeUnderflow, errors.Cause(i.Run()))
	assert.Equal(t, "\x03", out.String())
}

type writerOnly struct {
	w io.Writer
}

func (w writerOnly) Write(p []byte) (int, error) { return w.w.Write(p) }

func TestOutput_wrapped(t *testing.T) {
	var out bytes.Buffer
	i := setup(t, helloWorld, vm.Output(writerOnly{&out}))
	require.NoError(t, i.Run())
	assert.Equal(t, "Hello World!\n", out.String())

	// nil output discards
	i = setup(t, helloWorld, vm.Output(nil), vm.Input(nil))
	require.NoError(t, i.Run())
}
