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

package main

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func runArgs(t *testing.T, input string, args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(input), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	mul := writeFile(t, "mul.b", "8 x 8 = 64\n++++++++[>++++++++<-]>.")
	cat := writeFile(t, "cat.b", ",[.,]")
	bad := writeFile(t, "bad.b", "+[")
	under := writeFile(t, "under.b", "+<")
	config := writeFile(t, "dialect.yaml", "eof: zero\n")

	var tests = [...]struct {
		name   string
		input  string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{"ok", "", []string{mul}, exitOK, "@", ""},
		{"no args", "", nil, exitUsage, "", "Usage"},
		{"two args", "", []string{mul, cat}, exitUsage, "", "Usage"},
		{"bad flag", "", []string{"-foo", mul}, exitUsage, "", "flag provided but not defined"},
		{"bad eof", "", []string{"-eof", "never", mul}, exitUsage, "", "unknown EOF policy"},
		{"missing", "", []string{filepath.Join(t.TempDir(), "nope.b")}, exitFailure, "", "open failed"},
		{"malformed", "", []string{bad}, exitMalformed, "", "bad.b:1:2: unmatched '['"},
		{"underflow", "", []string{under}, exitFailure, "", "tape underflow"},
		{"eof flag", "hi", []string{"-eof", "zero", cat}, exitOK, "hi", ""},
		{"eof config", "hi", []string{"-config", config, cat}, exitOK, "hi", ""},
		{"missing config", "", []string{"-config", filepath.Join(t.TempDir(), "nope.yaml"), cat}, exitUsage, "", "LoadConfig"},
		{"maxtape", "", []string{"-maxtape", "1", mul}, exitFailure, "", "tape overflow"},
		{"dump", "", []string{"-dump", mul}, exitOK, "@\x1C1\x1D0 64", ""},
		{"list", "", []string{"-list", cat}, exitOK, "         0\t, in\n         1\t[ open 4\n         2\t. out\n         3\t, in\n         4\t] close 1\n", ""},
		{"debug", "", []string{"-debug", under}, exitFailure, "", "bf.State{"},
	}

	for _, test := range tests {
		code, stdout, stderr := runArgs(t, test.input, test.args...)
		assert.Equal(t, test.code, code, test.name)
		assert.Equal(t, test.stdout, stdout, test.name)
		if test.stderr == "" {
			assert.Empty(t, stderr, test.name)
		} else {
			assert.Contains(t, stderr, test.stderr, test.name)
		}
	}
}

func TestRun_configOverride(t *testing.T) {
	// the flag wins over the file
	eof := writeFile(t, "eof.b", "+,.")
	config := writeFile(t, "dialect.yaml", "eof: zero\nmax_tape: 10\n")
	code, stdout, stderr := runArgs(t, "", "-config", config, "-eof", "minus-one", eof)
	assert.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "\xff", stdout)

	code, stdout, _ = runArgs(t, "", "-config", config, eof)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "\x00", stdout)

	code, stdout, _ = runArgs(t, "", eof)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "\x01", stdout)
}

func TestToJournalKey(t *testing.T) {
	assert.Equal(t, "RUN_INSTRUCTIONS", toJournalKey("run.instructions"))
	assert.Equal(t, "ERROR", toJournalKey("error"))
}

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

func TestRun_interrupted(t *testing.T) {
	// prints "A" then loops forever. The VM goroutines are left spinning until
	// the test binary exits.
	spin := writeFile(t, "spin.b", strings.Repeat("+", 65)+".[]")

	notified := make(chan chan<- os.Signal, 1)
	notifySignals = func(c chan<- os.Signal, _ ...os.Signal) { notified <- c }
	defer func() {
		notifySignals = signal.Notify
		flushInterval = 50 * time.Millisecond
	}()

	var tests = [...]struct {
		name     string
		interval time.Duration
	}{
		{"periodic flush", time.Millisecond},
		{"flush on signal", time.Hour},
	}

	for _, test := range tests {
		flushInterval = test.interval
		var out, errOut syncBuffer
		done := make(chan int)
		go func() {
			done <- run([]string{spin}, strings.NewReader(""), &out, &errOut)
		}()
		sig := <-notified
		if test.interval < time.Hour {
			assert.Eventually(t, func() bool { return out.String() == "A" },
				time.Second, time.Millisecond, test.name)
		} else {
			time.Sleep(100 * time.Millisecond)
			assert.Empty(t, out.String(), test.name)
		}
		sig <- os.Interrupt
		assert.Equal(t, exitInterrupted, <-done, test.name)
		assert.Equal(t, "A", out.String(), test.name)
		assert.Contains(t, errOut.String(), "msg=interrupted", test.name)
	}
}

func TestSetupIO(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r, tearDown := setupIO(strings.NewReader("x"), false, logger)
	assert.IsType(t, (*bufio.Reader)(nil), r)
	assert.Nil(t, tearDown)

	// not a terminal: raw mode fails, input is buffered
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	defer pr.Close()
	defer pw.Close()
	r, tearDown = setupIO(pr, false, logger)
	assert.IsType(t, (*bufio.Reader)(nil), r)
	assert.Nil(t, tearDown)

	r, tearDown = setupIO(pr, true, logger)
	assert.IsType(t, (*bufio.Reader)(nil), r)
	assert.Nil(t, tearDown)
}
