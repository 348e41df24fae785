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
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/db47h/bfvm/asm"
	"github.com/db47h/bfvm/lang/bf"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
	"gopkg.in/tomb.v2"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitMalformed   = 3
	exitInterrupted = 130
)

var errInterrupted = errors.New("interrupted")

var (
	// output is flushed at least that often while the VM runs
	flushInterval = 50 * time.Millisecond
	notifySignals = signal.Notify
)

// syncWriter is a buffered output shared by the VM goroutine and the
// periodic flusher.
type syncWriter struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func newSyncWriter(w io.Writer) *syncWriter {
	return &syncWriter{w: bufio.NewWriter(w)}
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}

func (w *syncWriter) WriteByte(c byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.WriteByte(c)
}

func (w *syncWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Flush()
}

// flushLoop flushes w until t is dying. Write errors are sticky in the
// underlying bufio.Writer and will be reported by the VM itself.
func flushLoop(t *tomb.Tomb, w *syncWriter) error {
	tick := time.NewTicker(flushInterval)
	defer tick.Stop()
	for {
		select {
		case <-t.Dying():
			return nil
		case <-tick.C:
			w.Flush()
		}
	}
}

type eofPolicy struct {
	vm.EOFPolicy
}

func (p *eofPolicy) Set(s string) error {
	v, err := vm.ParseEOFPolicy(s)
	if err != nil {
		return err
	}
	p.EOFPolicy = v
	return nil
}
func (p *eofPolicy) Get() interface{} { return p.EOFPolicy }

type options struct {
	debug      bool
	dump       bool
	list       bool
	noRawIO    bool
	journal    bool
	configFile string
	eof        eofPolicy
	maxTape    int
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("bf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bf [flags] <source file>\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&o.debug, "debug", false, "enable debug diagnostics")
	fs.BoolVar(&o.dump, "dump", false, "dump the data pointer and tape upon exit")
	fs.BoolVar(&o.list, "list", false, "print the instruction listing instead of running the program")
	fs.BoolVar(&o.noRawIO, "noraw", false, "disable raw terminal IO")
	fs.BoolVar(&o.journal, "journal", false, "also log to the systemd journal")
	fs.StringVar(&o.configFile, "config", "", "load dialect settings from YAML file `filename`")
	fs.Var(&o.eof, "eof", "what to do with the current cell on end of input: unchanged, zero or minus-one")
	fs.IntVar(&o.maxTape, "maxtape", 0, "maximum tape size in cells, 0 for unbounded")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, nil, errors.New("expected exactly one source file")
	}
	return &o, fs, nil
}

// vmOptions merges the dialect file settings with flags explicitly set on the
// command line. Flags win.
func (o *options) vmOptions(fs *flag.FlagSet) ([]vm.Option, error) {
	c := new(bf.Config)
	if o.configFile != "" {
		var err error
		if c, err = bf.LoadConfig(o.configFile); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "eof":
			c.EOF = o.eof.String()
		case "maxtape":
			c.MaxTape = o.maxTape
		}
	})
	return c.Options()
}

func load(fileName string) (*vm.Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return asm.Assemble(fileName, bufio.NewReader(f))
}

// setupIO tries to switch the input terminal to raw mode. It returns the reader
// to use as VM input and a function to restore the terminal, if any.
func setupIO(stdin io.Reader, noRawIO bool, logger *slog.Logger) (io.Reader, func()) {
	f, ok := stdin.(*os.File)
	if ok && !noRawIO {
		tearDown, err := setRawIO(f)
		if err == nil {
			return rawInput(f), tearDown
		}
		logger.Debug("raw terminal IO disabled", "error", err)
	}
	// If not raw tty, buffer stdin. We own it, so reading ahead is fine.
	return bufio.NewReader(stdin), nil
}

func atExit(i *vm.Instance, err error, debug bool, stderr io.Writer) {
	if !debug {
		fmt.Fprintf(stderr, "\n%v\n", err)
		return
	}
	fmt.Fprintf(stderr, "\n%+v\n", err)
	if i != nil {
		bf.DumpState(i, stderr)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	logger := newLogger(stderr, o.debug, o.journal)
	fileName := fs.Arg(0)

	opts, err := o.vmOptions(fs)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}

	p, err := load(fileName)
	if err != nil {
		atExit(nil, err, o.debug, stderr)
		if _, ok := err.(*asm.Error); ok {
			return exitMalformed
		}
		return exitFailure
	}
	logger.Debug("program loaded", "file", fileName, "instructions", p.Len())

	out := newSyncWriter(stdout)
	if o.list {
		if err = asm.DisassembleAll(p, out); err == nil {
			err = out.Flush()
		}
		if err != nil {
			atExit(nil, err, o.debug, stderr)
			return exitFailure
		}
		return exitOK
	}

	input, tearDown := setupIO(stdin, o.noRawIO, logger)
	if tearDown != nil {
		defer tearDown()
	}

	i, err := vm.New(p, append(opts, vm.Input(input), vm.Output(out))...)
	if err != nil {
		atExit(nil, err, o.debug, stderr)
		return exitFailure
	}

	sig := make(chan os.Signal, 1)
	notifySignals(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	// the VM cannot be interrupted: on signal, we just stop waiting for it and
	// flush whatever it has printed so far.
	var t tomb.Tomb
	start := time.Now()
	t.Go(func() error {
		t.Go(func() error { return flushLoop(&t, out) })
		err := i.Run()
		t.Kill(err)
		return err
	})
	select {
	case <-t.Dead():
		err = t.Err()
	case s := <-sig:
		t.Kill(errInterrupted)
		if err := out.Flush(); err != nil {
			logger.Warn("output flush failed", "error", err)
		}
		logger.Warn("interrupted", "signal", s.String())
		return exitInterrupted
	}

	logger.Debug("run complete",
		"instructions", i.InstructionCount(),
		"tape", len(i.Tape),
		"duration", time.Since(start))

	if o.dump {
		if err == nil {
			if err = i.Dump(out); err == nil {
				err = out.Flush()
			}
		} else {
			i.Dump(stderr)
		}
	}
	if err != nil {
		atExit(i, err, o.debug, stderr)
		return exitFailure
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
