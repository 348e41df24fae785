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

//go:build linux

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// switch the terminal to non-canonical input so that the VM sees bytes as soon
// as they are typed. Echo is left alone. We do not use the higher level
// functions of the term package because it doesn't allow the use of existing
// file descriptors, nor does it allow custom termios settings.
func setRawIO(f *os.File) (func(), error) {
	var tios unix.Termios
	fd := f.Fd()
	err := termios.Tcgetattr(fd, &tios)
	if err != nil {
		return nil, errors.Wrap(err, "Tcgetattr failed")
	}
	a := tios
	a.Lflag &^= unix.ICANON
	a.Cc[unix.VMIN] = 1
	a.Cc[unix.VTIME] = 0
	err = termios.Tcsetattr(fd, termios.TCSANOW, &a)
	if err != nil {
		// well, try to restore as it was if it errors
		termios.Tcsetattr(fd, termios.TCSANOW, &tios)
		return nil, errors.Wrap(err, "Tcsetattr failed")
	}
	return func() {
		termios.Tcsetattr(fd, termios.TCSANOW, &tios)
	}, nil
}

// in raw tty mode, we need to handle CTRL-D ourselves.
type eotReader struct {
	r   io.Reader
	eof bool
}

func (r *eotReader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := r.r.Read(p[:1])
	if n > 0 && p[0] == 4 {
		r.eof = true
		return 0, io.EOF
	}
	return n, err
}

func rawInput(f *os.File) io.Reader {
	return &eotReader{r: f}
}
