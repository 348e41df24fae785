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

package asm

import (
	"bufio"
	"io"
	"text/scanner"

	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

type openSite struct {
	pc  int
	pos scanner.Position
}

type parser struct {
	code  []vm.Opcode
	jumps []int
	open  []openSite
	pos   scanner.Position
}

func newParser(name string) *parser {
	return &parser{
		pos: scanner.Position{Filename: name, Line: 1},
	}
}

func (p *parser) write(op vm.Opcode) {
	pc := len(p.code)
	p.code = append(p.code, op)
	p.jumps = append(p.jumps, -1)
	switch op {
	case vm.OpOpen:
		p.open = append(p.open, openSite{pc, p.pos})
	case vm.OpClose:
		// the caller has already checked that p.open is not empty
		o := p.open[len(p.open)-1]
		p.open = p.open[:len(p.open)-1]
		p.jumps[o.pc] = pc
		p.jumps[pc] = o.pc
	}
}

// Parse does the parsing and bracket matching.
func (p *parser) Parse(r io.Reader) (*vm.Program, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &Error{p.pos, errors.Wrap(err, "read failed")}
		}
		// column counts characters, not bytes: skip UTF-8 continuation bytes.
		if c&0xC0 != 0x80 {
			p.pos.Column++
		}
		if op, ok := vm.Decode(c); ok {
			if op == vm.OpClose && len(p.open) == 0 {
				return nil, &Error{p.pos, ErrUnmatchedClose}
			}
			p.write(op)
		}
		p.pos.Offset++
		if c == '\n' {
			p.pos.Line++
			p.pos.Column = 0
		}
	}
	if n := len(p.open); n > 0 {
		return nil, &Error{p.open[n-1].pos, ErrUnmatchedOpen}
	}
	return &vm.Program{Code: p.code, Jumps: p.jumps}, nil
}
