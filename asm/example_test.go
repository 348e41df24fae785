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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/bfvm/asm"
)

// Shows how to load a program and list its instructions.
func ExampleDisassembleAll() {
	code := `
	Copy input to output until EOF
	, [ . , ]
	`

	p, err := asm.Assemble("raw_string", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}

	asm.DisassembleAll(p, os.Stdout)

	// Output:
	//          0	, in
	//          1	[ open 4
	//          2	. out
	//          3	, in
	//          4	] close 1
}

func ExampleAssemble_error() {
	_, err := asm.Assemble("unbalanced", strings.NewReader("+[>+\n[-]"))
	fmt.Println(err)

	_, err = asm.Assemble("unbalanced", strings.NewReader("+>]"))
	fmt.Println(err)

	// Output:
	// unbalanced:1:2: unmatched '['
	// unbalanced:1:3: unmatched ']'
}
