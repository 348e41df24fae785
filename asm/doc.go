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

// Package asm provides utility functions to load and disassemble VM programs.
//
// Supported instructions:
//
//	symbol	mnemonic	description
//	------	--------	------------------------------------------------------------
//	>	right		move the data pointer one cell to the right
//	<	left		move the data pointer one cell to the left
//	+	inc		increment the current cell (wraps from 255 to 0)
//	-	dec		decrement the current cell (wraps from 0 to 255)
//	.	out		write the current cell to the output
//	,	in		read one byte from the input into the current cell
//	[	open		if the current cell is 0, jump past the matching ]
//	]	close		if the current cell is not 0, jump back past the matching [
//
// Comments:
//
// Any byte that is not one of the eight instruction symbols is a comment. There
// is no comment syntax; comments do not affect instruction numbering nor loop
// matching:
//
//	This program prints the character @ (64):
//	++++++++ [ > ++++++++ < - ] > .
//
// Loops:
//
// Brackets must nest properly. A ']' with no pending '[' is reported at the
// position of the ']'. A '[' left open at the end of the source is reported at
// the position of the innermost unmatched '['. Both are returned as an *Error
// before any code runs.
//
// Disassembly:
//
// Disassembled instructions are written as the symbol followed by the
// mnemonic. Loop instructions are followed by the position of their matching
// instruction:
//
//	$ bf -list cat.b
//	         0	, in
//	         1	[ open 4
//	         2	. out
//	         3	, in
//	         4	] close 1
package asm
