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

// Package vm implements the execution engine for the eight instruction byte
// tape language commonly known as brainfuck.
//
// A Program is produced once by a loader (see package
// github.com/db47h/bfvm/asm) and is never modified afterwards. An Instance
// runs a Program against a fresh tape: a byte slice that starts with a single
// zero cell and grows to the right on demand. The data pointer can never move
// left of cell 0; doing so aborts the run with ErrTapeUnderflow.
//
// Cell arithmetic wraps modulo 256. Output bytes are handed to the output
// stream as soon as the corresponding instruction executes. When the input
// stream reaches EOF, the behavior of the input instruction is set by the EOF
// option; the default leaves the current cell unchanged.
//
// There is no cancellation mechanism: a program stuck in an infinite loop runs
// forever, which is the defined behavior of the language.
package vm
