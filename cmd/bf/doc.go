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

// The bf command line tool runs brainfuck programs with the package
// github.com/db47h/bfvm/vm.
//
// Usage:
//
//	bf [flags] <source file>
//
//	-config filename
//		  load dialect settings from YAML file filename
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the data pointer and tape upon exit
//	-eof value
//		  what to do with the current cell on end of input: unchanged, zero or minus-one
//	-journal
//		  also log to the systemd journal
//	-list
//		  print the instruction listing instead of running the program
//	-maxtape int
//		  maximum tape size in cells, 0 for unbounded
//	-noraw
//		  disable raw terminal IO
//
// The program reads its input from stdin and writes its output to stdout.
// Output is buffered, but flushed at least every 50ms, whenever the program
// reads input, when it terminates and when bf is interrupted.
//
// -debug: print debug logs, a full stacktrace and a snapshot of the VM state
// should the program fail.
//
// -eof: the default is to leave the current cell unchanged when a program
// reads past the end of its input. Other dialects set it to 0 or 255.
//
// -config: dialect settings may be stored in a YAML file:
//
//	eof: zero
//	tape_size: 30000
//	max_tape: 65536
//
// Flags given on the command line override the file settings.
//
// -noraw: when stdin is a terminal, bf switches it to non-canonical mode so that
// bytes are available to the program as soon as they are typed. CTRL-D then
// signals the end of input. This flag disables this behavior.
//
// Exit status is 0 on success, 1 if the program fails at run time or cannot be
// read, 2 on usage errors, 3 if the program is malformed (unbalanced loops) and
// 130 if interrupted by a signal.
package main
