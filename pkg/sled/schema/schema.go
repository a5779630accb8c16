// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package schema provides the shared vocabulary of the sled compiler: bit
// widths, instruction fields, decoding-context variables and table export
// descriptors.  These are the terms in which the semantic layers talk to one
// another, and in which a compiled specification is handed on to downstream
// code generation.
package schema

// RootTable is the reserved name of the whole-instruction entry point.  Every
// other table is a sub-table, reached only from the pattern of some rule.
const RootTable = "instruction"

// Width measures the size of a value in bits.  Widths are strictly positive;
// a zero width never denotes a valid measurement, and is only used as the
// (inaccessible) width of a NONE export.
type Width uint

// MaxFieldBit is the highest bit position an instruction field may occupy.
// Patterns are elaborated against a single machine word.
const MaxFieldBit = 63

// Field describes a named range of bits within the instruction word, covering
// bits Lo up to Hi inclusive.
type Field struct {
	// Name of this field, as declared.
	Name string
	// Most significant bit covered (inclusive).
	Hi uint
	// Least significant bit covered (inclusive).
	Lo uint
}

// NewField constructs a field whilst checking the internal invariants are
// maintained.
func NewField(name string, hi uint, lo uint) Field {
	if lo > hi || hi > MaxFieldBit {
		panic("invalid field range")
	}
	//
	return Field{name, hi, lo}
}

// Width returns the number of bits covered by this field.
func (f Field) Width() Width {
	return Width(f.Hi - f.Lo + 1)
}

// Mask returns the bit mask selecting exactly this field within the
// instruction word.
func (f Field) Mask() uint64 {
	width := f.Hi - f.Lo + 1
	//
	if width == 64 {
		return ^uint64(0)
	}
	//
	return ((uint64(1) << width) - 1) << f.Lo
}

// ContextVar describes a named decoding-context variable of a given width.
// Context variables are assigned by the disassembly actions of a matched
// constructor, and drive further decoding.
type ContextVar struct {
	// Name of this variable, as declared.
	Name string
	// Width of this variable in bits.
	Width Width
}
