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

// Package pattern elaborates the raw bit-level match condition of a rule into
// mask / test words over the instruction word, along with the operands the
// pattern binds.  This is the only fallible elaboration step at the table
// layer: patterns can reference unknown fields, constrain the same bits
// twice, or match constants which do not fit their field.
package pattern

import (
	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/sled/schema"
)

// Env provides the field declarations a pattern is elaborated against.
type Env interface {
	// Field returns the declared field of the given name.
	Field(name string) (schema.Field, bool)
}

// Operand represents a quantity bound by a pattern: either the raw value of a
// field, or the result of decoding a field through another table.
type Operand struct {
	// Field whose bits this operand covers.
	Field schema.Field
	// Table decoding this operand, or empty for a raw field operand.
	Table string
}

// IsSubtable checks whether this operand is decoded through another table.
func (p *Operand) IsSubtable() bool {
	return p.Table != ""
}

// Pattern represents the elaborated match condition of a rule.  A word w
// matches exactly when w & mask == test, with any remaining bits picked up by
// the operands.
type Pattern struct {
	// Bits constrained by this pattern.
	mask uint64
	// Required value of the constrained bits.
	test uint64
	// Operands bound by this pattern, in declaration order.
	operands []Operand
}

// Elaborate a raw pattern against the given field environment.
func Elaborate(env Env, raw *ast.Pattern) (Pattern, *Error) {
	var (
		pattern Pattern
		// Bits constrained so far, by any element.
		seen uint64
	)
	//
	for _, element := range raw.Elements {
		field, ok := env.Field(element.Target())
		//
		if !ok {
			return Pattern{}, &Error{UnknownField, element.Target(), 0}
		}
		// No two elements may constrain the same bits.
		if seen&field.Mask() != 0 {
			return Pattern{}, &Error{ConflictingBits, field.Name, 0}
		}
		//
		seen |= field.Mask()
		//
		switch element := element.(type) {
		case *ast.EqElement:
			// Sanity check the constant fits its field.
			if element.Value > field.Mask()>>field.Lo {
				return Pattern{}, &Error{ValueTooWide, field.Name, element.Value}
			}
			//
			pattern.mask |= field.Mask()
			pattern.test |= element.Value << field.Lo
		case *ast.AnyElement:
			pattern.operands = append(pattern.operands, Operand{field, ""})
		case *ast.SubElement:
			pattern.operands = append(pattern.operands, Operand{field, element.Table})
		default:
			panic("unknown pattern element")
		}
	}
	//
	return pattern, nil
}

// Mask returns the bits of the instruction word constrained by this pattern.
func (p *Pattern) Mask() uint64 {
	return p.mask
}

// Test returns the value the constrained bits must take for a match.
func (p *Pattern) Test() uint64 {
	return p.test
}

// Matches checks whether a given instruction word matches this pattern.
func (p *Pattern) Matches(word uint64) bool {
	return word&p.mask == p.test
}

// Operands returns the operands bound by this pattern, in declaration order.
func (p *Pattern) Operands() []Operand {
	return p.operands
}

// Binds checks whether this pattern binds an operand of the given name.
func (p *Pattern) Binds(name string) bool {
	for _, op := range p.operands {
		if op.Field.Name == name {
			return true
		}
	}
	//
	return false
}

// Subtables returns the names of all tables referenced by the operands of
// this pattern.  The same name can arise more than once.
func (p *Pattern) Subtables() []string {
	var tables []string
	//
	for _, op := range p.operands {
		if op.IsSubtable() {
			tables = append(tables, op.Table)
		}
	}
	//
	return tables
}
