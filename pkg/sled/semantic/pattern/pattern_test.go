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
package pattern

import (
	"testing"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/sled/schema"
)

func Test_Pattern_01(t *testing.T) {
	// A pure constant pattern constrains exactly its field bits.
	pattern := mustElaborate(t, &ast.Pattern{Elements: []ast.PatternElement{
		&ast.EqElement{Field: "op", Value: 0b1001},
	}})
	//
	checkWords(t, pattern, 0xf0, 0x90)
	//
	if len(pattern.Operands()) != 0 {
		t.Errorf("pattern binds %d operand(s), expected none", len(pattern.Operands()))
	}
}

func Test_Pattern_02(t *testing.T) {
	// Wildcard elements bind operands without constraining any bits.
	pattern := mustElaborate(t, &ast.Pattern{Elements: []ast.PatternElement{
		&ast.EqElement{Field: "op", Value: 0b0110},
		&ast.AnyElement{Field: "rd"},
		&ast.AnyElement{Field: "rs"},
	}})
	//
	checkWords(t, pattern, 0xf0, 0x60)
	//
	if !pattern.Binds("rd") || !pattern.Binds("rs") {
		t.Errorf("pattern fails to bind its wildcard operands")
	} else if pattern.Binds("op") {
		t.Errorf("pattern binds constrained field \"op\"")
	}
}

func Test_Pattern_03(t *testing.T) {
	// Subtable elements record the decoding table on their operand.
	pattern := mustElaborate(t, &ast.Pattern{Elements: []ast.PatternElement{
		&ast.EqElement{Field: "op", Value: 1},
		&ast.SubElement{Field: "rd", Table: "reg8"},
		&ast.AnyElement{Field: "rs"},
	}})
	//
	operands := pattern.Operands()
	//
	if len(operands) != 2 {
		t.Fatalf("pattern binds %d operand(s), expected 2", len(operands))
	} else if !operands[0].IsSubtable() || operands[0].Table != "reg8" {
		t.Errorf("operand \"rd\" not decoded through table \"reg8\"")
	} else if operands[1].IsSubtable() {
		t.Errorf("operand \"rs\" unexpectedly decoded through a table")
	}
	//
	subtables := pattern.Subtables()
	//
	if len(subtables) != 1 || subtables[0] != "reg8" {
		t.Errorf("unexpected subtable references %v", subtables)
	}
}

func Test_Pattern_04(t *testing.T) {
	// Word matching follows mask / test exactly.
	pattern := mustElaborate(t, &ast.Pattern{Elements: []ast.PatternElement{
		&ast.EqElement{Field: "op", Value: 0b1010},
		&ast.AnyElement{Field: "rd"},
	}})
	//
	for _, word := range []uint64{0xa0, 0xa5, 0xaf} {
		if !pattern.Matches(word) {
			t.Errorf("word %#x fails to match", word)
		}
	}
	//
	for _, word := range []uint64{0x00, 0xb0, 0x1a0} {
		if pattern.Matches(word) {
			t.Errorf("word %#x matches unexpectedly", word)
		}
	}
}

func Test_Pattern_05(t *testing.T) {
	// Unknown fields are reported by name.
	checkFails(t, &ast.Pattern{Elements: []ast.PatternElement{
		&ast.EqElement{Field: "nosuch", Value: 0},
	}}, Error{UnknownField, "nosuch", 0})
}

func Test_Pattern_06(t *testing.T) {
	// Two elements covering the same bits conflict, whatever their kinds.
	checkFails(t, &ast.Pattern{Elements: []ast.PatternElement{
		&ast.EqElement{Field: "op", Value: 1},
		&ast.EqElement{Field: "op", Value: 2},
	}}, Error{ConflictingBits, "op", 0})
	//
	checkFails(t, &ast.Pattern{Elements: []ast.PatternElement{
		&ast.AnyElement{Field: "rd"},
		&ast.SubElement{Field: "rd", Table: "reg8"},
	}}, Error{ConflictingBits, "rd", 0})
	// Overlap also arises between distinct fields sharing bits.
	checkFails(t, &ast.Pattern{Elements: []ast.PatternElement{
		&ast.AnyElement{Field: "imm"},
		&ast.AnyElement{Field: "rs"},
	}}, Error{ConflictingBits, "rs", 0})
}

func Test_Pattern_07(t *testing.T) {
	// Constants must fit within their field.
	checkFails(t, &ast.Pattern{Elements: []ast.PatternElement{
		&ast.EqElement{Field: "op", Value: 16},
	}}, Error{ValueTooWide, "op", 16})
	// Boundary value still fits.
	pattern := mustElaborate(t, &ast.Pattern{Elements: []ast.PatternElement{
		&ast.EqElement{Field: "op", Value: 15},
	}})
	//
	checkWords(t, pattern, 0xf0, 0xf0)
}

func Test_Pattern_08(t *testing.T) {
	// An empty pattern constrains nothing and therefore matches every word.
	pattern := mustElaborate(t, &ast.Pattern{})
	//
	checkWords(t, pattern, 0, 0)
	//
	if !pattern.Matches(0xdeadbeef) {
		t.Errorf("empty pattern fails to match")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// env declares an eight bit instruction word split into an opcode nibble and
// two register fields, with an immediate alias overlapping the low nibble.
type env struct{}

// Field returns the declared field of the given name.
func (p env) Field(name string) (schema.Field, bool) {
	switch name {
	case "op":
		return schema.NewField("op", 7, 4), true
	case "rd":
		return schema.NewField("rd", 3, 2), true
	case "rs":
		return schema.NewField("rs", 1, 0), true
	case "imm":
		return schema.NewField("imm", 3, 0), true
	default:
		return schema.Field{}, false
	}
}

func mustElaborate(t *testing.T, raw *ast.Pattern) Pattern {
	pattern, err := Elaborate(env{}, raw)
	//
	if err != nil {
		t.Fatalf("elaboration failed: %s", err)
	}
	//
	return pattern
}

func checkFails(t *testing.T, raw *ast.Pattern, expected Error) {
	_, err := Elaborate(env{}, raw)
	//
	if err == nil {
		t.Errorf("elaboration should have failed with %s", &expected)
	} else if *err != expected {
		t.Errorf("elaboration failed with %s, expected %s", err, &expected)
	}
}

func checkWords(t *testing.T, pattern Pattern, mask uint64, test uint64) {
	if pattern.Mask() != mask {
		t.Errorf("pattern mask %#x, expected %#x", pattern.Mask(), mask)
	}
	//
	if pattern.Test() != test {
		t.Errorf("pattern test %#x, expected %#x", pattern.Test(), test)
	}
}
