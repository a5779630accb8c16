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
package sexp

import (
	"testing"

	"github.com/sled-lang/go-sled/pkg/util/source"
)

func Test_Sexp_01(t *testing.T) {
	checkParse(t, "symbol")
	checkParse(t, "12345")
	checkParse(t, "()")
	checkParse(t, "(a)")
	checkParse(t, "(a b c)")
	checkParse(t, "(a (b c) d)")
	checkParse(t, "(a (b (c (d))))")
}

func Test_Sexp_02(t *testing.T) {
	// Whitespace and comments never affect the parsed structure.
	checkParses(t, "  symbol  ", "symbol")
	checkParses(t, "(a\n\tb\n\tc)", "(a b c)")
	checkParses(t, "; leading comment\n(a b)", "(a b)")
	checkParses(t, "(a ; trailing comment\n b)", "(a b)")
	checkParses(t, "(a b) ; closing comment", "(a b)")
}

func Test_Sexp_03(t *testing.T) {
	// String literals parse as single terms, with escapes decoded.
	checkParses(t, "\"hello world\"", "\"hello world\"")
	checkParses(t, "(display \"add \" x)", "(display \"add \" x)")
	//
	term := parseOne(t, "\"a\\\"b\\\\c\\n\\t\"")
	str, ok := term.(*String)
	//
	if !ok {
		t.Fatalf("parsed %s, expected a string literal", term)
	} else if str.Value != "a\"b\\c\n\t" {
		t.Errorf("unexpected string contents %q", str.Value)
	}
}

func Test_Sexp_04(t *testing.T) {
	checkFailure(t, ")")
	checkFailure(t, "(a b")
	checkFailure(t, "(a (b c)")
	checkFailure(t, "\"unterminated")
	checkFailure(t, "\"broken\nstring\"")
	checkFailure(t, "\"bad escape \\q\"")
	checkFailure(t, "\"incomplete escape \\")
}

func Test_Sexp_05(t *testing.T) {
	// ParseAll returns every top-level term, in order.
	terms, _, err := ParseAll(srcfile("(a b) c (d)"))
	//
	if err != nil {
		t.Fatalf("parsing failed: %s", err)
	} else if len(terms) != 3 {
		t.Fatalf("parsed %d term(s), expected 3", len(terms))
	}
	//
	for i, expected := range []string{"(a b)", "c", "(d)"} {
		if terms[i].String() != expected {
			t.Errorf("term %d parsed as %s, expected %s", i, terms[i], expected)
		}
	}
}

func Test_Sexp_06(t *testing.T) {
	// Every parsed term maps back to its exact span in the original text.
	terms, srcmap, err := ParseAll(srcfile("(a b) cde"))
	//
	if err != nil {
		t.Fatalf("parsing failed: %s", err)
	}
	//
	checkSpan(t, srcmap, terms[0], 0, 5)
	checkSpan(t, srcmap, terms[1], 6, 9)
	// Inner terms are mapped as well.
	list := terms[0].(*List)
	checkSpan(t, srcmap, list.Elements[0], 1, 2)
	checkSpan(t, srcmap, list.Elements[1], 3, 4)
}

func Test_Sexp_07(t *testing.T) {
	list := parseOne(t, "(defrule instruction (pattern))").(*List)
	//
	if !list.MatchSymbols(1, "defrule") {
		t.Errorf("list fails to match its head symbol")
	} else if !list.MatchSymbols(2, "defrule", "instruction") {
		t.Errorf("list fails to match its leading symbols")
	} else if list.MatchSymbols(2, "defrule", "pattern") {
		t.Errorf("list matches symbols it does not start with")
	} else if list.MatchSymbols(4, "defrule") {
		t.Errorf("list matches more symbols than it has")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func srcfile(text string) *source.File {
	return source.NewSourceFile("test.sled", []byte(text))
}

func parseOne(t *testing.T, text string) SExp {
	term, _, err := Parse(srcfile(text))
	//
	if err != nil {
		t.Fatalf("parsing \"%s\" failed: %s", text, err)
	}
	//
	return term
}

func checkParse(t *testing.T, text string) {
	checkParses(t, text, text)
}

func checkParses(t *testing.T, text string, expected string) {
	term := parseOne(t, text)
	//
	if term.String() != expected {
		t.Errorf("\"%s\" parsed as %s, expected %s", text, term, expected)
	}
}

func checkFailure(t *testing.T, text string) {
	if term, _, err := Parse(srcfile(text)); err == nil {
		t.Errorf("parsing \"%s\" should have failed (got %s)", text, term)
	}
}

func checkSpan(t *testing.T, srcmap *source.Map[SExp], term SExp, start int, end int) {
	span := srcmap.Get(term)
	//
	if span.Start() != start || span.End() != end {
		t.Errorf("term %s has span %d:%d, expected %d:%d",
			term, span.Start(), span.End(), start, end)
	}
}
