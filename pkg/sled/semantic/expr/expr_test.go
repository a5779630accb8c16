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
package expr

import (
	"math"
	"testing"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
)

func Test_Expr_01(t *testing.T) {
	checkEval(t, &Constant{42}, 42)
	checkEval(t, &Access{"rd"}, 3)
	checkEval(t, &Binary{ADD, &Access{"rd"}, &Constant{1}}, 4)
	checkEval(t, &Binary{SUB, &Constant{10}, &Access{"rd"}}, 7)
	checkEval(t, &Binary{AND, &Constant{0b1100}, &Constant{0b1010}}, 0b1000)
	checkEval(t, &Binary{OR, &Constant{0b1100}, &Constant{0b1010}}, 0b1110)
	checkEval(t, &Binary{XOR, &Constant{0b1100}, &Constant{0b1010}}, 0b0110)
	checkEval(t, &Binary{SHL, &Access{"rd"}, &Constant{4}}, 48)
	checkEval(t, &Binary{SHR, &Constant{0x80}, &Constant{3}}, 0x10)
}

func Test_Expr_02(t *testing.T) {
	// Arithmetic wraps modulo the word.
	checkEval(t, &Binary{ADD, &Constant{math.MaxUint64}, &Constant{1}}, 0)
	checkEval(t, &Binary{SUB, &Constant{0}, &Constant{1}}, math.MaxUint64)
}

func Test_Expr_03(t *testing.T) {
	// Lowering preserves structure.
	expr := Lower(&ast.Binary{
		Op:  "+",
		Lhs: &ast.VarAccess{Name: "base"},
		Rhs: &ast.Binary{Op: "<<", Lhs: &ast.Number{Value: 1}, Rhs: &ast.VarAccess{Name: "shift"}},
	})
	//
	if expr.String() != "(+ base (<< 1 shift))" {
		t.Errorf("unexpected lowering %s", expr)
	}
	//
	bind := func(name string) uint64 {
		switch name {
		case "base":
			return 100
		case "shift":
			return 3
		default:
			t.Fatalf("unexpected access of \"%s\"", name)
			return 0
		}
	}
	//
	if v := expr.Eval(bind); v != 108 {
		t.Errorf("expression evaluates to %d, expected 108", v)
	}
}

func Test_Expr_04(t *testing.T) {
	for op, text := range map[string]string{
		"+": "(+ 1 2)", "-": "(- 1 2)", "&": "(& 1 2)", "|": "(| 1 2)",
		"^": "(^ 1 2)", "<<": "(<< 1 2)", ">>": "(>> 1 2)",
	} {
		expr := Lower(&ast.Binary{Op: op, Lhs: &ast.Number{Value: 1}, Rhs: &ast.Number{Value: 2}})
		//
		if expr.String() != text {
			t.Errorf("operator \"%s\" lowers to %s, expected %s", op, expr, text)
		}
	}
}

func checkEval(t *testing.T, expr Expr, expected uint64) {
	bind := func(name string) uint64 {
		if name != "rd" {
			t.Fatalf("unexpected access of \"%s\"", name)
		}
		//
		return 3
	}
	//
	if v := expr.Eval(bind); v != expected {
		t.Errorf("%s evaluates to %d, expected %d", expr, v, expected)
	}
}
