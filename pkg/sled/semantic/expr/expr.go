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

// Package expr provides the elaborated expression form shared by the
// disassembly and execution layers.  Unlike raw ast expressions, these are
// directly evaluable against a binding of named quantities (field operands
// and context variables) to concrete values.
package expr

import (
	"fmt"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
)

// Expr represents an elaborated expression which can be evaluated against a
// binding of names to values.
type Expr interface {
	// Eval evaluates this expression, reading named quantities through the
	// given binding.
	Eval(bind func(string) uint64) uint64
	// String generates a string representation.
	String() string
}

// Op identifies a binary operator.
type Op uint8

const (
	// ADD performs (wrapping) addition.
	ADD Op = iota
	// SUB performs (wrapping) subtraction.
	SUB
	// AND performs bitwise conjunction.
	AND
	// OR performs bitwise disjunction.
	OR
	// XOR performs bitwise exclusive disjunction.
	XOR
	// SHL performs a left shift.
	SHL
	// SHR performs a (logical) right shift.
	SHR
)

// ============================================================================
// Constant
// ============================================================================

// Constant represents a literal value.
type Constant struct {
	Value uint64
}

// Eval evaluates this expression under a given binding.
func (p *Constant) Eval(bind func(string) uint64) uint64 {
	return p.Value
}

func (p *Constant) String() string {
	return fmt.Sprintf("%d", p.Value)
}

// ============================================================================
// Access
// ============================================================================

// Access represents the value of a named quantity (a field operand or a
// context variable).
type Access struct {
	Name string
}

// Eval evaluates this expression under a given binding.
func (p *Access) Eval(bind func(string) uint64) uint64 {
	return bind(p.Name)
}

func (p *Access) String() string {
	return p.Name
}

// ============================================================================
// Binary
// ============================================================================

// Binary represents the application of a binary operator to two
// subexpressions.
type Binary struct {
	Op  Op
	Lhs Expr
	Rhs Expr
}

// Eval evaluates this expression under a given binding.
func (p *Binary) Eval(bind func(string) uint64) uint64 {
	lhs := p.Lhs.Eval(bind)
	rhs := p.Rhs.Eval(bind)
	//
	switch p.Op {
	case ADD:
		return lhs + rhs
	case SUB:
		return lhs - rhs
	case AND:
		return lhs & rhs
	case OR:
		return lhs | rhs
	case XOR:
		return lhs ^ rhs
	case SHL:
		return lhs << rhs
	case SHR:
		return lhs >> rhs
	default:
		panic("unknown binary operator")
	}
}

func (p *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", opName(p.Op), p.Lhs, p.Rhs)
}

func opName(op Op) string {
	switch op {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case AND:
		return "&"
	case OR:
		return "|"
	case XOR:
		return "^"
	case SHL:
		return "<<"
	case SHR:
		return ">>"
	default:
		panic("unknown binary operator")
	}
}

// ============================================================================
// Lowering
// ============================================================================

// Lower translates a raw ast expression into its elaborated form.  The parser
// guarantees the operator set, hence an unknown operator indicates an
// internal failure and leads to a panic.
func Lower(raw ast.Expr) Expr {
	switch raw := raw.(type) {
	case *ast.Number:
		return &Constant{raw.Value}
	case *ast.VarAccess:
		return &Access{raw.Name}
	case *ast.Binary:
		return &Binary{lowerOp(raw.Op), Lower(raw.Lhs), Lower(raw.Rhs)}
	default:
		panic("unknown expression")
	}
}

func lowerOp(op string) Op {
	switch op {
	case "+":
		return ADD
	case "-":
		return SUB
	case "&":
		return AND
	case "|":
		return OR
	case "^":
		return XOR
	case "<<":
		return SHL
	case ">>":
		return SHR
	default:
		panic(fmt.Sprintf("unknown binary operator \"%s\"", op))
	}
}
