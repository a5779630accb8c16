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
package ast

import (
	"fmt"

	"github.com/sled-lang/go-sled/pkg/util/source/sexp"
)

// Expr represents a raw expression, as found in disassembly actions and
// execute statements.
type Expr interface {
	Node
}

// Number represents a numeric literal.
type Number struct {
	Value uint64
}

// Lisp converts this node into its lisp representation.
func (p *Number) Lisp() sexp.SExp {
	return number(p.Value)
}

// VarAccess represents a reference to a field operand, a context variable or
// a named operand of the enclosing rule.
type VarAccess struct {
	Name string
}

// Lisp converts this node into its lisp representation.
func (p *VarAccess) Lisp() sexp.SExp {
	return symbol(p.Name)
}

// Binary represents the application of a binary operator to two
// subexpressions.
type Binary struct {
	Op  string
	Lhs Expr
	Rhs Expr
}

// Lisp converts this node into its lisp representation.
func (p *Binary) Lisp() sexp.SExp {
	return list(p.Op, p.Lhs.Lisp(), p.Rhs.Lisp())
}

func number(value uint64) sexp.SExp {
	return &sexp.Symbol{Value: fmt.Sprintf("%d", value)}
}
