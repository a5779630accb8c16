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
	"github.com/sled-lang/go-sled/pkg/util/source/sexp"
)

// Execute represents the raw operational semantics of a rule.  The optional
// trailing export statement determines what the rule yields when its table is
// referenced as an operand from another table.
type Execute struct {
	Statements []Statement
	// Export determines the exported value of this rule (nil for none).
	Export *ExportStmt
}

// Lisp converts this node into its lisp representation.
func (p *Execute) Lisp() sexp.SExp {
	elements := []sexp.SExp{symbol("execute")}
	//
	for _, stmt := range p.Statements {
		elements = append(elements, stmt.Lisp())
	}
	//
	if p.Export != nil {
		elements = append(elements, p.Export.Lisp())
	}
	//
	return &sexp.List{Elements: elements}
}

// Statement represents a single statement within an execute block.
type Statement interface {
	Node
}

// AssignStmt assigns the value of an expression to a named location.
type AssignStmt struct {
	Target string
	Expr   Expr
}

// Lisp converts this node into its lisp representation.
func (p *AssignStmt) Lisp() sexp.SExp {
	return list("assign", symbol(p.Target), p.Expr.Lisp())
}

// ExportKind identifies the raw kind of an export statement.
type ExportKind uint8

const (
	// EXPORT_CONST marks a value known at elaboration time.
	EXPORT_CONST ExportKind = iota
	// EXPORT_VALUE marks a value known only at decode / execution time.
	EXPORT_VALUE
	// EXPORT_REF marks an address or register-like location.
	EXPORT_REF
)

// ExportStmt declares what a rule yields to callers of its table: a constant,
// a runtime value or a reference, of a given width.
type ExportStmt struct {
	Kind  ExportKind
	Width uint
	Value Expr
}

// Lisp converts this node into its lisp representation.
func (p *ExportStmt) Lisp() sexp.SExp {
	var kind string
	//
	switch p.Kind {
	case EXPORT_CONST:
		kind = "const"
	case EXPORT_VALUE:
		kind = "value"
	default:
		kind = "ref"
	}
	//
	return list("export", list(kind, number(uint64(p.Width)), p.Value.Lisp()))
}
