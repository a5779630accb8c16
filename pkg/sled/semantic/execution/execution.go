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

// Package execution elaborates the raw operational semantics of a rule.
// Elaboration is infallible at this layer: the parser guarantees the
// structure of execute blocks (including strictly positive export widths),
// and the resolver checks all name references up front.  The table layer
// only ever queries whether semantics are present and, when present, their
// export kind and width.
package execution

import (
	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/sled/schema"
	"github.com/sled-lang/go-sled/pkg/sled/semantic/expr"
)

// Statement represents a single elaborated statement of an execute block.
type Statement struct {
	// Location being assigned.
	Target string
	// Value being assigned.
	Value expr.Expr
}

// Execution represents the elaborated operational semantics of a rule,
// including the export descriptor derived from its (optional) trailing export
// statement.
type Execution struct {
	statements []Statement
	export     schema.Export
}

// Elaborate the raw semantics of a rule.
func Elaborate(raw *ast.Execute) Execution {
	statements := make([]Statement, len(raw.Statements))
	//
	for i, stmt := range raw.Statements {
		switch stmt := stmt.(type) {
		case *ast.AssignStmt:
			statements[i] = Statement{stmt.Target, expr.Lower(stmt.Expr)}
		default:
			panic("unknown statement")
		}
	}
	//
	return Execution{statements, lowerExport(raw.Export)}
}

// Statements returns the elaborated statements of this rule, in declaration
// order.
func (p *Execution) Statements() []Statement {
	return p.statements
}

// Export returns the export descriptor of this rule: what it yields when its
// table is referenced as an operand from another table.
func (p *Execution) Export() schema.Export {
	return p.export
}

func lowerExport(raw *ast.ExportStmt) schema.Export {
	if raw == nil {
		return schema.NoneExport()
	}
	//
	switch raw.Kind {
	case ast.EXPORT_CONST:
		return schema.NewExport(schema.CONST, schema.Width(raw.Width))
	case ast.EXPORT_VALUE:
		return schema.NewExport(schema.VALUE, schema.Width(raw.Width))
	case ast.EXPORT_REF:
		return schema.NewExport(schema.REFERENCE, schema.Width(raw.Width))
	default:
		panic("unknown export kind")
	}
}
