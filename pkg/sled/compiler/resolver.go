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
package compiler

import (
	"fmt"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/util/source"
)

// Resolver checks the name references of a rule before it is handed to the
// semantic layer.  The display, disassembly and execution elaborators are
// infallible by contract, and this is where their invariants are discharged:
// every operand referenced by a display template or an expression must be
// bound by the rule's pattern or be a declared context variable.  Observe
// that pattern fields are deliberately left alone here, since checking them
// is the business of the (fallible) pattern elaborator.
type resolver struct {
	env *Environment
	// Maps syntax tree nodes to their spans, for error reporting.
	srcmap *source.Maps[ast.Node]
}

// resolveRule checks every name reference of the given rule, reporting all
// failures at once.
func (r *resolver) resolveRule(rule *ast.DefRule) []SyntaxError {
	var errors []SyntaxError
	// Determine operands bound by the pattern.
	bound := make(map[string]bool)
	//
	for _, element := range rule.Pattern.Elements {
		switch element.(type) {
		case *ast.AnyElement, *ast.SubElement:
			bound[element.Target()] = true
		}
	}
	// Display operand references
	for _, piece := range rule.Display.Pieces {
		if piece, ok := piece.(*ast.OperandPiece); ok && !bound[piece.Name] {
			errors = append(errors, *r.srcmap.SyntaxError(piece,
				fmt.Sprintf("operand \"%s\" not bound by pattern", piece.Name)))
		}
	}
	// Context actions
	if rule.Context != nil {
		for _, action := range rule.Context.Actions {
			if _, ok := r.env.Context(action.Var); !ok {
				errors = append(errors, *r.srcmap.SyntaxError(action,
					fmt.Sprintf("unknown context variable \"%s\"", action.Var)))
			}
			//
			errors = append(errors, r.resolveExpr(action.Expr, bound)...)
		}
	}
	// Execute statements
	if rule.Execute != nil {
		for _, stmt := range rule.Execute.Statements {
			// NOTE: assignment targets are locations (e.g. registers) whose
			// resolution belongs to the downstream code generator, hence only
			// the value expression is checked here.
			if stmt, ok := stmt.(*ast.AssignStmt); ok {
				errors = append(errors, r.resolveExpr(stmt.Expr, bound)...)
			}
		}
		//
		if rule.Execute.Export != nil {
			errors = append(errors, r.resolveExpr(rule.Execute.Export.Value, bound)...)
		}
	}
	//
	return errors
}

// resolveExpr checks every variable access of an expression against the
// operands bound by the enclosing pattern and the declared context variables.
func (r *resolver) resolveExpr(expr ast.Expr, bound map[string]bool) []SyntaxError {
	switch expr := expr.(type) {
	case *ast.Number:
		return nil
	case *ast.VarAccess:
		if _, ok := r.env.Context(expr.Name); ok {
			return nil
		} else if bound[expr.Name] {
			return nil
		}
		//
		return r.srcmap.SyntaxErrors(expr, fmt.Sprintf("unknown variable \"%s\"", expr.Name))
	case *ast.Binary:
		errors := r.resolveExpr(expr.Lhs, bound)
		return append(errors, r.resolveExpr(expr.Rhs, bound)...)
	default:
		panic("unknown expression")
	}
}
