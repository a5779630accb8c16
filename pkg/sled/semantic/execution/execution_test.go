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
package execution

import (
	"testing"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/sled/schema"
)

func Test_Execution_01(t *testing.T) {
	// An execute block without an export statement yields no export.
	execution := Elaborate(&ast.Execute{Statements: []ast.Statement{
		&ast.AssignStmt{Target: "pc", Expr: &ast.Binary{
			Op:  "+",
			Lhs: &ast.VarAccess{Name: "pc"},
			Rhs: &ast.Number{Value: 4},
		}},
	}})
	//
	if !execution.Export().IsNone() {
		t.Errorf("unexpected export %s", execution.Export())
	}
	//
	statements := execution.Statements()
	//
	if len(statements) != 1 {
		t.Fatalf("execution has %d statement(s), expected 1", len(statements))
	} else if statements[0].Target != "pc" {
		t.Errorf("unexpected assignment target \"%s\"", statements[0].Target)
	} else if statements[0].Value.String() != "(+ pc 4)" {
		t.Errorf("unexpected assigned value %s", statements[0].Value)
	}
}

func Test_Execution_02(t *testing.T) {
	// Each export statement kind maps onto its descriptor.
	checkExport(t, ast.EXPORT_CONST, 4, schema.NewExport(schema.CONST, 4))
	checkExport(t, ast.EXPORT_VALUE, 8, schema.NewExport(schema.VALUE, 8))
	checkExport(t, ast.EXPORT_REF, 1, schema.NewExport(schema.REFERENCE, 1))
}

func Test_Execution_03(t *testing.T) {
	// Statements and export combine within one block.
	execution := Elaborate(&ast.Execute{
		Statements: []ast.Statement{
			&ast.AssignStmt{Target: "tmp", Expr: &ast.VarAccess{Name: "rs"}},
		},
		Export: &ast.ExportStmt{Kind: ast.EXPORT_VALUE, Width: 4, Value: &ast.VarAccess{Name: "tmp"}},
	})
	//
	if len(execution.Statements()) != 1 {
		t.Errorf("execution has %d statement(s), expected 1", len(execution.Statements()))
	}
	//
	if execution.Export() != schema.NewExport(schema.VALUE, 4) {
		t.Errorf("unexpected export %s", execution.Export())
	}
}

func checkExport(t *testing.T, kind ast.ExportKind, width uint, expected schema.Export) {
	execution := Elaborate(&ast.Execute{
		Export: &ast.ExportStmt{Kind: kind, Width: width, Value: &ast.Number{Value: 0}},
	})
	//
	if execution.Export() != expected {
		t.Errorf("unexpected export %s, expected %s", execution.Export(), expected)
	}
}
