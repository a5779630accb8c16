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
package disassembly

import (
	"testing"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/sled/schema"
)

func Test_Disassembly_01(t *testing.T) {
	// Rules without a context block have no actions.
	disassembly := Elaborate(env{}, nil)
	//
	if len(disassembly.Actions()) != 0 {
		t.Errorf("unexpected actions %v", disassembly.Actions())
	}
	//
	if updates := disassembly.Apply(nil); len(updates) != 0 {
		t.Errorf("unexpected context updates %v", updates)
	}
}

func Test_Disassembly_02(t *testing.T) {
	disassembly := Elaborate(env{}, &ast.Context{Actions: []*ast.SetAction{
		{Var: "mode", Expr: &ast.Number{Value: 1}},
		{Var: "page", Expr: &ast.Binary{
			Op:  ">>",
			Lhs: &ast.VarAccess{Name: "imm"},
			Rhs: &ast.Number{Value: 4},
		}},
	}})
	//
	actions := disassembly.Actions()
	//
	if len(actions) != 2 {
		t.Fatalf("disassembly has %d action(s), expected 2", len(actions))
	} else if actions[0].Var != (schema.ContextVar{Name: "mode", Width: 2}) {
		t.Errorf("unexpected variable on first action %v", actions[0].Var)
	} else if actions[1].Var != (schema.ContextVar{Name: "page", Width: 8}) {
		t.Errorf("unexpected variable on second action %v", actions[1].Var)
	}
	//
	updates := disassembly.Apply(func(name string) uint64 {
		if name != "imm" {
			t.Fatalf("unexpected access of \"%s\"", name)
		}
		//
		return 0xab
	})
	//
	if updates["mode"] != 1 || updates["page"] != 0xa {
		t.Errorf("unexpected context updates %v", updates)
	}
}

// env declares the context variables rules are elaborated against.
type env struct{}

// Context returns the declared context variable of the given name.
func (p env) Context(name string) (schema.ContextVar, bool) {
	switch name {
	case "mode":
		return schema.ContextVar{Name: "mode", Width: 2}, true
	case "page":
		return schema.ContextVar{Name: "page", Width: 8}, true
	default:
		return schema.ContextVar{}, false
	}
}
