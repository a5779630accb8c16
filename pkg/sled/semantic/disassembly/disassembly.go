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

// Package disassembly elaborates the raw decoding-context updates of a rule
// into an action set over the declared context variables.  Elaboration is
// infallible at this layer: the resolver has already checked every context
// variable reference, hence an unresolved variable here indicates an internal
// failure and leads to a panic.
package disassembly

import (
	"fmt"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/sled/schema"
	"github.com/sled-lang/go-sled/pkg/sled/semantic/expr"
)

// Env provides the context-variable declarations actions are elaborated
// against.
type Env interface {
	// Context returns the declared context variable of the given name.
	Context(name string) (schema.ContextVar, bool)
}

// Action represents a single elaborated context update: the assignment of an
// expression to a context variable on a successful match.
type Action struct {
	// Variable being assigned.
	Var schema.ContextVar
	// Value being assigned.
	Value expr.Expr
}

// Disassembly represents the elaborated context updates of a rule.  A rule
// without a context block simply has no actions.
type Disassembly struct {
	actions []Action
}

// Elaborate the raw context updates of a rule (which can be nil, for rules
// without a context block).
func Elaborate(env Env, raw *ast.Context) Disassembly {
	if raw == nil {
		return Disassembly{}
	}
	//
	actions := make([]Action, len(raw.Actions))
	//
	for i, action := range raw.Actions {
		cvar, ok := env.Context(action.Var)
		// Following should be unreachable, since the resolver checks all
		// context variable references up front.
		if !ok {
			panic(fmt.Sprintf("unresolved context variable \"%s\"", action.Var))
		}
		//
		actions[i] = Action{cvar, expr.Lower(action.Expr)}
	}
	//
	return Disassembly{actions}
}

// Actions returns the elaborated actions of this rule, in declaration order.
func (p *Disassembly) Actions() []Action {
	return p.actions
}

// Apply evaluates every action against the given binding, producing the
// resulting context-variable values.
func (p *Disassembly) Apply(bind func(string) uint64) map[string]uint64 {
	updates := make(map[string]uint64, len(p.actions))
	//
	for _, action := range p.actions {
		updates[action.Var.Name] = action.Value.Eval(bind)
	}
	//
	return updates
}
