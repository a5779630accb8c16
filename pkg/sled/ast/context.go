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

// Context represents the raw decoding-context updates of a rule: the actions
// performed on a successful match, which drive further decoding.
type Context struct {
	Actions []*SetAction
}

// Lisp converts this node into its lisp representation.
func (p *Context) Lisp() sexp.SExp {
	elements := []sexp.SExp{symbol("context")}
	//
	for _, action := range p.Actions {
		elements = append(elements, action.Lisp())
	}
	//
	return &sexp.List{Elements: elements}
}

// SetAction assigns the value of an expression to a declared context
// variable.
type SetAction struct {
	Var  string
	Expr Expr
}

// Lisp converts this node into its lisp representation.
func (p *SetAction) Lisp() sexp.SExp {
	return list("set", symbol(p.Var), p.Expr.Lisp())
}
