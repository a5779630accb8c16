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

// Package ast defines the raw (untyped) syntax tree of a sled specification,
// as produced by the front end.  Nothing here has been checked beyond basic
// form: field references may dangle, patterns may conflict and exports may
// disagree.  Promotion into the validated semantic model happens in the
// semantic package.
package ast

import (
	"github.com/sled-lang/go-sled/pkg/util/source/sexp"
)

// Node provides common functionality across all elements of the syntax tree.
// For example, it ensures every element can be converted back into its lisp
// form for debugging.  Furthermore, it provides a reference point for
// constructing a suitable source map for reporting syntax errors.
type Node interface {
	// Convert this node into its lisp representation.  This is primarily used
	// for debugging purposes.
	Lisp() sexp.SExp
}

// Spec represents the root of the syntax tree: the contents of one
// specification file.
type Spec struct {
	Declarations []Declaration
}

// Add a new declaration into this specification.
func (p *Spec) Add(decl Declaration) {
	p.Declarations = append(p.Declarations, decl)
}

// Declaration represents a top-level declaration in a sled source file (i.e.
// deffield, defcontext or defrule).
type Declaration interface {
	Node
}

// ============================================================================
// deffield
// ============================================================================

// DefField represents the declaration of an instruction bit field, covering
// bits Lo up to Hi inclusive.
type DefField struct {
	Name string
	Hi   uint
	Lo   uint
}

// Lisp converts this node into its lisp representation.
func (p *DefField) Lisp() sexp.SExp {
	return list("deffield", symbol(p.Name), number(uint64(p.Hi)), number(uint64(p.Lo)))
}

// ============================================================================
// defcontext
// ============================================================================

// DefContext represents the declaration of a decoding-context variable of a
// given bit width.
type DefContext struct {
	Name  string
	Width uint
}

// Lisp converts this node into its lisp representation.
func (p *DefContext) Lisp() sexp.SExp {
	return list("defcontext", symbol(p.Name), number(uint64(p.Width)))
}

// ============================================================================
// defrule
// ============================================================================

// DefRule represents the declaration of one constructor (i.e. one decode
// alternative) for a named table.  The context and execute blocks are
// optional: a rule without an execute block is a pure selector rule.
type DefRule struct {
	// Name of the table this rule belongs to.
	Table string
	// Bit-level match condition.
	Pattern *Pattern
	// Rendering template.
	Display *Display
	// Decoding-context updates (optional).
	Context *Context
	// Operational semantics (optional).
	Execute *Execute
}

// Lisp converts this node into its lisp representation.
func (p *DefRule) Lisp() sexp.SExp {
	elements := []sexp.SExp{symbol("defrule"), symbol(p.Table), p.Pattern.Lisp(), p.Display.Lisp()}
	//
	if p.Context != nil {
		elements = append(elements, p.Context.Lisp())
	}
	//
	if p.Execute != nil {
		elements = append(elements, p.Execute.Lisp())
	}
	//
	return &sexp.List{Elements: elements}
}

// ============================================================================
// Helpers
// ============================================================================

func symbol(value string) sexp.SExp {
	return &sexp.Symbol{Value: value}
}

func list(head string, rest ...sexp.SExp) sexp.SExp {
	elements := append([]sexp.SExp{symbol(head)}, rest...)
	return &sexp.List{Elements: elements}
}
