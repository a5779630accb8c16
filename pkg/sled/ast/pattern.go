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

// Pattern represents the raw bit-level match condition of a rule, as a
// sequence of constraints over declared instruction fields.
type Pattern struct {
	Elements []PatternElement
}

// Lisp converts this node into its lisp representation.
func (p *Pattern) Lisp() sexp.SExp {
	elements := []sexp.SExp{symbol("pattern")}
	//
	for _, e := range p.Elements {
		elements = append(elements, e.Lisp())
	}
	//
	return &sexp.List{Elements: elements}
}

// PatternElement represents a single constraint within a pattern.
type PatternElement interface {
	Node
	// Target returns the name of the field this element constrains.
	Target() string
}

// EqElement constrains a field to match a given constant value.
type EqElement struct {
	Field string
	Value uint64
}

// Target returns the name of the field this element constrains.
func (p *EqElement) Target() string { return p.Field }

// Lisp converts this node into its lisp representation.
func (p *EqElement) Lisp() sexp.SExp {
	return list("eq", symbol(p.Field), number(p.Value))
}

// AnyElement matches any value of a field, binding it as an operand of the
// enclosing rule.
type AnyElement struct {
	Field string
}

// Target returns the name of the field this element constrains.
func (p *AnyElement) Target() string { return p.Field }

// Lisp converts this node into its lisp representation.
func (p *AnyElement) Lisp() sexp.SExp {
	return list("any", symbol(p.Field))
}

// SubElement delegates the decoding of a field to another table, binding the
// result as an operand of the enclosing rule.
type SubElement struct {
	Field string
	Table string
}

// Target returns the name of the field this element constrains.
func (p *SubElement) Target() string { return p.Field }

// Lisp converts this node into its lisp representation.
func (p *SubElement) Lisp() sexp.SExp {
	return list("sub", symbol(p.Field), symbol(p.Table))
}
