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

// Display represents the raw rendering template of a rule: the sequence of
// literal text and operand references making up the assembly text of a
// matched instruction.
type Display struct {
	Pieces []DisplayPiece
}

// Lisp converts this node into its lisp representation.
func (p *Display) Lisp() sexp.SExp {
	elements := []sexp.SExp{symbol("display")}
	//
	for _, piece := range p.Pieces {
		elements = append(elements, piece.Lisp())
	}
	//
	return &sexp.List{Elements: elements}
}

// DisplayPiece represents one piece of a display template.
type DisplayPiece interface {
	Node
}

// LiteralPiece renders a fixed piece of text.
type LiteralPiece struct {
	Text string
}

// Lisp converts this node into its lisp representation.
func (p *LiteralPiece) Lisp() sexp.SExp {
	return &sexp.String{Value: p.Text}
}

// OperandPiece renders the value of a named operand bound by the pattern of
// the enclosing rule.
type OperandPiece struct {
	Name string
}

// Lisp converts this node into its lisp representation.
func (p *OperandPiece) Lisp() sexp.SExp {
	return list("op", symbol(p.Name))
}
