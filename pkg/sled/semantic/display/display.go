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

// Package display elaborates the raw rendering template of a rule into a
// renderer for the assembly text of a matched instruction.  Elaboration is
// infallible at this layer: the resolver has already checked that every
// operand reference is bound by the pattern of the enclosing rule.
package display

import (
	"strings"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
)

// Piece represents one piece of an elaborated display template: either a
// literal run of text, or a slot filled by a named operand.
type Piece struct {
	// Literal text (empty for an operand slot).
	Literal string
	// Operand name (empty for a literal run).
	Operand string
}

// Renderer represents the elaborated rendering template of a rule.
type Renderer struct {
	pieces []Piece
}

// Elaborate a raw display template.
func Elaborate(raw *ast.Display) Renderer {
	pieces := make([]Piece, len(raw.Pieces))
	//
	for i, piece := range raw.Pieces {
		switch piece := piece.(type) {
		case *ast.LiteralPiece:
			pieces[i] = Piece{Literal: piece.Text}
		case *ast.OperandPiece:
			pieces[i] = Piece{Operand: piece.Name}
		default:
			panic("unknown display piece")
		}
	}
	//
	return Renderer{pieces}
}

// Pieces returns the pieces of this template, in rendering order.
func (p *Renderer) Pieces() []Piece {
	return p.pieces
}

// Operands returns the names of all operands referenced by this template, in
// rendering order.
func (p *Renderer) Operands() []string {
	var operands []string
	//
	for _, piece := range p.pieces {
		if piece.Operand != "" {
			operands = append(operands, piece.Operand)
		}
	}
	//
	return operands
}

// Render the assembly text of a matched instruction, reading operand values
// through the given binding.
func (p *Renderer) Render(bind func(string) string) string {
	var builder strings.Builder
	//
	for _, piece := range p.pieces {
		if piece.Operand != "" {
			builder.WriteString(bind(piece.Operand))
		} else {
			builder.WriteString(piece.Literal)
		}
	}
	//
	return builder.String()
}
