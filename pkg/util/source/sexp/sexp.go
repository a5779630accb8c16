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
package sexp

import (
	"strings"
)

// SExp represents a node of the s-expression surface syntax.  A node is either
// a List of zero or more nodes, a Symbol or a quoted String literal.
type SExp interface {
	// IsList checks whether this S-Expression is a list.
	IsList() bool
	// IsSymbol checks whether this S-Expression is a symbol.
	IsSymbol() bool
	// String generates a string representation.
	String() string
}

// ============================================================================
// List
// ============================================================================

// List represents a list of zero or more S-Expressions.
type List struct {
	Elements []SExp
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*List)(nil)

// IsList sets that is a list.
func (l *List) IsList() bool { return true }

// IsSymbol that a List is not a Symbol.
func (l *List) IsSymbol() bool { return false }

// Len gets the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

func (l *List) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, e := range l.Elements {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(e.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// MatchSymbols matches a list which starts with at least n symbols, of which the
// first m match the given strings.
func (l *List) MatchSymbols(n int, symbols ...string) bool {
	if len(l.Elements) < n || len(symbols) > n {
		return false
	}

	for i := 0; i < len(symbols); i++ {
		switch ith := l.Elements[i].(type) {
		case *Symbol:
			if ith.Value != symbols[i] {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// ============================================================================
// Symbol
// ============================================================================

// Symbol represents a terminating symbol.
type Symbol struct {
	Value string
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*Symbol)(nil)

// IsList sets that A Symbol is not a List.
func (s *Symbol) IsList() bool { return false }

// IsSymbol sets tha is a Symbol.
func (s *Symbol) IsSymbol() bool { return true }

func (s *Symbol) String() string { return s.Value }

// ============================================================================
// String
// ============================================================================

// String represents a double-quoted string literal.  These arise in display
// templates, where the rendered text of an instruction is given literally.
type String struct {
	Value string
}

var _ SExp = (*String)(nil)

// IsList sets that a String is not a List.
func (s *String) IsList() bool { return false }

// IsSymbol sets that a String is not a Symbol.
func (s *String) IsSymbol() bool { return false }

func (s *String) String() string { return "\"" + s.Value + "\"" }
