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

// Package semantic promotes the raw syntax tree of a sled specification into
// its validated semantic model: one Table per named decode table, each
// holding the alternative decode rules (constructors) matchable inside it.
// Four independently elaborated views must agree for every constructor (bit
// pattern, rendering, context updates and operational semantics), and each
// table additionally unifies the exports of its constructors into the one
// descriptor it presents to rules which reference it by name.
package semantic

import (
	"unicode"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/sled/schema"
	"github.com/sled-lang/go-sled/pkg/sled/semantic/disassembly"
	"github.com/sled-lang/go-sled/pkg/sled/semantic/pattern"
	"github.com/sled-lang/go-sled/pkg/util/source"
)

// Env provides the declarations constructors are elaborated against: the
// instruction fields referenced by patterns, and the context variables
// referenced by disassembly actions.
type Env interface {
	pattern.Env
	disassembly.Env
}

// Table represents a named collection of alternative decode rules sharing a
// decoding context.  Constructors accumulate in source-encounter order,
// possibly across several specification fragments reopening the same name,
// and the table's export descriptor is re-unified on every insertion.
// Registration is all-or-nothing: a failing constructor leaves both the
// constructor sequence and the export untouched.
type Table struct {
	// Name of this table, fixed at creation.
	name string
	// Constructors registered so far, in source-encounter order.
	constructors []Constructor
	// Export established by the constructors registered so far.
	export schema.Export
}

// NewTable constructs an empty table with the given name.  A fresh table has
// no constructors and exports nothing; this never fails, even for an invalid
// name (registration is where names are policed).
func NewTable(name string) *Table {
	return &Table{name, nil, schema.NoneExport()}
}

// Name returns the name of this table.
func (p *Table) Name() string {
	return p.name
}

// IsRoot checks whether this is the whole-instruction entry point.  All
// other tables are sub-tables, reached only from the pattern of some rule.
func (p *Table) IsRoot() bool {
	return p.name == schema.RootTable
}

// Export returns the export descriptor this table presents to rules which
// reference it by name.  Since callers reference tables before any specific
// constructor is chosen, this is the unification of the exports of every
// registered constructor.
func (p *Table) Export() schema.Export {
	return p.export
}

// Constructors returns the constructors of this table, in source-encounter
// order.
func (p *Table) Constructors() []Constructor {
	return p.constructors
}

// Register elaborates a raw rule and appends the resulting constructor to
// this table.  The table name is checked first, so that a malformed name
// gives a stable top-level diagnostic without wasting elaboration work; then
// the rule is elaborated (with pattern elaboration as the only fallible
// step); finally the constructor's export is unified into the table's export.
// On any failure the table is left exactly as it was.
func (p *Table) Register(env Env, rule *ast.DefRule, span source.Span) *Error {
	if !isValidName(p.name) {
		return &Error{span, &InvalidNameError{p.name}}
	}
	//
	constructor, err := elaborate(env, rule, span)
	//
	if err != nil {
		return err
	}
	//
	export := constructor.Export()
	// The first constructor establishes the baseline export verbatim; later
	// constructors are unified against whatever has been established so far.
	if len(p.constructors) > 0 {
		var ok bool
		//
		if export, ok = p.export.Unify(constructor.Export()); !ok {
			return &Error{span, &ExportSizeError{p.export, constructor.Export()}}
		}
	}
	// Commit
	p.export = export
	p.constructors = append(p.constructors, constructor)
	//
	return nil
}

// isValidName checks whether a given table name is well formed: a non-empty
// identifier beginning with a letter or underscore.
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	//
	for i, c := range name {
		if c == '_' || unicode.IsLetter(c) {
			continue
		} else if i > 0 && unicode.IsDigit(c) {
			continue
		}
		//
		return false
	}
	//
	return true
}
