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
package compiler

import (
	"github.com/sled-lang/go-sled/pkg/sled/schema"
	"github.com/sled-lang/go-sled/pkg/sled/semantic"
)

// Registry owns every table of one compilation run, keyed by name.  A table
// is created empty on its first mention, and every later mention (e.g. a
// specification fragment reopening the name, or a pattern referencing the
// table as an operand) observes the same table.  Tables are never deleted;
// they live for the whole compilation.
type Registry struct {
	// Maps table names to their index in the arena.
	tabmap map[string]uint
	// Arena of tables, in order of first mention.
	tables []*semantic.Table
}

// NewRegistry constructs an (initially empty) table registry.
func NewRegistry() *Registry {
	return &Registry{make(map[string]uint), nil}
}

// TableOf returns the table of the given name, creating it empty on first
// mention.
func (p *Registry) TableOf(name string) *semantic.Table {
	if index, ok := p.tabmap[name]; ok {
		return p.tables[index]
	}
	//
	table := semantic.NewTable(name)
	p.tabmap[name] = uint(len(p.tables))
	p.tables = append(p.tables, table)
	//
	return table
}

// Has checks whether a table of the given name has been mentioned yet.
func (p *Registry) Has(name string) bool {
	_, ok := p.tabmap[name]
	return ok
}

// Tables returns every table of this run, in order of first mention.
func (p *Registry) Tables() []*semantic.Table {
	return p.tables
}

// Root returns the whole-instruction entry point, if it has been mentioned.
func (p *Registry) Root() (*semantic.Table, bool) {
	if index, ok := p.tabmap[schema.RootTable]; ok {
		return p.tables[index], true
	}
	//
	return nil, false
}
