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

// Schema represents a successfully compiled specification: the declaration
// environment along with every table, in order of first mention.  This is
// what the downstream code generator consumes to produce decode / dispatch
// logic and to type-check cross-table operand references.
type Schema struct {
	env    *Environment
	tables []*semantic.Table
}

// Environment returns the declaration environment of this schema.
func (p *Schema) Environment() *Environment {
	return p.env
}

// Tables returns every table of this schema, in order of first mention.
func (p *Schema) Tables() []*semantic.Table {
	return p.tables
}

// TableOf returns the table of the given name, if any rule defined one.
func (p *Schema) TableOf(name string) (*semantic.Table, bool) {
	for _, table := range p.tables {
		if table.Name() == name {
			return table, true
		}
	}
	//
	return nil, false
}

// Root returns the whole-instruction entry point, if the specification
// defined one.
func (p *Schema) Root() (*semantic.Table, bool) {
	return p.TableOf(schema.RootTable)
}
