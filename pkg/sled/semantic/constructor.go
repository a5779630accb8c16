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
package semantic

import (
	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/sled/schema"
	"github.com/sled-lang/go-sled/pkg/sled/semantic/disassembly"
	"github.com/sled-lang/go-sled/pkg/sled/semantic/display"
	"github.com/sled-lang/go-sled/pkg/sled/semantic/execution"
	"github.com/sled-lang/go-sled/pkg/sled/semantic/pattern"
	"github.com/sled-lang/go-sled/pkg/util"
	"github.com/sled-lang/go-sled/pkg/util/source"
)

// Constructor represents one fully elaborated decode rule of a table: its bit
// pattern, its rendering template, its decoding-context updates and
// (optionally) its operational semantics.  A rule without semantics is a pure
// structural / selector rule.  Constructors are immutable once built.
type Constructor struct {
	pattern     pattern.Pattern
	display     display.Renderer
	disassembly disassembly.Disassembly
	execution   util.Option[execution.Execution]
	// Span of the rule this constructor was elaborated from.
	span source.Span
}

// elaborate promotes a raw rule into a constructor, invoking the four
// elaboration subsystems in turn.  Pattern elaboration comes first and is the
// only fallible step at this layer: its failure is wrapped with the source
// span of the rule and becomes the cause of the table-level error.  The
// remaining subsystems are infallible by contract, with their invariants
// guaranteed upstream.
func elaborate(env Env, rule *ast.DefRule, span source.Span) (Constructor, *Error) {
	pat, patErr := pattern.Elaborate(env, rule.Pattern)
	//
	if err := asTableError(patErr, span); err != nil {
		return Constructor{}, err
	}
	//
	disp := display.Elaborate(rule.Display)
	// Absent semantics denote a pure selector rule.
	exec := util.None[execution.Execution]()
	//
	if rule.Execute != nil {
		exec = util.Some(execution.Elaborate(rule.Execute))
	}
	//
	disasm := disassembly.Elaborate(env, rule.Context)
	//
	return Constructor{pat, disp, disasm, exec, span}, nil
}

// Pattern returns the elaborated bit pattern of this constructor.
func (p *Constructor) Pattern() pattern.Pattern {
	return p.pattern
}

// Display returns the elaborated rendering template of this constructor.
func (p *Constructor) Display() display.Renderer {
	return p.display
}

// Disassembly returns the elaborated context updates of this constructor.
func (p *Constructor) Disassembly() disassembly.Disassembly {
	return p.disassembly
}

// Execution returns the elaborated semantics of this constructor, which are
// absent for pure selector rules.
func (p *Constructor) Execution() util.Option[execution.Execution] {
	return p.execution
}

// Span returns the source span of the rule this constructor was elaborated
// from.
func (p *Constructor) Span() source.Span {
	return p.span
}

// Export returns the export descriptor of this constructor: what it yields
// when its table is referenced as an operand from another table.
func (p *Constructor) Export() schema.Export {
	if p.execution.IsEmpty() {
		return schema.NoneExport()
	}
	//
	exec := p.execution.Unwrap()
	//
	return exec.Export()
}
