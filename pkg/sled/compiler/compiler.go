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

// Package compiler drives the promotion of sled source files into a compiled
// schema: it parses every file into a raw syntax tree, builds the declaration
// environment, and registers each rule into its owning table via the semantic
// layer.  A failing rule aborts only its own registration; compilation
// carries on, and every error is reported against its originating source
// line.
package compiler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/sled/schema"
	"github.com/sled-lang/go-sled/pkg/util/source"
)

// CompileSourceFiles compiles one or more source files into a schema.
func CompileSourceFiles(config Config, srcfiles []*source.File) (*Schema, []SyntaxError) {
	specs := make([]*ast.Spec, 0, len(srcfiles))
	srcmaps := source.NewSourceMaps[ast.Node]()
	// (for now) at most one error per source file is supported.
	var errors []SyntaxError
	//
	for _, srcfile := range srcfiles {
		spec, srcmap, errs := ParseSourceFile(srcfile)
		// Handle errors
		if len(errs) > 0 {
			errors = append(errors, errs...)
			continue
		}
		//
		specs = append(specs, spec)
		srcmaps.Join(srcmap)
	}
	// Check for parsing errors
	if len(errors) > 0 {
		return nil, errors
	}
	// Compile each specification into the schema
	return NewCompiler(config, specs, srcmaps).Compile()
}

// CompileSourceFile compiles exactly one source file into a schema.  This is
// really a helper function for e.g. the testing environment.
func CompileSourceFile(config Config, srcfile *source.File) (*Schema, []SyntaxError) {
	return CompileSourceFiles(config, []*source.File{srcfile})
}

// Compiler packages up everything needed to compile a given set of
// specification fragments down into a schema.  Observe that the compiler may
// fail if the fragments are malformed in some way (e.g. rules whose patterns
// conflict, or whose exports cannot be unified).
type Compiler struct {
	// Configuration of this compilation run.
	config Config
	// Specification fragments being compiled.
	specs []*ast.Spec
	// Source maps nodes in the fragments back to the spans in their original
	// source files.
	srcmap *source.Maps[ast.Node]
	// Declaration environment being constructed by the compiler.
	env *Environment
	// Table registry being constructed by the compiler.
	registry *Registry
}

// NewCompiler constructs a new compiler for a given set of specification
// fragments.
func NewCompiler(config Config, specs []*ast.Spec, srcmap *source.Maps[ast.Node]) *Compiler {
	return &Compiler{config, specs, srcmap, NewEnvironment(), NewRegistry()}
}

// Compile is the top-level function of the sled compiler, which promotes the
// given specification fragments down into a schema.  This can fail in a
// variety of ways if the fragments are malformed.
func (p *Compiler) Compile() (*Schema, []SyntaxError) {
	// Declarations first, since rules in one fragment can reference fields
	// declared in another.
	errors := p.declareAll()
	// Register every rule into its owning table.
	errors = append(errors, p.registerAll()...)
	// Finally, check cross-table references line up.
	errors = append(errors, p.link()...)
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return &Schema{p.env, p.registry.Tables()}, nil
}

func (p *Compiler) declareAll() []SyntaxError {
	var errors []SyntaxError
	//
	for _, spec := range p.specs {
		for _, decl := range spec.Declarations {
			switch decl := decl.(type) {
			case *ast.DefField:
				errors = append(errors, p.declareField(decl)...)
			case *ast.DefContext:
				if !p.env.DeclareContext(schema.ContextVar{Name: decl.Name, Width: schema.Width(decl.Width)}) {
					errors = append(errors, *p.srcmap.SyntaxError(decl,
						fmt.Sprintf("context variable \"%s\" already declared", decl.Name)))
				}
			}
		}
	}
	//
	return errors
}

func (p *Compiler) declareField(decl *ast.DefField) []SyntaxError {
	if decl.Hi >= p.config.WordWidth {
		return p.srcmap.SyntaxErrors(decl,
			fmt.Sprintf("field \"%s\" exceeds %d-bit instruction word", decl.Name, p.config.WordWidth))
	}
	//
	if !p.env.DeclareField(schema.NewField(decl.Name, decl.Hi, decl.Lo)) {
		return p.srcmap.SyntaxErrors(decl, fmt.Sprintf("field \"%s\" already declared", decl.Name))
	}
	//
	return nil
}

func (p *Compiler) registerAll() []SyntaxError {
	var (
		errors   []SyntaxError
		resolver = resolver{p.env, p.srcmap}
	)
	//
	for _, spec := range p.specs {
		for _, decl := range spec.Declarations {
			rule, ok := decl.(*ast.DefRule)
			//
			if !ok {
				continue
			}
			// Discharge the invariants the infallible elaborators rely on.
			if errs := resolver.resolveRule(rule); len(errs) > 0 {
				errors = append(errors, errs...)
				continue
			}
			//
			table := p.registry.TableOf(rule.Table)
			span := p.srcmap.Get(rule)
			// Register rule, aborting only this rule on failure.
			if err := table.Register(p.env, rule, span); err != nil {
				errors = append(errors, *p.srcmap.SyntaxError(rule, err.Unwrap().Error()))
				continue
			}
			//
			log.Debugf("registered constructor %d of table \"%s\" (export %s)",
				len(table.Constructors()), table.Name(), table.Export())
		}
	}
	//
	return errors
}

// link checks that every sub-table reference names a table some rule defines,
// and that the root table exists when the configuration demands one.
func (p *Compiler) link() []SyntaxError {
	var errors []SyntaxError
	//
	for _, spec := range p.specs {
		for _, decl := range spec.Declarations {
			rule, ok := decl.(*ast.DefRule)
			//
			if !ok {
				continue
			}
			//
			for _, element := range rule.Pattern.Elements {
				sub, ok := element.(*ast.SubElement)
				//
				if !ok || p.registry.Has(sub.Table) {
					continue
				}
				//
				if p.config.Strict {
					errors = append(errors, *p.srcmap.SyntaxError(sub,
						fmt.Sprintf("no rule defines table \"%s\"", sub.Table)))
				} else {
					log.Warnf("no rule defines table \"%s\"", sub.Table)
				}
			}
		}
	}
	//
	if _, ok := p.registry.Root(); p.config.RequireRoot && !ok {
		errors = append(errors, *syntaxErrorAt(p.specs, p.srcmap,
			fmt.Sprintf("specification never defines table \"%s\"", schema.RootTable)))
	}
	//
	return errors
}

// syntaxErrorAt constructs an error against the first declaration available,
// for failures which concern the specification as a whole.
func syntaxErrorAt(specs []*ast.Spec, srcmap *source.Maps[ast.Node], msg string) *SyntaxError {
	for _, spec := range specs {
		for _, decl := range spec.Declarations {
			return srcmap.SyntaxError(decl, msg)
		}
	}
	// An entirely empty specification has nothing to anchor the error to.
	file := source.NewSourceFile("", nil)
	//
	return file.SyntaxError(source.NewSpan(0, 0), msg)
}
