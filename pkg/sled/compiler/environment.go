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

// Environment holds the field and context-variable declarations of a
// compilation run, i.e. everything constructors are elaborated against.
type Environment struct {
	// Declared instruction fields.
	fields map[string]schema.Field
	// Names of declared fields, in declaration order.
	fieldNames []string
	// Declared context variables.
	contexts map[string]schema.ContextVar
	// Names of declared context variables, in declaration order.
	contextNames []string
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ semantic.Env = (*Environment)(nil)

// NewEnvironment constructs an (initially empty) environment.
func NewEnvironment() *Environment {
	return &Environment{
		fields:   make(map[string]schema.Field),
		contexts: make(map[string]schema.ContextVar),
	}
}

// DeclareField registers a new instruction field, returning false if a field
// of the same name was declared already.
func (p *Environment) DeclareField(field schema.Field) bool {
	if _, ok := p.fields[field.Name]; ok {
		return false
	}
	//
	p.fields[field.Name] = field
	p.fieldNames = append(p.fieldNames, field.Name)
	//
	return true
}

// DeclareContext registers a new context variable, returning false if a
// variable of the same name was declared already.
func (p *Environment) DeclareContext(cvar schema.ContextVar) bool {
	if _, ok := p.contexts[cvar.Name]; ok {
		return false
	}
	//
	p.contexts[cvar.Name] = cvar
	p.contextNames = append(p.contextNames, cvar.Name)
	//
	return true
}

// Field returns the declared field of the given name.
func (p *Environment) Field(name string) (schema.Field, bool) {
	field, ok := p.fields[name]
	return field, ok
}

// Context returns the declared context variable of the given name.
func (p *Environment) Context(name string) (schema.ContextVar, bool) {
	cvar, ok := p.contexts[name]
	return cvar, ok
}

// Fields returns every declared field, in declaration order.
func (p *Environment) Fields() []schema.Field {
	fields := make([]schema.Field, len(p.fieldNames))
	//
	for i, name := range p.fieldNames {
		fields[i] = p.fields[name]
	}
	//
	return fields
}

// Contexts returns every declared context variable, in declaration order.
func (p *Environment) Contexts() []schema.ContextVar {
	contexts := make([]schema.ContextVar, len(p.contextNames))
	//
	for i, name := range p.contextNames {
		contexts[i] = p.contexts[name]
	}
	//
	return contexts
}
