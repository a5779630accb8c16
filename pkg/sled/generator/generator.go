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

// Package generator emits Go decoder source from a compiled schema.  The
// generated file carries one match table per schema table (mask / test word
// pairs in constructor order), which a decoder walks to select the matching
// constructor for a given instruction word.
package generator

import (
	"github.com/consensys/bavard"

	"github.com/sled-lang/go-sled/pkg/sled/compiler"
	"github.com/sled-lang/go-sled/pkg/sled/semantic"
)

const copyrightHolder = "Consensys Software Inc."

// TemplateData packages up a compiled schema for consumption by the decoder
// template.
type TemplateData struct {
	// Declared instruction fields.
	Fields []FieldData
	// Match tables, in order of first mention.
	Tables []TableData
}

// FieldData describes one instruction field for the decoder template.
type FieldData struct {
	Name string
	Mask uint64
	Lo   uint
}

// TableData describes one match table for the decoder template.
type TableData struct {
	Name string
	// Export descriptor, as rendered text.
	Export string
	// Whether this is the whole-instruction entry point.
	Root bool
	// Match rows, in constructor order.
	Rows []RowData
}

// RowData describes one constructor of a match table: a word w selects this
// row exactly when w & Mask == Test.
type RowData struct {
	Mask uint64
	Test uint64
}

// Generate emits a Go source file containing the decode tables of a compiled
// schema, using the templates found in the given directory.
func Generate(schema *compiler.Schema, pkg string, templates string, output string) error {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-sled")
	//
	return bgen.Generate(lower(schema), pkg, templates,
		bavard.Entry{
			File:      output,
			Templates: []string{"decoder.go.tmpl"},
		},
	)
}

func lower(schema *compiler.Schema) TemplateData {
	var data TemplateData
	//
	for _, field := range schema.Environment().Fields() {
		data.Fields = append(data.Fields, FieldData{field.Name, field.Mask(), field.Lo})
	}
	//
	for _, table := range schema.Tables() {
		data.Tables = append(data.Tables, lowerTable(table))
	}
	//
	return data
}

func lowerTable(table *semantic.Table) TableData {
	data := TableData{
		Name:   table.Name(),
		Export: table.Export().String(),
		Root:   table.IsRoot(),
	}
	//
	for _, constructor := range table.Constructors() {
		pattern := constructor.Pattern()
		data.Rows = append(data.Rows, RowData{pattern.Mask(), pattern.Test()})
	}
	//
	return data
}
