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
	"strings"
	"testing"

	"github.com/sled-lang/go-sled/pkg/sled/schema"
	"github.com/sled-lang/go-sled/pkg/util/source"
)

func Test_Compile_01(t *testing.T) {
	// Minimal specification defining only the root table.
	schematic := compile(t, `
		(deffield op 7 4)
		(deffield rd 3 0)
		(defrule instruction
			(pattern (eq op 0) (any rd))
			(display "nop " (op rd)))
	`)
	//
	root, ok := schematic.Root()
	//
	if !ok {
		t.Fatalf("schema has no root table")
	} else if len(root.Constructors()) != 1 {
		t.Errorf("root table has %d constructor(s), expected 1", len(root.Constructors()))
	} else if !root.Export().IsNone() {
		t.Errorf("root table unexpectedly exports %s", root.Export())
	}
}

func Test_Compile_02(t *testing.T) {
	// A table accumulates constructors across fragments, in encounter order.
	schematic := compile(t, `
		(deffield op 7 4)
		(deffield rd 3 0)
		(defrule instruction
			(pattern (eq op 0) (any rd))
			(display "inc " (op rd)))
	`, `
		(defrule instruction
			(pattern (eq op 1) (any rd))
			(display "dec " (op rd)))
	`)
	//
	root, ok := schematic.Root()
	//
	if !ok {
		t.Fatalf("schema has no root table")
	} else if len(root.Constructors()) != 2 {
		t.Fatalf("root table has %d constructor(s), expected 2", len(root.Constructors()))
	}
	// Encounter order is preserved across fragments.
	first := root.Constructors()[0].Pattern()
	second := root.Constructors()[1].Pattern()
	//
	if first.Test() != 0x00 {
		t.Errorf("first constructor tests %#x, expected 0x00", first.Test())
	} else if second.Test() != 0x10 {
		t.Errorf("second constructor tests %#x, expected 0x10", second.Test())
	}
}

func Test_Compile_03(t *testing.T) {
	// Sub-table references resolve against rules in any fragment, and the
	// referenced table derives its export from its own rules.
	schematic := compile(t, `
		(deffield op 7 4)
		(deffield rd 3 2)
		(deffield rs 1 0)
		(defrule instruction
			(pattern (eq op 2) (sub rd reg) (any rs))
			(display "mov " (op rd) ", " (op rs)))
		(defrule reg
			(pattern (any rd))
			(display "x" (op rd))
			(execute (export (ref 4 rd))))
	`)
	//
	if len(schematic.Tables()) != 2 {
		t.Fatalf("schema has %d table(s), expected 2", len(schematic.Tables()))
	}
	//
	reg, ok := schematic.TableOf("reg")
	//
	if !ok {
		t.Fatalf("schema has no table \"reg\"")
	} else if reg.Export() != schema.NewExport(schema.REFERENCE, 4) {
		t.Errorf("table \"reg\" exports %s, expected reference(4)", reg.Export())
	}
}

func Test_Compile_04(t *testing.T) {
	// Context declarations feed both disassembly actions and expressions.
	schematic := compile(t, `
		(deffield op 7 4)
		(deffield imm 3 0)
		(defcontext mode 2)
		(defrule instruction
			(pattern (eq op 3) (any imm))
			(display "setm " (op imm))
			(context (set mode (& imm 3)))
			(execute (assign pc (+ imm mode))))
	`)
	//
	root, _ := schematic.Root()
	constructor := root.Constructors()[0]
	disassembly := constructor.Disassembly()
	//
	if len(disassembly.Actions()) != 1 {
		t.Errorf("constructor has %d context action(s), expected 1", len(disassembly.Actions()))
	}
	//
	if constructor.Execution().IsEmpty() {
		t.Errorf("constructor semantics unexpectedly absent")
	}
}

func Test_Compile_05(t *testing.T) {
	checkFails(t, `
		(deffield op 7 4)
		(deffield op 3 0)
	`, "already declared")
}

func Test_Compile_06(t *testing.T) {
	checkFails(t, `
		(defcontext mode 2)
		(defcontext mode 4)
	`, "already declared")
}

func Test_Compile_07(t *testing.T) {
	// Fields must fit within the configured instruction word.
	checkFails(t, `
		(deffield op 32 28)
	`, "exceeds 32-bit instruction word")
}

func Test_Compile_08(t *testing.T) {
	// Pattern failures are reported against the offending rule.
	checkFails(t, `
		(deffield op 7 4)
		(defrule instruction
			(pattern (eq nosuch 0))
			(display "nop"))
	`, "unknown field \"nosuch\"")
}

func Test_Compile_09(t *testing.T) {
	// Display templates can only reference operands bound by the pattern.
	checkFails(t, `
		(deffield op 7 4)
		(deffield rd 3 0)
		(defrule instruction
			(pattern (eq op 0))
			(display "nop " (op rd)))
	`, "operand \"rd\" not bound by pattern")
}

func Test_Compile_10(t *testing.T) {
	// Context actions can only target declared context variables.
	checkFails(t, `
		(deffield op 7 4)
		(defrule instruction
			(pattern (eq op 0))
			(display "nop")
			(context (set mode 1)))
	`, "unknown context variable \"mode\"")
}

func Test_Compile_11(t *testing.T) {
	// Expressions can only access pattern operands and context variables.
	checkFails(t, `
		(deffield op 7 4)
		(defrule instruction
			(pattern (eq op 0))
			(display "nop")
			(execute (assign pc (+ pc 4))))
	`, "unknown variable \"pc\"")
}

func Test_Compile_12(t *testing.T) {
	// Conflicting exports across rules of one table are reported.
	checkFails(t, `
		(deffield op 7 4)
		(deffield rd 3 0)
		(defrule imm
			(pattern (any rd))
			(display (op rd))
			(execute (export (value 4 rd))))
		(defrule imm
			(pattern (eq rd 0))
			(display "zero")
			(execute (export (value 8 0))))
		(defrule instruction
			(pattern (eq op 0) (sub rd imm))
			(display "ld " (op rd)))
	`, "incompatible with table export")
}

func Test_Compile_13(t *testing.T) {
	// Malformed table names are rejected at registration.
	checkFails(t, `
		(deffield op 7 4)
		(defrule instruction
			(pattern (eq op 0))
			(display "nop"))
		(defrule bad-name
			(pattern (eq op 1))
			(display "bad"))
	`, "invalid table name")
}

func Test_Compile_14(t *testing.T) {
	// Under strict linking, dangling sub-table references are errors.
	checkFails(t, `
		(deffield op 7 4)
		(deffield rd 3 0)
		(defrule instruction
			(pattern (eq op 0) (sub rd nosuch))
			(display "ld " (op rd)))
	`, "no rule defines table \"nosuch\"")
	// Outside strict linking, they only warn.
	config := DefaultConfig()
	config.Strict = false
	//
	schematic := compileWith(t, config, `
		(deffield op 7 4)
		(deffield rd 3 0)
		(defrule instruction
			(pattern (eq op 0) (sub rd nosuch))
			(display "ld " (op rd)))
	`)
	//
	if len(schematic.Tables()) != 1 {
		t.Errorf("schema has %d table(s), expected 1", len(schematic.Tables()))
	}
}

func Test_Compile_15(t *testing.T) {
	// The root table can be demanded by configuration.
	config := DefaultConfig()
	config.RequireRoot = true
	//
	srcfile := source.NewSourceFile("test.sled", []byte(`
		(deffield op 7 4)
		(defrule aux
			(pattern (eq op 0))
			(display "nop"))
	`))
	//
	_, errs := CompileSourceFile(config, srcfile)
	//
	checkReported(t, errs, "never defines table \"instruction\"")
}

func Test_Compile_16(t *testing.T) {
	// One failing rule aborts only itself; failures elsewhere are all
	// reported together.
	srcfile := source.NewSourceFile("test.sled", []byte(`
		(deffield op 7 4)
		(defrule instruction
			(pattern (eq nosuch 0))
			(display "bad"))
		(defrule instruction
			(pattern (eq op 16))
			(display "wide"))
	`))
	//
	_, errs := CompileSourceFile(DefaultConfig(), srcfile)
	//
	if len(errs) != 2 {
		t.Errorf("compilation reported %d error(s), expected 2", len(errs))
	}
	//
	checkReported(t, errs, "unknown field \"nosuch\"")
	checkReported(t, errs, "does not fit field \"op\"")
}

func Test_Compile_17(t *testing.T) {
	// Malformed surface syntax surfaces as parse errors.
	checkFails(t, `(defwidget gizmo)`, "unknown declaration")
	checkFails(t, `(deffield op 7)`, "malformed field declaration")
	checkFails(t, `
		(defrule instruction
			(display "nop")
			(context))
	`, "missing pattern block")
	checkFails(t, `
		(defrule instruction
			(pattern)
			(display "nop")
			(execute (export (value 4 0)) (assign x 1)))
	`, "export must be the final statement")
	checkFails(t, `
		(defrule instruction
			(pattern)
			(display "nop")
			(execute (export (value 0 0))))
	`, "width cannot be zero")
}

func Test_Compile_18(t *testing.T) {
	// End-to-end compilation of the toy machine specification on disk.
	srcfiles, err := source.ReadFiles("../../../testdata/toy8.sled")
	//
	if err != nil {
		t.Fatalf("reading specification failed: %s", err)
	}
	//
	schematic, errs := CompileSourceFile(DefaultConfig(), &srcfiles[0])
	//
	if len(errs) > 0 {
		t.Fatalf("compilation failed: %s", errs[0].Error())
	} else if len(schematic.Tables()) != 3 {
		t.Fatalf("schema has %d table(s), expected 3", len(schematic.Tables()))
	}
	//
	root, ok := schematic.Root()
	if !ok || len(root.Constructors()) != 4 {
		t.Fatalf("root table missing or wrong arity")
	}
	//
	reg, _ := schematic.TableOf("reg")
	nibble, _ := schematic.TableOf("nibble")
	//
	if reg.Export() != schema.NewExport(schema.REFERENCE, 2) {
		t.Errorf("table \"reg\" exports %s, expected reference(2)", reg.Export())
	} else if nibble.Export() != schema.NewExport(schema.VALUE, 4) {
		t.Errorf("table \"nibble\" exports %s, expected value(4)", nibble.Export())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func compile(t *testing.T, fragments ...string) *Schema {
	return compileWith(t, DefaultConfig(), fragments...)
}

func compileWith(t *testing.T, config Config, fragments ...string) *Schema {
	srcfiles := make([]*source.File, len(fragments))
	//
	for i, fragment := range fragments {
		srcfiles[i] = source.NewSourceFile("test.sled", []byte(fragment))
	}
	//
	schematic, errs := CompileSourceFiles(config, srcfiles)
	//
	if len(errs) > 0 {
		t.Fatalf("compilation failed: %s", errs[0].Error())
	}
	//
	return schematic
}

func checkFails(t *testing.T, fragment string, msg string) {
	srcfile := source.NewSourceFile("test.sled", []byte(fragment))
	//
	_, errs := CompileSourceFile(DefaultConfig(), srcfile)
	//
	checkReported(t, errs, msg)
}

func checkReported(t *testing.T, errs []SyntaxError, msg string) {
	if len(errs) == 0 {
		t.Errorf("compilation should have failed with \"%s\"", msg)
		return
	}
	//
	for _, err := range errs {
		if strings.Contains(err.Message(), msg) {
			return
		}
	}
	//
	t.Errorf("no error mentions \"%s\" (first was \"%s\")", msg, errs[0].Message())
}
