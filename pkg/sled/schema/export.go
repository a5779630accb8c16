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
package schema

import (
	"fmt"
)

// ExportKind distinguishes the different shapes of value a table can present
// to rules which reference it as an operand.
type ExportKind uint8

const (
	// NONE indicates no produced value (i.e. a pure control table).
	NONE ExportKind = iota
	// CONST indicates a value known at elaboration time.
	CONST
	// VALUE indicates a value known only at decode / execution time.
	VALUE
	// REFERENCE indicates an address or register-like location, rather than a
	// value.
	REFERENCE
	// MULTIPLE indicates constructors which disagree on kind, but agree on
	// width.
	MULTIPLE
)

// String returns a human-readable name for this export kind.
func (k ExportKind) String() string {
	switch k {
	case NONE:
		return "none"
	case CONST:
		return "const"
	case VALUE:
		return "value"
	case REFERENCE:
		return "reference"
	case MULTIPLE:
		return "multiple"
	default:
		panic("unknown export kind")
	}
}

// Export describes the externally visible result shape of a table: the kind
// of value it yields when referenced as an operand from another table's rule,
// along with its width.  Every non-NONE export carries a strictly positive
// width, whilst NONE carries none.
type Export struct {
	kind  ExportKind
	width Width
}

// NoneExport constructs the export of a table producing no value.
func NoneExport() Export {
	return Export{NONE, 0}
}

// NewExport constructs an export of a given (non-NONE) kind and width.  This
// will panic if the width is zero, since such an export makes no sense.
func NewExport(kind ExportKind, width Width) Export {
	if kind == NONE {
		panic("none export cannot carry a width")
	} else if width == 0 {
		panic("export must have non-zero width")
	}
	//
	return Export{kind, width}
}

// Kind returns the kind of this export.
func (e Export) Kind() ExportKind {
	return e.kind
}

// IsNone checks whether this export produces no value at all.
func (e Export) IsNone() bool {
	return e.kind == NONE
}

// Width returns the width of this export, if it has one.
func (e Export) Width() (Width, bool) {
	if e.kind == NONE {
		return 0, false
	}
	//
	return e.width, true
}

// Unify folds the export of a newly observed constructor into this export,
// producing the combined export for the enclosing table.  The first non-NONE
// export observed fixes the baseline kind; later exports of the same width
// but a different kind are promoted to MULTIPLE, since callers only need the
// width.  Exports of differing widths (including mixing NONE with non-NONE)
// cannot be combined, and unification fails.
func (e Export) Unify(other Export) (Export, bool) {
	switch {
	case e.kind == NONE && other.kind == NONE:
		return e, true
	case e.kind == NONE || other.kind == NONE:
		// No common width exists, so fail closed.
		return e, false
	case e.width != other.width:
		return e, false
	case e.kind == other.kind:
		return e, true
	default:
		return Export{MULTIPLE, e.width}, true
	}
}

func (e Export) String() string {
	if e.kind == NONE {
		return "none"
	}
	//
	return fmt.Sprintf("%s(%d)", e.kind, e.width)
}
