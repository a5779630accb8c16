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
package pattern

import (
	"fmt"
)

// ErrorKind identifies the root cause of a pattern elaboration failure.
type ErrorKind uint8

const (
	// UnknownField indicates a pattern element referencing an undeclared
	// field.
	UnknownField ErrorKind = iota
	// ConflictingBits indicates two pattern elements constraining the same
	// bits of the instruction word.
	ConflictingBits
	// ValueTooWide indicates an equality constraint whose constant does not
	// fit within its field.
	ValueTooWide
)

// Error is a structured pattern elaboration failure, retaining the offending
// field so that callers can branch on the root cause.
type Error struct {
	// Kind of failure.
	Kind ErrorKind
	// Field on which the failure arose.
	Field string
	// Offending value (for ValueTooWide only).
	Value uint64
}

// Error implements the error interface.
func (p *Error) Error() string {
	switch p.Kind {
	case UnknownField:
		return fmt.Sprintf("unknown field \"%s\"", p.Field)
	case ConflictingBits:
		return fmt.Sprintf("conflicting constraints on bits of field \"%s\"", p.Field)
	case ValueTooWide:
		return fmt.Sprintf("value %d does not fit field \"%s\"", p.Value, p.Field)
	default:
		panic("unknown pattern error")
	}
}
