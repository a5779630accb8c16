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
	"fmt"

	"github.com/sled-lang/go-sled/pkg/sled/schema"
	"github.com/sled-lang/go-sled/pkg/util/source"
)

// Error represents the failure of a constructor registration.  It pairs the
// source span of the offending constructor with the structural cause of the
// failure: either a failure local to the table layer (an invalid table name,
// or an export-size mismatch), or an error passed through from one of the
// elaboration subsystems.  The cause is embedded as-is, hence callers can
// branch on the root cause with errors.As.
type Error struct {
	// Span of the offending constructor.
	span source.Span
	// Structural cause of the failure.
	cause error
}

// Span returns the source span of the offending constructor.
func (p *Error) Span() source.Span {
	return p.span
}

// Unwrap returns the structural cause of this error.
func (p *Error) Unwrap() error {
	return p.cause
}

// Error implements the error interface.
func (p *Error) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.cause)
}

// InvalidNameError indicates an attempt to register a constructor into a
// table whose name is malformed.  Every registration into such a table fails
// this way, regardless of the constructor itself.
type InvalidNameError struct {
	// The offending table name.
	Name string
}

// Error implements the error interface.
func (p *InvalidNameError) Error() string {
	return fmt.Sprintf("constructor cannot be registered into invalid table name \"%s\"", p.Name)
}

// ExportSizeError indicates a constructor whose export cannot be unified with
// the export established by the constructors registered before it.  A table
// cannot present two widths to callers which reference it without knowing
// which constructor matched.
type ExportSizeError struct {
	// Export established by previously registered constructors.
	Expected schema.Export
	// Export of the offending constructor.
	Got schema.Export
}

// Error implements the error interface.
func (p *ExportSizeError) Error() string {
	return fmt.Sprintf("constructor export %s is incompatible with table export %s", p.Got, p.Expected)
}

// asTableError converts the outcome of a subsystem elaboration into a table
// error, given only the current source span.  This keeps the wrapping
// discipline in one place, rather than duplicating it at every call site.  A
// zero-valued (i.e. nil) subsystem error maps to a nil table error, hence
// call sites can wrap unconditionally without tripping over typed nils.
func asTableError[E interface {
	comparable
	error
}](err E, span source.Span) *Error {
	var empty E
	//
	if err == empty {
		return nil
	}
	//
	return &Error{span, err}
}
