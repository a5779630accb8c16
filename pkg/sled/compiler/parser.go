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
	"fmt"
	"strconv"
	"unicode"

	"github.com/sled-lang/go-sled/pkg/sled/ast"
	"github.com/sled-lang/go-sled/pkg/sled/schema"
	"github.com/sled-lang/go-sled/pkg/util/source"
	"github.com/sled-lang/go-sled/pkg/util/source/sexp"
)

// SyntaxError defines the kind of errors which can be reported by this
// compiler.
type SyntaxError = source.SyntaxError

// ParseSourceFile parses the contents of a single sled source file into a raw
// syntax tree, along with a source map for reporting errors against nodes of
// that tree.  Parsing continues after a malformed declaration, hence several
// errors can be reported in one go.
func ParseSourceFile(srcfile *source.File) (*ast.Spec, *source.Map[ast.Node], []SyntaxError) {
	var errors []SyntaxError
	// Parse the surface syntax
	terms, srcmap, err := sexp.ParseAll(srcfile)
	//
	if err != nil {
		return nil, nil, []SyntaxError{*err}
	}
	//
	p := &Parser{srcfile, srcmap, source.NewSourceMap[ast.Node](*srcfile)}
	spec := &ast.Spec{}
	//
	for _, term := range terms {
		decl, errs := p.parseDeclaration(term)
		//
		if len(errs) > 0 {
			errors = append(errors, errs...)
		} else {
			spec.Add(decl)
		}
	}
	//
	return spec, p.nodemap, errors
}

// Parser holds the state of parsing one source file: the surface terms along
// with their spans, and the node map being constructed.
type Parser struct {
	// Source file being parsed.
	srcfile *source.File
	// Maps surface terms to their spans in the original text.
	srcmap *source.Map[sexp.SExp]
	// Maps constructed syntax tree nodes to their spans.
	nodemap *source.Map[ast.Node]
}

// mapSourceNode copies the span of a surface term onto the syntax tree node
// constructed from it.
func (p *Parser) mapSourceNode(from sexp.SExp, to ast.Node) {
	p.nodemap.Put(to, p.srcmap.Get(from))
}

func (p *Parser) syntaxError(term sexp.SExp, msg string) *SyntaxError {
	span := p.srcmap.Get(term)
	return p.srcfile.SyntaxError(span, msg)
}

func (p *Parser) syntaxErrors(term sexp.SExp, msg string) []SyntaxError {
	return []SyntaxError{*p.syntaxError(term, msg)}
}

// ============================================================================
// Declarations
// ============================================================================

func (p *Parser) parseDeclaration(term sexp.SExp) (ast.Declaration, []SyntaxError) {
	list, ok := term.(*sexp.List)
	//
	if !ok || list.Len() == 0 {
		return nil, p.syntaxErrors(term, "expected declaration")
	}
	//
	switch {
	case list.MatchSymbols(1, "deffield"):
		return p.parseDefField(list)
	case list.MatchSymbols(1, "defcontext"):
		return p.parseDefContext(list)
	case list.MatchSymbols(1, "defrule"):
		return p.parseDefRule(list)
	default:
		return nil, p.syntaxErrors(list.Elements[0], "unknown declaration")
	}
}

func (p *Parser) parseDefField(list *sexp.List) (ast.Declaration, []SyntaxError) {
	if list.Len() != 4 {
		return nil, p.syntaxErrors(list, "malformed field declaration")
	}
	//
	name, err := p.parseIdentifier(list.Elements[1])
	if err != nil {
		return nil, []SyntaxError{*err}
	}
	//
	hi, err := p.parseBound(list.Elements[2])
	if err != nil {
		return nil, []SyntaxError{*err}
	}
	//
	lo, err := p.parseBound(list.Elements[3])
	if err != nil {
		return nil, []SyntaxError{*err}
	}
	//
	if lo > hi {
		return nil, p.syntaxErrors(list, "field bounds out of order")
	}
	//
	decl := &ast.DefField{Name: name, Hi: hi, Lo: lo}
	p.mapSourceNode(list, decl)
	//
	return decl, nil
}

func (p *Parser) parseDefContext(list *sexp.List) (ast.Declaration, []SyntaxError) {
	if list.Len() != 3 {
		return nil, p.syntaxErrors(list, "malformed context declaration")
	}
	//
	name, err := p.parseIdentifier(list.Elements[1])
	if err != nil {
		return nil, []SyntaxError{*err}
	}
	//
	width, err := p.parseWidth(list.Elements[2])
	if err != nil {
		return nil, []SyntaxError{*err}
	}
	//
	decl := &ast.DefContext{Name: name, Width: width}
	p.mapSourceNode(list, decl)
	//
	return decl, nil
}

func (p *Parser) parseDefRule(list *sexp.List) (ast.Declaration, []SyntaxError) {
	if list.Len() < 4 {
		return nil, p.syntaxErrors(list, "malformed rule declaration")
	}
	// NOTE: the table name is deliberately not policed here.  Table name
	// validity is the business of the semantic layer, which rejects every
	// registration into a malformed name.
	name, ok := symbolValue(list.Elements[1])
	//
	if !ok {
		return nil, p.syntaxErrors(list.Elements[1], "expected table name")
	}
	//
	rule := &ast.DefRule{Table: name}
	//
	for _, block := range list.Elements[2:] {
		if errs := p.parseRuleBlock(rule, block); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	if rule.Pattern == nil {
		return nil, p.syntaxErrors(list, "rule missing pattern block")
	} else if rule.Display == nil {
		return nil, p.syntaxErrors(list, "rule missing display block")
	}
	//
	p.mapSourceNode(list, rule)
	//
	return rule, nil
}

func (p *Parser) parseRuleBlock(rule *ast.DefRule, term sexp.SExp) []SyntaxError {
	list, ok := term.(*sexp.List)
	//
	if !ok || list.Len() == 0 {
		return p.syntaxErrors(term, "expected rule block")
	}
	//
	switch {
	case list.MatchSymbols(1, "pattern"):
		if rule.Pattern != nil {
			return p.syntaxErrors(list, "duplicate pattern block")
		}
		//
		return p.parsePattern(rule, list)
	case list.MatchSymbols(1, "display"):
		if rule.Display != nil {
			return p.syntaxErrors(list, "duplicate display block")
		}
		//
		return p.parseDisplay(rule, list)
	case list.MatchSymbols(1, "context"):
		if rule.Context != nil {
			return p.syntaxErrors(list, "duplicate context block")
		}
		//
		return p.parseContext(rule, list)
	case list.MatchSymbols(1, "execute"):
		if rule.Execute != nil {
			return p.syntaxErrors(list, "duplicate execute block")
		}
		//
		return p.parseExecute(rule, list)
	default:
		return p.syntaxErrors(list.Elements[0], "unknown rule block")
	}
}

// ============================================================================
// Patterns
// ============================================================================

func (p *Parser) parsePattern(rule *ast.DefRule, list *sexp.List) []SyntaxError {
	pattern := &ast.Pattern{}
	//
	for _, term := range list.Elements[1:] {
		element, err := p.parsePatternElement(term)
		//
		if err != nil {
			return []SyntaxError{*err}
		}
		//
		pattern.Elements = append(pattern.Elements, element)
	}
	//
	p.mapSourceNode(list, pattern)
	rule.Pattern = pattern
	//
	return nil
}

func (p *Parser) parsePatternElement(term sexp.SExp) (ast.PatternElement, *SyntaxError) {
	list, ok := term.(*sexp.List)
	//
	if !ok || list.Len() == 0 {
		return nil, p.syntaxError(term, "expected pattern element")
	}
	//
	var element ast.PatternElement
	//
	switch {
	case list.MatchSymbols(1, "eq"):
		if list.Len() != 3 {
			return nil, p.syntaxError(list, "malformed equality constraint")
		}
		//
		field, err := p.parseIdentifier(list.Elements[1])
		if err != nil {
			return nil, err
		}
		//
		value, err := p.parseNumber(list.Elements[2])
		if err != nil {
			return nil, err
		}
		//
		element = &ast.EqElement{Field: field, Value: value}
	case list.MatchSymbols(1, "any"):
		if list.Len() != 2 {
			return nil, p.syntaxError(list, "malformed wildcard constraint")
		}
		//
		field, err := p.parseIdentifier(list.Elements[1])
		if err != nil {
			return nil, err
		}
		//
		element = &ast.AnyElement{Field: field}
	case list.MatchSymbols(1, "sub"):
		if list.Len() != 3 {
			return nil, p.syntaxError(list, "malformed sub-table constraint")
		}
		//
		field, err := p.parseIdentifier(list.Elements[1])
		if err != nil {
			return nil, err
		}
		//
		table, ok := symbolValue(list.Elements[2])
		if !ok {
			return nil, p.syntaxError(list.Elements[2], "expected table name")
		}
		//
		element = &ast.SubElement{Field: field, Table: table}
	default:
		return nil, p.syntaxError(list.Elements[0], "unknown pattern element")
	}
	//
	p.mapSourceNode(list, element)
	//
	return element, nil
}

// ============================================================================
// Display
// ============================================================================

func (p *Parser) parseDisplay(rule *ast.DefRule, list *sexp.List) []SyntaxError {
	displayAst := &ast.Display{}
	//
	for _, term := range list.Elements[1:] {
		var piece ast.DisplayPiece
		//
		switch term := term.(type) {
		case *sexp.String:
			piece = &ast.LiteralPiece{Text: term.Value}
		case *sexp.List:
			if term.Len() != 2 || !term.MatchSymbols(1, "op") {
				return p.syntaxErrors(term, "malformed operand reference")
			}
			//
			name, err := p.parseIdentifier(term.Elements[1])
			if err != nil {
				return []SyntaxError{*err}
			}
			//
			piece = &ast.OperandPiece{Name: name}
		default:
			return p.syntaxErrors(term, "expected display piece")
		}
		//
		p.mapSourceNode(term, piece)
		displayAst.Pieces = append(displayAst.Pieces, piece)
	}
	//
	p.mapSourceNode(list, displayAst)
	rule.Display = displayAst
	//
	return nil
}

// ============================================================================
// Context
// ============================================================================

func (p *Parser) parseContext(rule *ast.DefRule, list *sexp.List) []SyntaxError {
	context := &ast.Context{}
	//
	for _, term := range list.Elements[1:] {
		action, ok := term.(*sexp.List)
		//
		if !ok || action.Len() != 3 || !action.MatchSymbols(1, "set") {
			return p.syntaxErrors(term, "expected context action")
		}
		//
		name, err := p.parseIdentifier(action.Elements[1])
		if err != nil {
			return []SyntaxError{*err}
		}
		//
		expr, err := p.parseExpr(action.Elements[2])
		if err != nil {
			return []SyntaxError{*err}
		}
		//
		set := &ast.SetAction{Var: name, Expr: expr}
		p.mapSourceNode(action, set)
		context.Actions = append(context.Actions, set)
	}
	//
	p.mapSourceNode(list, context)
	rule.Context = context
	//
	return nil
}

// ============================================================================
// Execute
// ============================================================================

func (p *Parser) parseExecute(rule *ast.DefRule, list *sexp.List) []SyntaxError {
	execute := &ast.Execute{}
	//
	for i, term := range list.Elements[1:] {
		stmt, ok := term.(*sexp.List)
		//
		if !ok || stmt.Len() == 0 {
			return p.syntaxErrors(term, "expected statement")
		}
		//
		switch {
		case stmt.MatchSymbols(1, "assign"):
			if stmt.Len() != 3 {
				return p.syntaxErrors(stmt, "malformed assignment")
			}
			//
			target, err := p.parseIdentifier(stmt.Elements[1])
			if err != nil {
				return []SyntaxError{*err}
			}
			//
			expr, err := p.parseExpr(stmt.Elements[2])
			if err != nil {
				return []SyntaxError{*err}
			}
			//
			assign := &ast.AssignStmt{Target: target, Expr: expr}
			p.mapSourceNode(stmt, assign)
			execute.Statements = append(execute.Statements, assign)
		case stmt.MatchSymbols(1, "export"):
			// Export fixes what the rule yields, hence must come last.
			if i+2 != list.Len() {
				return p.syntaxErrors(stmt, "export must be the final statement")
			}
			//
			export, errs := p.parseExport(stmt)
			if len(errs) > 0 {
				return errs
			}
			//
			execute.Export = export
		default:
			return p.syntaxErrors(stmt.Elements[0], "unknown statement")
		}
	}
	//
	p.mapSourceNode(list, execute)
	rule.Execute = execute
	//
	return nil
}

func (p *Parser) parseExport(list *sexp.List) (*ast.ExportStmt, []SyntaxError) {
	if list.Len() != 2 {
		return nil, p.syntaxErrors(list, "malformed export statement")
	}
	//
	inner, ok := list.Elements[1].(*sexp.List)
	//
	if !ok || inner.Len() != 3 {
		return nil, p.syntaxErrors(list.Elements[1], "malformed export descriptor")
	}
	//
	var kind ast.ExportKind
	//
	switch {
	case inner.MatchSymbols(1, "const"):
		kind = ast.EXPORT_CONST
	case inner.MatchSymbols(1, "value"):
		kind = ast.EXPORT_VALUE
	case inner.MatchSymbols(1, "ref"):
		kind = ast.EXPORT_REF
	default:
		return nil, p.syntaxErrors(inner.Elements[0], "unknown export kind")
	}
	//
	width, err := p.parseWidth(inner.Elements[1])
	if err != nil {
		return nil, []SyntaxError{*err}
	}
	//
	value, err := p.parseExpr(inner.Elements[2])
	if err != nil {
		return nil, []SyntaxError{*err}
	}
	//
	export := &ast.ExportStmt{Kind: kind, Width: width, Value: value}
	p.mapSourceNode(list, export)
	//
	return export, nil
}

// ============================================================================
// Expressions
// ============================================================================

func (p *Parser) parseExpr(term sexp.SExp) (ast.Expr, *SyntaxError) {
	var expr ast.Expr
	//
	switch term := term.(type) {
	case *sexp.Symbol:
		if isNumber(term.Value) {
			value, err := strconv.ParseUint(term.Value, 0, 64)
			//
			if err != nil {
				return nil, p.syntaxError(term, "malformed number")
			}
			//
			expr = &ast.Number{Value: value}
		} else {
			expr = &ast.VarAccess{Name: term.Value}
		}
	case *sexp.List:
		if term.Len() != 3 {
			return nil, p.syntaxError(term, "malformed binary expression")
		}
		//
		op, ok := symbolValue(term.Elements[0])
		//
		if !ok || !isBinaryOp(op) {
			return nil, p.syntaxError(term.Elements[0], "unknown binary operator")
		}
		//
		lhs, err := p.parseExpr(term.Elements[1])
		if err != nil {
			return nil, err
		}
		//
		rhs, err := p.parseExpr(term.Elements[2])
		if err != nil {
			return nil, err
		}
		//
		expr = &ast.Binary{Op: op, Lhs: lhs, Rhs: rhs}
	default:
		return nil, p.syntaxError(term, "expected expression")
	}
	//
	p.mapSourceNode(term, expr)
	//
	return expr, nil
}

// ============================================================================
// Terminals
// ============================================================================

func (p *Parser) parseIdentifier(term sexp.SExp) (string, *SyntaxError) {
	name, ok := symbolValue(term)
	//
	if !ok || name == "" || isNumber(name) {
		return "", p.syntaxError(term, "expected identifier")
	}
	//
	return name, nil
}

func (p *Parser) parseNumber(term sexp.SExp) (uint64, *SyntaxError) {
	name, ok := symbolValue(term)
	//
	if !ok || !isNumber(name) {
		return 0, p.syntaxError(term, "expected number")
	}
	//
	value, err := strconv.ParseUint(name, 0, 64)
	//
	if err != nil {
		return 0, p.syntaxError(term, "malformed number")
	}
	//
	return value, nil
}

func (p *Parser) parseBound(term sexp.SExp) (uint, *SyntaxError) {
	value, err := p.parseNumber(term)
	//
	if err != nil {
		return 0, err
	} else if value > schema.MaxFieldBit {
		return 0, p.syntaxError(term, fmt.Sprintf("bit position exceeds %d", schema.MaxFieldBit))
	}
	//
	return uint(value), nil
}

func (p *Parser) parseWidth(term sexp.SExp) (uint, *SyntaxError) {
	value, err := p.parseNumber(term)
	//
	if err != nil {
		return 0, err
	} else if value == 0 {
		return 0, p.syntaxError(term, "width cannot be zero")
	} else if value > schema.MaxFieldBit+1 {
		return 0, p.syntaxError(term, fmt.Sprintf("width exceeds %d", schema.MaxFieldBit+1))
	}
	//
	return uint(value), nil
}

func symbolValue(term sexp.SExp) (string, bool) {
	if symbol, ok := term.(*sexp.Symbol); ok {
		return symbol.Value, true
	}
	//
	return "", false
}

func isNumber(token string) bool {
	return token != "" && unicode.IsDigit(rune(token[0]))
}

func isBinaryOp(op string) bool {
	switch op {
	case "+", "-", "&", "|", "^", "<<", ">>":
		return true
	default:
		return false
	}
}
