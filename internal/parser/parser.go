// Package parser builds internal/ast trees from a internal/lexer token
// stream via hand-rolled recursive descent, assigning a fresh ElemID to
// every node through an ast.NodeIDAllocator and collecting parse errors
// instead of panicking on malformed input.
package parser

import (
	"circuitlint/internal/ast"
	"circuitlint/internal/lexer"
)

type ParseError struct {
	Message  string
	Position ast.Position
}

// Program is the parsed contents of one source file: its function and
// template declarations in source order.
type Program struct {
	Functions []*ast.Function
	Templates []*ast.Template
}

type Parser struct {
	tokens   []lexer.Token
	current  int
	filename string
	fileID   int
	ids      *ast.NodeIDAllocator
	errors   []ParseError
}

// ParseSource scans and parses one named source file, returning the parsed
// program together with any parse errors collected along the way.
func ParseSource(filename string, fileID int, source string) (*Program, []ParseError) {
	tokens, scanErrs := lexer.NewScanner(source).ScanTokens()

	p := &Parser{
		tokens:   tokens,
		filename: filename,
		fileID:   fileID,
		ids:      ast.NewNodeIDAllocator(),
	}
	for _, e := range scanErrs {
		p.errors = append(p.errors, ParseError{Message: e.Message, Position: ast.Position{
			Filename: filename, Line: e.Position.Line, Column: e.Position.Column, Offset: e.Position.Offset,
		}})
	}

	program := &Program{}
	for !p.isAtEnd() {
		switch {
		case p.check(lexer.FUNCTION):
			program.Functions = append(program.Functions, p.parseFunction())
		case p.check(lexer.TEMPLATE):
			program.Templates = append(program.Templates, p.parseTemplate())
		default:
			p.errorAtCurrent("expected 'function' or 'template' declaration")
			p.synchronizeTop()
		}
	}

	return program, p.errors
}

func (p *Parser) parseFunction() *ast.Function {
	start := p.advance() // FUNCTION
	name := p.consumeIdentLexeme("expected function name")
	params := p.parseParamList()
	body := p.parseBlock()

	return &ast.Function{
		Name:   name,
		Params: params,
		Body:   body,
		Meta:   p.meta(start),
	}
}

func (p *Parser) parseTemplate() *ast.Template {
	start := p.advance() // TEMPLATE
	name := p.consumeIdentLexeme("expected template name")
	params := p.parseParamList()
	body := p.parseBlock()

	return &ast.Template{
		Name:   name,
		Params: params,
		Body:   body,
		Meta:   p.meta(start),
	}
}

func (p *Parser) parseParamList() []ast.Ident {
	p.consume(lexer.LEFT_PAREN, "expected '(' after declaration name")
	var params []ast.Ident
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			tok := p.consume(lexer.IDENTIFIER, "expected parameter name")
			params = append(params, ast.Ident{Name: tok.Lexeme, Pos: p.pos(tok)})
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "expected ')' after parameters")
	return params
}

func (p *Parser) meta(start lexer.Token) ast.Metadata {
	return ast.Metadata{
		ElemID: p.ids.Next(),
		Pos:    p.pos(start),
		EndPos: p.pos(p.previous()),
		FileID: p.fileID,
	}
}

func (p *Parser) pos(tok lexer.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
		Offset:   tok.Position.Offset,
	}
}
