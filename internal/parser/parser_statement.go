package parser

import (
	"circuitlint/internal/ast"
	"circuitlint/internal/lexer"
)

func (p *Parser) parseBlock() *ast.Block {
	start := p.consume(lexer.LEFT_BRACE, "expected '{'")
	var stmts []ast.Statement
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.parseStatement())
	}
	p.consume(lexer.RIGHT_BRACE, "expected '}'")
	return &ast.Block{Stmts: stmts, Meta: p.meta(start)}
}

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.check(lexer.LEFT_BRACE):
		return p.parseBlock()
	case p.check(lexer.IF):
		return p.parseIf()
	case p.check(lexer.WHILE):
		return p.parseWhile()
	case p.check(lexer.RETURN):
		return p.parseReturn()
	case p.check(lexer.LOG):
		return p.parseLogCall()
	case p.check(lexer.ASSERT):
		return p.parseAssert()
	case p.check(lexer.VAR), p.check(lexer.SIGNAL), p.check(lexer.COMPONENT), p.check(lexer.TAG), p.check(lexer.CONST):
		return p.parseDeclarationStatement()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseIf() ast.Statement {
	start := p.advance() // IF
	p.consume(lexer.LEFT_PAREN, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.consume(lexer.RIGHT_PAREN, "expected ')' after condition")
	then := p.parseStatement()

	var elseStmt ast.Statement
	if p.match(lexer.ELSE) {
		elseStmt = p.parseStatement()
	}

	return &ast.IfThenElse{Cond: cond, Then: then, Else: elseStmt, Meta: p.meta(start)}
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.advance() // WHILE
	p.consume(lexer.LEFT_PAREN, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.consume(lexer.RIGHT_PAREN, "expected ')' after condition")
	body := p.parseStatement()

	return &ast.While{Cond: cond, Body: body, Meta: p.meta(start)}
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.advance() // RETURN
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.parseExpr()
	}
	p.consume(lexer.SEMICOLON, "expected ';' after return value")
	return &ast.Return{Value: value, Meta: p.meta(start)}
}

func (p *Parser) parseLogCall() ast.Statement {
	start := p.advance() // LOG
	p.consume(lexer.LEFT_PAREN, "expected '(' after 'log'")
	var args []ast.LogArgument
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if p.check(lexer.STRING) {
				tok := p.advance()
				args = append(args, ast.LogStr{Value: tok.Lexeme})
			} else {
				args = append(args, ast.LogExpr{Value: p.parseExpr()})
			}
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "expected ')' after log arguments")
	p.consume(lexer.SEMICOLON, "expected ';' after log call")
	return &ast.LogCall{Args: args, Meta: p.meta(start)}
}

func (p *Parser) parseAssert() ast.Statement {
	start := p.advance() // ASSERT
	p.consume(lexer.LEFT_PAREN, "expected '(' after 'assert'")
	arg := p.parseExpr()
	p.consume(lexer.RIGHT_PAREN, "expected ')' after assert condition")
	p.consume(lexer.SEMICOLON, "expected ';' after assert")
	return &ast.Assert{Arg: arg, Meta: p.meta(start)}
}

// parseDeclarationStatement parses a bare declaration (`signal s;`) or a
// `var`/`const var` declaration with an optional initializer, desugaring
// the initializer form into an InitializationBlock. The Substitution built
// from the initializer is not marked artificial: its value was written by
// the programmer, so a dead initializer earns the not-artificial warning
// (with the constant suffix for a `const` declaration).
func (p *Parser) parseDeclarationStatement() ast.Statement {
	start := p.peek()
	isConstant := p.match(lexer.CONST)

	var kind ast.VariableType
	switch {
	case p.match(lexer.VAR):
		kind = ast.VarType
	case p.match(lexer.SIGNAL):
		kind = ast.SignalType
	case p.match(lexer.COMPONENT):
		kind = ast.ComponentType
	case p.match(lexer.TAG):
		kind = ast.TagType
	default:
		p.errorAtCurrent("expected a declaration keyword")
		kind = ast.VarType
	}

	name := p.consumeIdentLexeme("expected declared name")
	decl := &ast.Declaration{Name: name, Kind: kind, IsConstant: isConstant, Meta: p.meta(start)}

	if p.match(lexer.EQUAL) {
		rhe := p.parseExpr()
		p.consume(lexer.SEMICOLON, "expected ';' after initializer")
		sub := &ast.Substitution{
			Var: name,
			Rhe: rhe,
			Meta: ast.Metadata{
				ElemID: p.ids.Next(),
				Pos:    decl.Meta.Pos,
				EndPos: p.pos(p.previous()),
				FileID: p.fileID,
			},
		}
		return &ast.InitializationBlock{
			Stmts: []ast.Statement{decl, sub},
			Meta:  decl.Meta,
		}
	}

	p.consume(lexer.SEMICOLON, "expected ';' after declaration")
	return decl
}

// parseExprStatement parses everything that starts with an expression:
// a plain assignment, an underscore assignment, or a constraint equality.
func (p *Parser) parseExprStatement() ast.Statement {
	start := p.peek()

	if p.check(lexer.IDENTIFIER) && p.peek().Lexeme == "_" {
		p.advance()
		p.consume(lexer.EQUAL, "expected '=' after '_'")
		rhe := p.parseExpr()
		p.consume(lexer.SEMICOLON, "expected ';' after underscore assignment")
		return &ast.UnderscoreSubstitution{Rhe: rhe, Meta: p.meta(start)}
	}

	lhe := p.parseExpr()

	if p.match(lexer.EQUAL) {
		name, access, ok := variableTarget(lhe)
		if !ok {
			p.errorAtCurrent("left-hand side of '=' must be a variable or an access path")
		}
		rhe := p.parseExpr()
		p.consume(lexer.SEMICOLON, "expected ';' after assignment")
		return &ast.Substitution{Var: name, Access: access, Rhe: rhe, Meta: p.meta(start)}
	}

	if p.match(lexer.EQUAL_EQUAL_EQUAL) {
		rhe := p.parseExpr()
		p.consume(lexer.SEMICOLON, "expected ';' after constraint equality")
		return &ast.ConstraintEquality{Lhe: lhe, Rhe: rhe, Meta: p.meta(start)}
	}

	p.errorAtCurrent("expected '=', '===', or ';' after expression statement")
	p.synchronizeStatement()
	return &ast.Block{Meta: p.meta(start)}
}

// variableTarget decomposes a parsed Variable expression into the
// assignment-target shape Substitution needs.
func variableTarget(e ast.Expr) (string, []ast.Access, bool) {
	v, ok := e.(*ast.Variable)
	if !ok {
		return "", nil, false
	}
	return v.Name, v.Access, true
}
