package parser

import (
	"circuitlint/internal/ast"
	"circuitlint/internal/lexer"
)

// binaryPrecedence ranks infix operators for precedence climbing. '===' is
// handled at the statement level and never appears here.
var binaryPrecedence = map[lexer.TokenType]string{
	lexer.OR:            "||",
	lexer.AND:           "&&",
	lexer.EQUAL_EQUAL:   "==",
	lexer.BANG_EQUAL:    "!=",
	lexer.LESS:          "<",
	lexer.LESS_EQUAL:    "<=",
	lexer.GREATER:       ">",
	lexer.GREATER_EQUAL: ">=",
	lexer.PLUS:          "+",
	lexer.MINUS:         "-",
	lexer.STAR:          "*",
	lexer.SLASH:         "/",
	lexer.PERCENT:       "%",
	lexer.STAR_STAR:     "**",
}

var precedenceLevel = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
	"**": 7,
}

// parseExpr parses a full expression, including the trailing ternary form
// `cond ? ifTrue : ifFalse`, which binds looser than every binary operator.
func (p *Parser) parseExpr() ast.Expr {
	expr := p.parsePrattExpr(0)
	if p.match(lexer.QUESTION) {
		start := expr.NodePos()
		ifTrue := p.parseExpr()
		p.consume(lexer.COLON, "expected ':' in ternary expression")
		ifFalse := p.parseExpr()
		return &ast.InlineSwitchOp{
			Cond:    expr,
			IfTrue:  ifTrue,
			IfFalse: ifFalse,
			Meta: ast.Metadata{
				ElemID: p.ids.Next(),
				Pos:    start,
				EndPos: ifFalse.NodeEndPos(),
				FileID: p.fileID,
			},
		}
	}
	return expr
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()

	for {
		opName, ok := binaryPrecedence[p.peek().Type]
		if !ok {
			break
		}
		prec := precedenceLevel[opName]
		if prec < minPrec {
			break
		}

		p.advance()
		// '**' is right-associative; every other operator is left-associative.
		nextMin := prec + 1
		if opName == "**" {
			nextMin = prec
		}
		right := p.parsePrattExpr(nextMin)

		expr = &ast.InfixOp{
			Op:  opName,
			Lhe: expr,
			Rhe: right,
			Meta: ast.Metadata{
				ElemID: p.ids.Next(),
				Pos:    expr.NodePos(),
				EndPos: right.NodeEndPos(),
				FileID: p.fileID,
			},
		}
	}

	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.match(lexer.AT) {
		start := p.previous()
		value := p.parsePrefixExpr()
		return &ast.ParallelOp{
			Rhe: value,
			Meta: ast.Metadata{
				ElemID: p.ids.Next(),
				Pos:    p.pos(start),
				EndPos: value.NodeEndPos(),
				FileID: p.fileID,
			},
		}
	}

	if p.match(lexer.MINUS, lexer.BANG) {
		op := p.previous()
		value := p.parsePrefixExpr()
		return &ast.PrefixOp{
			Op:  op.Lexeme,
			Rhe: value,
			Meta: ast.Metadata{
				ElemID: p.ids.Next(),
				Pos:    p.pos(op),
				EndPos: value.NodeEndPos(),
				FileID: p.fileID,
			},
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

// parsePostfixExpr attaches array-index and field-access suffixes onto a
// Variable's access path. Anything other than a Variable (e.g. a call or a
// parenthesized expression) has no access path and is returned unchanged.
func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	v, ok := expr.(*ast.Variable)
	if !ok {
		return expr
	}

	for {
		if p.match(lexer.LEFT_BRACKET) {
			index := p.parseExpr()
			end := p.consume(lexer.RIGHT_BRACKET, "expected ']' after index")
			v.Access = append(v.Access, &ast.ArrayAccess{Index: index})
			v.Meta.EndPos = p.pos(end)
		} else if p.match(lexer.DOT) {
			field := p.consumeIdentLexeme("expected field name after '.'")
			v.Access = append(v.Access, &ast.ComponentAccess{Field: field})
			v.Meta.EndPos = p.pos(p.previous())
		} else {
			break
		}
	}

	return v
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	if p.match(lexer.NUMBER) {
		tok := p.previous()
		return &ast.Number{Value: tok.Lexeme, Meta: p.meta(tok)}
	}

	if p.match(lexer.LEFT_BRACKET) {
		start := p.previous()
		return p.parseArrayLiteral(start)
	}

	if p.match(lexer.LEFT_PAREN) {
		start := p.previous()
		return p.parseParenOrTuple(start)
	}

	if p.check(lexer.IDENTIFIER) {
		return p.parseIdentOrCallOrComp()
	}

	tok := p.peek()
	p.errorAtCurrent("unexpected token in expression")
	if !p.isAtEnd() {
		p.advance()
	}
	return &ast.Number{Value: "0", Meta: p.meta(tok)}
}

// parseArrayLiteral parses either `[v0, v1, ...]` or the uniform-array form
// `[value; dimension]`, distinguished by the first separator seen.
func (p *Parser) parseArrayLiteral(start lexer.Token) ast.Expr {
	if p.check(lexer.RIGHT_BRACKET) {
		p.advance()
		return &ast.ArrayInLine{Meta: p.meta(start)}
	}

	first := p.parseExpr()

	if p.match(lexer.SEMICOLON) {
		dim := p.parseExpr()
		p.consume(lexer.RIGHT_BRACKET, "expected ']' after uniform array")
		return &ast.UniformArray{Value: first, Dimension: dim, Meta: p.meta(start)}
	}

	values := []ast.Expr{first}
	for p.match(lexer.COMMA) {
		if p.check(lexer.RIGHT_BRACKET) {
			break
		}
		values = append(values, p.parseExpr())
	}
	p.consume(lexer.RIGHT_BRACKET, "expected ']' after array literal")
	return &ast.ArrayInLine{Values: values, Meta: p.meta(start)}
}

// parseParenOrTuple disambiguates a parenthesized expression `(a)` from a
// tuple literal `(a, b, ...)` by whether a comma follows the first element.
func (p *Parser) parseParenOrTuple(start lexer.Token) ast.Expr {
	first := p.parseExpr()

	if p.match(lexer.COMMA) {
		values := []ast.Expr{first}
		if !p.check(lexer.RIGHT_PAREN) {
			for {
				values = append(values, p.parseExpr())
				if !p.match(lexer.COMMA) {
					break
				}
				if p.check(lexer.RIGHT_PAREN) {
					break
				}
			}
		}
		p.consume(lexer.RIGHT_PAREN, "expected ')' after tuple elements")
		return &ast.Tuple{Values: values, Meta: p.meta(start)}
	}

	p.consume(lexer.RIGHT_PAREN, "expected ')'")
	return first
}

// parseIdentOrCallOrComp parses a bare identifier, a function call `f(args)`,
// or an anonymous component instantiation `Tmpl(params)(signals)`.
func (p *Parser) parseIdentOrCallOrComp() ast.Expr {
	tok := p.advance()
	name := tok.Lexeme

	if p.check(lexer.LEFT_PAREN) {
		p.advance()
		firstArgs := p.parseExprList()
		p.consume(lexer.RIGHT_PAREN, "expected ')' after arguments")

		if p.check(lexer.LEFT_PAREN) {
			p.advance()
			signals := p.parseExprList()
			end := p.consume(lexer.RIGHT_PAREN, "expected ')' after component signals")
			return &ast.AnonymousComp{
				Name:    name,
				Params:  firstArgs,
				Signals: signals,
				Meta: ast.Metadata{
					ElemID: p.ids.Next(),
					Pos:    p.pos(tok),
					EndPos: p.pos(end),
					FileID: p.fileID,
				},
			}
		}

		return &ast.Call{
			Name: name,
			Args: firstArgs,
			Meta: ast.Metadata{
				ElemID: p.ids.Next(),
				Pos:    p.pos(tok),
				EndPos: p.pos(p.previous()),
				FileID: p.fileID,
			},
		}
	}

	return &ast.Variable{Name: name, Meta: p.meta(tok)}
}

func (p *Parser) parseExprList() []ast.Expr {
	var args []ast.Expr
	if p.check(lexer.RIGHT_PAREN) {
		return args
	}
	for {
		args = append(args, p.parseExpr())
		if !p.match(lexer.COMMA) {
			break
		}
	}
	return args
}
