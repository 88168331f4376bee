// Package printer renders an internal/ast tree back to circuit source text,
// one package-level function per node shape, built with strings.Builder.
package printer

import (
	"fmt"
	"strings"

	"circuitlint/internal/ast"
)

// Function renders a function declaration, including its rewritten body.
func Function(f *ast.Function) string {
	var b strings.Builder
	b.WriteString("function ")
	b.WriteString(f.Name)
	b.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
	}
	b.WriteString(") ")
	b.WriteString(Block(f.Body, 0))
	return b.String()
}

// Template renders a template declaration, including its rewritten body.
func Template(t *ast.Template) string {
	var b strings.Builder
	if t.IsParallel {
		b.WriteString("parallel ")
	}
	b.WriteString("template ")
	b.WriteString(t.Name)
	b.WriteByte('(')
	for i, p := range t.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
	}
	b.WriteString(") ")
	b.WriteString(Block(t.Body, 0))
	return b.String()
}

func indent(level int) string {
	return strings.Repeat("    ", level)
}

// Block renders a block at the given indentation level, one statement per
// line. A block whose Stmts the rewriter emptied prints as `{` and `}` on
// two lines.
func Block(blk *ast.Block, level int) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range blk.Stmts {
		b.WriteString(Statement(s, level+1))
	}
	b.WriteString(indent(level) + "}")
	return b.String()
}

// Statement renders one statement, indented at the given level and
// terminated by its own newline.
func Statement(s ast.Statement, level int) string {
	pad := indent(level)
	switch n := s.(type) {
	case *ast.Block:
		return pad + Block(n, level) + "\n"
	case *ast.IfThenElse:
		return pad + ifThenElse(n, level)
	case *ast.While:
		return pad + whileStmt(n, level)
	case *ast.Return:
		if n.Value == nil {
			return pad + "return;\n"
		}
		return pad + fmt.Sprintf("return %s;\n", Expr(n.Value))
	case *ast.InitializationBlock:
		var b strings.Builder
		for _, inner := range n.Stmts {
			b.WriteString(Statement(inner, level))
		}
		return b.String()
	case *ast.Declaration:
		return pad + declaration(n) + "\n"
	case *ast.Substitution:
		target := n.Var
		for _, acc := range n.Access {
			target += accessString(acc)
		}
		return pad + fmt.Sprintf("%s = %s;\n", target, Expr(n.Rhe))
	case *ast.UnderscoreSubstitution:
		return pad + fmt.Sprintf("_ = %s;\n", Expr(n.Rhe))
	case *ast.ConstraintEquality:
		return pad + fmt.Sprintf("%s === %s;\n", Expr(n.Lhe), Expr(n.Rhe))
	case *ast.LogCall:
		return pad + logCall(n) + "\n"
	case *ast.Assert:
		return pad + fmt.Sprintf("assert(%s);\n", Expr(n.Arg))
	default:
		return pad + fmt.Sprintf("/* unknown statement %T */\n", s)
	}
}

func ifThenElse(n *ast.IfThenElse, level int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("if (%s) %s", Expr(n.Cond), strings.TrimLeft(Statement(n.Then, level), " ")))
	if n.Else != nil {
		b.WriteString(indent(level) + "else " + strings.TrimLeft(Statement(n.Else, level), " "))
	}
	return b.String()
}

func whileStmt(n *ast.While, level int) string {
	return fmt.Sprintf("while (%s) %s", Expr(n.Cond), strings.TrimLeft(Statement(n.Body, level), " "))
}

func declaration(d *ast.Declaration) string {
	var b strings.Builder
	if d.IsConstant {
		b.WriteString("const ")
	}
	b.WriteString(kindKeyword(d.Kind))
	b.WriteByte(' ')
	b.WriteString(d.Name)
	b.WriteByte(';')
	return b.String()
}

func kindKeyword(k ast.VariableType) string {
	switch k {
	case ast.VarType:
		return "var"
	case ast.SignalType:
		return "signal"
	case ast.ComponentType:
		return "component"
	case ast.TagType:
		return "tag"
	default:
		return "var"
	}
}

func logCall(n *ast.LogCall) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		switch arg := a.(type) {
		case ast.LogStr:
			args[i] = "\"" + arg.Value + "\""
		case ast.LogExpr:
			args[i] = Expr(arg.Value)
		}
	}
	return fmt.Sprintf("log(%s);", strings.Join(args, ", "))
}

func accessString(a ast.Access) string {
	switch acc := a.(type) {
	case *ast.ArrayAccess:
		return "[" + Expr(acc.Index) + "]"
	case *ast.ComponentAccess:
		return "." + acc.Field
	default:
		return ""
	}
}

// Expr renders one expression tree to a single line of source text.
func Expr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Variable:
		s := n.Name
		for _, acc := range n.Access {
			s += accessString(acc)
		}
		return s
	case *ast.InfixOp:
		return fmt.Sprintf("(%s %s %s)", Expr(n.Lhe), n.Op, Expr(n.Rhe))
	case *ast.PrefixOp:
		return fmt.Sprintf("(%s%s)", n.Op, Expr(n.Rhe))
	case *ast.InlineSwitchOp:
		return fmt.Sprintf("(%s ? %s : %s)", Expr(n.Cond), Expr(n.IfTrue), Expr(n.IfFalse))
	case *ast.ParallelOp:
		return "@" + Expr(n.Rhe)
	case *ast.Call:
		return fmt.Sprintf("%s(%s)", n.Name, exprList(n.Args))
	case *ast.AnonymousComp:
		return fmt.Sprintf("%s(%s)(%s)", n.Name, exprList(n.Params), exprList(n.Signals))
	case *ast.ArrayInLine:
		return "[" + exprList(n.Values) + "]"
	case *ast.Tuple:
		return "(" + exprList(n.Values) + ")"
	case *ast.UniformArray:
		return fmt.Sprintf("[%s; %s]", Expr(n.Value), Expr(n.Dimension))
	case *ast.Number:
		return n.Value
	default:
		return fmt.Sprintf("/* unknown expr %T */", e)
	}
}

func exprList(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = Expr(e)
	}
	return strings.Join(parts, ", ")
}
