package grammar

import (
	"fmt"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (p *Program) String() string {
	var b strings.Builder
	for _, item := range p.Items {
		b.WriteString(item.StringWithIndent(0))
	}
	return b.String()
}

func (t *TopLevel) StringWithIndent(level int) string {
	switch {
	case t.Comment != nil:
		return t.Comment.String() + "\n"
	case t.Function != nil:
		return t.Function.StringWithIndent(level) + "\n"
	case t.Template != nil:
		return t.Template.StringWithIndent(level) + "\n"
	}
	return ""
}

func (c *Comment) String() string {
	return c.Text
}

func (f *Function) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%sfunction %s(%s) ", indent(level), f.Name, strings.Join(f.Params, ", ")))
	b.WriteString(f.Body.StringWithIndent(level))
	return b.String()
}

func (t *Template) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%stemplate %s(%s) ", indent(level), t.Name, strings.Join(t.Params, ", ")))
	b.WriteString(t.Body.StringWithIndent(level))
	return b.String()
}

func (blk *Block) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range blk.Statements {
		b.WriteString(s.StringWithIndent(level + 1))
	}
	b.WriteString(indent(level) + "}\n")
	return b.String()
}

func (s *Statement) StringWithIndent(level int) string {
	switch {
	case s.Comment != nil:
		return indent(level) + s.Comment.String() + "\n"
	case s.Declaration != nil:
		return indent(level) + s.Declaration.String() + "\n"
	case s.If != nil:
		return indent(level) + s.If.StringWithIndent(level)
	case s.While != nil:
		return indent(level) + s.While.StringWithIndent(level)
	case s.Return != nil:
		return indent(level) + s.Return.String() + "\n"
	case s.Log != nil:
		return indent(level) + s.Log.String() + "\n"
	case s.Assert != nil:
		return indent(level) + s.Assert.String() + "\n"
	case s.Block != nil:
		return indent(level) + s.Block.StringWithIndent(level)
	case s.Assign != nil:
		return indent(level) + s.Assign.String() + "\n"
	}
	return ""
}

func (d *Declaration) String() string {
	var b strings.Builder
	if d.Const {
		b.WriteString("const ")
	}
	b.WriteString(d.Kind + " " + d.Name)
	if d.Init != nil {
		b.WriteString(" = " + d.Init.String())
	}
	b.WriteString(";")
	return b.String()
}

func (s *IfStmt) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("if (%s) %s", s.Cond.String(), strings.TrimLeft(s.Then.StringWithIndent(level), " ")))
	if s.Else != nil {
		b.WriteString(indent(level) + "else " + strings.TrimLeft(s.Else.StringWithIndent(level), " "))
	}
	return b.String()
}

func (s *WhileStmt) StringWithIndent(level int) string {
	return fmt.Sprintf("while (%s) %s", s.Cond.String(), strings.TrimLeft(s.Body.StringWithIndent(level), " "))
}

func (r *ReturnStmt) String() string {
	if r.Value != nil {
		return "return " + r.Value.String() + ";"
	}
	return "return;"
}

func (l *LogStmt) String() string {
	var args []string
	for _, a := range l.Args {
		args = append(args, a.String())
	}
	return fmt.Sprintf("log(%s);", strings.Join(args, ", "))
}

func (a *LogArg) String() string {
	if a.Str != nil {
		return *a.Str
	}
	return a.Expr.String()
}

func (a *AssertStmt) String() string {
	return fmt.Sprintf("assert(%s);", a.Arg.String())
}

func (a *AssignStmt) String() string {
	target := "_"
	if a.Target != nil {
		target = a.Target.String()
	}
	return fmt.Sprintf("%s %s %s;", target, a.Op, a.Value.String())
}

func (e *Expr) String() string {
	if e.Ternary != nil {
		return e.Ternary.String()
	}
	return ""
}

func (t *TernaryExpr) String() string {
	s := t.Cond.String()
	if t.IfTrue != nil && t.IfFalse != nil {
		s += " ? " + t.IfTrue.String() + " : " + t.IfFalse.String()
	}
	return s
}

func (b *BinaryExpr) String() string {
	s := b.Left.String()
	for _, op := range b.Ops {
		s += " " + op.String()
	}
	return s
}

func (b *BinOp) String() string {
	return fmt.Sprintf("%s %s", b.Operator, b.Right.String())
}

func (u *UnaryExpr) String() string {
	var b strings.Builder
	if u.Operator != nil {
		b.WriteString(*u.Operator)
	}
	b.WriteString(u.Value.String())
	return b.String()
}

func (p *PostfixExpr) String() string {
	s := p.Primary.String()
	for _, op := range p.Suffix {
		s += op.String()
	}
	return s
}

func (a *AccessOp) String() string {
	if a.Index != nil {
		return "[" + a.Index.String() + "]"
	}
	return "." + a.Field
}

func (p *PrimaryExpr) String() string {
	switch {
	case p.Component != nil:
		return p.Component.String()
	case p.Call != nil:
		return p.Call.String()
	case p.Array != nil:
		return p.Array.String()
	case p.Paren != nil:
		return p.Paren.String()
	case p.Number != nil:
		return *p.Number
	case p.Ident != nil:
		return *p.Ident
	}
	return ""
}

func (c *CallExpr) String() string {
	var args []string
	for _, a := range c.Args {
		args = append(args, a.String())
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

func (c *ComponentCall) String() string {
	var params, signals []string
	for _, p := range c.Params {
		params = append(params, p.String())
	}
	for _, s := range c.Signals {
		signals = append(signals, s.String())
	}
	return fmt.Sprintf("%s(%s)(%s)", c.Name, strings.Join(params, ", "), strings.Join(signals, ", "))
}

func (a *ArrayLit) String() string {
	if a.Dimension != nil {
		return fmt.Sprintf("[%s; %s]", a.First.String(), a.Dimension.String())
	}
	values := []string{a.First.String()}
	for _, v := range a.Values {
		values = append(values, v.String())
	}
	return "[" + strings.Join(values, ", ") + "]"
}

func (p *ParenOrTuple) String() string {
	if len(p.Rest) == 0 {
		return "(" + p.First.String() + ")"
	}
	values := []string{p.First.String()}
	for _, v := range p.Rest {
		values = append(values, v.String())
	}
	return "(" + strings.Join(values, ", ") + ")"
}
