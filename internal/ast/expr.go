package ast

// Expr is implemented by every expression shape the dead-store pass's
// expression scanner knows how to walk.
type Expr interface {
	Node
	isExpr()
}

// Variable is an identifier occurrence, e.g. `x` or `x[i].field`. Whether it
// denotes a plain variable, a signal, a component, or a tag is recorded in
// Meta.TypeReduction by the type-reduction pass, not by this node's shape.
type Variable struct {
	Name   string
	Access []Access
	Meta   Metadata
}

// InfixOp is a binary operator application, e.g. `lhe + rhe`.
type InfixOp struct {
	Op   string
	Lhe  Expr
	Rhe  Expr
	Meta Metadata
}

// PrefixOp is a unary operator application, e.g. `-rhe`.
type PrefixOp struct {
	Op   string
	Rhe  Expr
	Meta Metadata
}

// InlineSwitchOp is the ternary `cond ? if_true : if_false`.
type InlineSwitchOp struct {
	Cond    Expr
	IfTrue  Expr
	IfFalse Expr
	Meta    Metadata
}

// ParallelOp marks a subexpression for parallel witness computation
// (`@rhe`, grounded on circom's `parallel` template instantiation).
type ParallelOp struct {
	Rhe  Expr
	Meta Metadata
}

// Call is a function or template application, e.g. `f(a, b)`.
type Call struct {
	Name string
	Args []Expr
	Meta Metadata
}

// AnonymousComp is an inline component instantiation such as
// `Tmpl(params)(signals)`.
type AnonymousComp struct {
	Name    string
	Params  []Expr
	Signals []Expr
	Meta    Metadata
}

// ArrayInLine is an array literal `[v0, v1, ...]`.
type ArrayInLine struct {
	Values []Expr
	Meta   Metadata
}

// Tuple is a tuple literal `(v0, v1, ...)`.
type Tuple struct {
	Values []Expr
	Meta   Metadata
}

// UniformArray is `[value; dimension]`.
type UniformArray struct {
	Value     Expr
	Dimension Expr
	Meta      Metadata
}

// Number is an integer/field-element literal.
type Number struct {
	Value string
	Meta  Metadata
}

func (*Variable) isExpr()       {}
func (*InfixOp) isExpr()        {}
func (*PrefixOp) isExpr()       {}
func (*InlineSwitchOp) isExpr() {}
func (*ParallelOp) isExpr()     {}
func (*Call) isExpr()           {}
func (*AnonymousComp) isExpr()  {}
func (*ArrayInLine) isExpr()    {}
func (*Tuple) isExpr()          {}
func (*UniformArray) isExpr()   {}
func (*Number) isExpr()         {}

func (v *Variable) NodePos() Position       { return v.Meta.Pos }
func (v *Variable) NodeEndPos() Position    { return v.Meta.EndPos }
func (*Variable) NodeType() NodeType        { return VARIABLE }
func (v *Variable) GetMeta() *Metadata      { return &v.Meta }

func (e *InfixOp) NodePos() Position    { return e.Meta.Pos }
func (e *InfixOp) NodeEndPos() Position { return e.Meta.EndPos }
func (*InfixOp) NodeType() NodeType     { return INFIX_OP }
func (e *InfixOp) GetMeta() *Metadata   { return &e.Meta }

func (e *PrefixOp) NodePos() Position    { return e.Meta.Pos }
func (e *PrefixOp) NodeEndPos() Position { return e.Meta.EndPos }
func (*PrefixOp) NodeType() NodeType     { return PREFIX_OP }
func (e *PrefixOp) GetMeta() *Metadata   { return &e.Meta }

func (e *InlineSwitchOp) NodePos() Position    { return e.Meta.Pos }
func (e *InlineSwitchOp) NodeEndPos() Position { return e.Meta.EndPos }
func (*InlineSwitchOp) NodeType() NodeType     { return INLINE_SWITCH_OP }
func (e *InlineSwitchOp) GetMeta() *Metadata   { return &e.Meta }

func (e *ParallelOp) NodePos() Position    { return e.Meta.Pos }
func (e *ParallelOp) NodeEndPos() Position { return e.Meta.EndPos }
func (*ParallelOp) NodeType() NodeType     { return PARALLEL_OP }
func (e *ParallelOp) GetMeta() *Metadata   { return &e.Meta }

func (e *Call) NodePos() Position    { return e.Meta.Pos }
func (e *Call) NodeEndPos() Position { return e.Meta.EndPos }
func (*Call) NodeType() NodeType     { return CALL }
func (e *Call) GetMeta() *Metadata   { return &e.Meta }

func (e *AnonymousComp) NodePos() Position    { return e.Meta.Pos }
func (e *AnonymousComp) NodeEndPos() Position { return e.Meta.EndPos }
func (*AnonymousComp) NodeType() NodeType     { return ANONYMOUS_COMP }
func (e *AnonymousComp) GetMeta() *Metadata   { return &e.Meta }

func (e *ArrayInLine) NodePos() Position    { return e.Meta.Pos }
func (e *ArrayInLine) NodeEndPos() Position { return e.Meta.EndPos }
func (*ArrayInLine) NodeType() NodeType     { return ARRAY_IN_LINE }
func (e *ArrayInLine) GetMeta() *Metadata   { return &e.Meta }

func (e *Tuple) NodePos() Position    { return e.Meta.Pos }
func (e *Tuple) NodeEndPos() Position { return e.Meta.EndPos }
func (*Tuple) NodeType() NodeType     { return TUPLE }
func (e *Tuple) GetMeta() *Metadata   { return &e.Meta }

func (e *UniformArray) NodePos() Position    { return e.Meta.Pos }
func (e *UniformArray) NodeEndPos() Position { return e.Meta.EndPos }
func (*UniformArray) NodeType() NodeType     { return UNIFORM_ARRAY }
func (e *UniformArray) GetMeta() *Metadata   { return &e.Meta }

func (e *Number) NodePos() Position    { return e.Meta.Pos }
func (e *Number) NodeEndPos() Position { return e.Meta.EndPos }
func (*Number) NodeType() NodeType     { return NUMBER }
func (e *Number) GetMeta() *Metadata   { return &e.Meta }
