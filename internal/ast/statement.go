package ast

// Statement is implemented by every statement shape the dead-store
// analyzer dispatches on.
type Statement interface {
	Node
	isStatement()
}

// Block is a brace-delimited sequence of statements. Entering one pushes a
// new scope frame; leaving it retires every variable-id declared inside.
type Block struct {
	Stmts []Statement
	Meta  Metadata
}

// IfThenElse is `if (cond) thenCase [else elseCase]`. Else is nil for a
// bodyless else, which the analyzer treats as the identity branch.
type IfThenElse struct {
	Cond Expr
	Then Statement
	Else Statement
	Meta Metadata
}

// While is `while (cond) body`.
type While struct {
	Cond Expr
	Body Statement
	Meta Metadata
}

// Return is `return value;`.
type Return struct {
	Value Expr
	Meta  Metadata
}

// InitializationBlock groups a declaration with its optional initializer
// substitution, e.g. `var x = 0;`. It does not open a new scope frame: its
// declarations bind in the enclosing block.
type InitializationBlock struct {
	Stmts []Statement
	Meta  Metadata
}

// Declaration introduces a name of the given kind in the innermost scope.
// Only VarType declarations allocate a variable-id the dead-store pass
// tracks; Signal/Component/Tag declarations are ignored by it.
type Declaration struct {
	Name       string
	Kind       VariableType
	IsConstant bool
	Meta       Metadata
}

// Substitution is a plain assignment `var[access] = rhe;`. It is a
// candidate for dead-store elimination only when Access is empty and
// Meta.TypeReduction is ReducesToVariable (a "full" substitution).
type Substitution struct {
	Var          string
	Access       []Access
	Rhe          Expr
	IsArtificial bool
	Meta         Metadata
}

// UnderscoreSubstitution is `_ = rhe;`, a write-to-nowhere with no
// elimination effect of its own.
type UnderscoreSubstitution struct {
	Rhe  Expr
	Meta Metadata
}

// ConstraintEquality is `lhe === rhe;`.
type ConstraintEquality struct {
	Lhe  Expr
	Rhe  Expr
	Meta Metadata
}

// LogArgument is one argument of a LogCall: either a raw string literal
// (never scanned for reads) or an expression (scanned like any other
// operand).
type LogArgument interface {
	isLogArgument()
}

type LogStr struct{ Value string }
type LogExpr struct{ Value Expr }

func (LogStr) isLogArgument()  {}
func (LogExpr) isLogArgument() {}

// LogCall is `log(args...)`.
type LogCall struct {
	Args []LogArgument
	Meta Metadata
}

// Assert is `assert(arg);`.
type Assert struct {
	Arg  Expr
	Meta Metadata
}

func (*Block) isStatement()                  {}
func (*IfThenElse) isStatement()              {}
func (*While) isStatement()                  {}
func (*Return) isStatement()                  {}
func (*InitializationBlock) isStatement()     {}
func (*Declaration) isStatement()             {}
func (*Substitution) isStatement()            {}
func (*UnderscoreSubstitution) isStatement()  {}
func (*ConstraintEquality) isStatement()      {}
func (*LogCall) isStatement()                 {}
func (*Assert) isStatement()                  {}

func (s *Block) NodePos() Position    { return s.Meta.Pos }
func (s *Block) NodeEndPos() Position { return s.Meta.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }
func (s *Block) GetMeta() *Metadata   { return &s.Meta }

func (s *IfThenElse) NodePos() Position    { return s.Meta.Pos }
func (s *IfThenElse) NodeEndPos() Position { return s.Meta.EndPos }
func (*IfThenElse) NodeType() NodeType     { return IF_THEN_ELSE }
func (s *IfThenElse) GetMeta() *Metadata   { return &s.Meta }

func (s *While) NodePos() Position    { return s.Meta.Pos }
func (s *While) NodeEndPos() Position { return s.Meta.EndPos }
func (*While) NodeType() NodeType     { return WHILE }
func (s *While) GetMeta() *Metadata   { return &s.Meta }

func (s *Return) NodePos() Position    { return s.Meta.Pos }
func (s *Return) NodeEndPos() Position { return s.Meta.EndPos }
func (*Return) NodeType() NodeType     { return RETURN }
func (s *Return) GetMeta() *Metadata   { return &s.Meta }

func (s *InitializationBlock) NodePos() Position    { return s.Meta.Pos }
func (s *InitializationBlock) NodeEndPos() Position { return s.Meta.EndPos }
func (*InitializationBlock) NodeType() NodeType     { return INITIALIZATION_BLOCK }
func (s *InitializationBlock) GetMeta() *Metadata   { return &s.Meta }

func (s *Declaration) NodePos() Position    { return s.Meta.Pos }
func (s *Declaration) NodeEndPos() Position { return s.Meta.EndPos }
func (*Declaration) NodeType() NodeType     { return DECLARATION }
func (s *Declaration) GetMeta() *Metadata   { return &s.Meta }

func (s *Substitution) NodePos() Position    { return s.Meta.Pos }
func (s *Substitution) NodeEndPos() Position { return s.Meta.EndPos }
func (*Substitution) NodeType() NodeType     { return SUBSTITUTION }
func (s *Substitution) GetMeta() *Metadata   { return &s.Meta }

func (s *UnderscoreSubstitution) NodePos() Position    { return s.Meta.Pos }
func (s *UnderscoreSubstitution) NodeEndPos() Position { return s.Meta.EndPos }
func (*UnderscoreSubstitution) NodeType() NodeType     { return UNDERSCORE_SUBSTITUTION }
func (s *UnderscoreSubstitution) GetMeta() *Metadata   { return &s.Meta }

func (s *ConstraintEquality) NodePos() Position    { return s.Meta.Pos }
func (s *ConstraintEquality) NodeEndPos() Position { return s.Meta.EndPos }
func (*ConstraintEquality) NodeType() NodeType     { return CONSTRAINT_EQUALITY }
func (s *ConstraintEquality) GetMeta() *Metadata   { return &s.Meta }

func (s *LogCall) NodePos() Position    { return s.Meta.Pos }
func (s *LogCall) NodeEndPos() Position { return s.Meta.EndPos }
func (*LogCall) NodeType() NodeType     { return LOG_CALL }
func (s *LogCall) GetMeta() *Metadata   { return &s.Meta }

func (s *Assert) NodePos() Position    { return s.Meta.Pos }
func (s *Assert) NodeEndPos() Position { return s.Meta.EndPos }
func (*Assert) NodeType() NodeType     { return ASSERT }
func (s *Assert) GetMeta() *Metadata   { return &s.Meta }
