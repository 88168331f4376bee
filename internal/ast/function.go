package ast

// Ident is a parameter or declared name together with its source position.
type Ident struct {
	Name string
	Pos  Position
}

// Function is a circuit function body: ordinary local-variable computation
// with no signals of its own beyond what it reads from its parameters.
type Function struct {
	Name    string
	Params  []Ident
	Body    *Block
	Returns bool
	Meta    Metadata
}

// Template is a circuit template body: local variables alongside signal,
// component, and tag declarations, plus constraint statements.
type Template struct {
	Name       string
	Params     []Ident
	Body       *Block
	IsParallel bool
	Meta       Metadata
}

// GetBody returns the immutable body used by the dead-store analyzer.
func (f *Function) GetBody() Statement { return f.Body }

// GetMutBody returns the mutable body the rewriter deletes nodes from. The
// root is always a *Block, so the rewriter mutates its Stmts slice in place
// rather than replacing the root statement itself.
func (f *Function) GetMutBody() Statement { return f.Body }

// GetNameOfParams returns the ordered parameter names seeding the
// dead-store analyzer's scoped environment.
func (f *Function) GetNameOfParams() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return names
}

// GetName is a diagnostic label only.
func (f *Function) GetName() string { return f.Name }

func (t *Template) GetBody() Statement { return t.Body }

func (t *Template) GetMutBody() Statement { return t.Body }

func (t *Template) GetNameOfParams() []string {
	names := make([]string, len(t.Params))
	for i, p := range t.Params {
		names[i] = p.Name
	}
	return names
}

func (t *Template) GetName() string { return t.Name }
