package deadstore

import (
	"circuitlint/internal/ast"

	"github.com/bits-and-blooms/bitset"
)

// AssignInfo is the record the registry keeps for one substitution it has
// seen. Equality is by ID alone: two AssignInfo
// values describing the same AST node (revisited across a branch or a loop
// unrolling) must be treated as one, even if Var differs between visits —
// which it can, since a variable-id is re-allocated every time its
// Declaration is visited again under a shared, un-cloned environment (see
// Analyzer's While handling).
type AssignInfo struct {
	ID             int
	Var            int
	VarName        string
	Location       ast.Position
	FileID         int
	ContainsSignal bool
	IsArtificial   bool
	IsConstant     bool
}

// Registry is the three-set state (Unknown, Useful, Useless) the analyzer
// tracks per body. Unknown is indexed by variable-id; Useful and Useless are
// flat, keyed by AssignInfo.ID for O(1) membership and dedup.
type Registry struct {
	unknown map[int]map[int]*AssignInfo // variable-id -> elem-id -> info
	useful  map[int]*AssignInfo
	useless map[int]*AssignInfo
	seen    *bitset.BitSet // every elem-id ever inserted into any of the three sets
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		unknown: make(map[int]map[int]*AssignInfo),
		useful:  make(map[int]*AssignInfo),
		useless: make(map[int]*AssignInfo),
		seen:    bitset.New(64),
	}
}

// Clone returns an independent copy, used at every branch point (IfThenElse
// else-clone, each While unrolling).
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for v, infos := range r.unknown {
		m := make(map[int]*AssignInfo, len(infos))
		for id, info := range infos {
			m[id] = info
		}
		c.unknown[v] = m
	}
	for id, info := range r.useful {
		c.useful[id] = info
	}
	for id, info := range r.useless {
		c.useless[id] = info
	}
	c.seen = r.seen.Clone()
	return c
}

// RecordRead moves every Unknown entry of a read variable-id into Useful.
// Names that don't resolve in env (signals, components, tags, or anything
// external) are silently ignored: such names never enter Unknown in the
// first place.
func (r *Registry) RecordRead(env *Env, names map[string]bool) {
	for name := range names {
		varID, ok := env.Lookup(name)
		if !ok {
			continue
		}
		infos, ok := r.unknown[varID]
		if !ok {
			continue
		}
		for id, info := range infos {
			r.useful[id] = info
		}
		delete(r.unknown, varID)
	}
}

// RecordAssignment retires any still-unread prior assignment to info.Var as
// useless, then records info itself as the new pending assignment to that
// variable — unless an AssignInfo with the same ID has already been seen in
// this registry (loops can visit the same Substitution node more than
// once).
func (r *Registry) RecordAssignment(info *AssignInfo) {
	if prior, ok := r.unknown[info.Var]; ok {
		for id, old := range prior {
			r.useless[id] = old
		}
		delete(r.unknown, info.Var)
	}

	if r.seen.Test(uint(info.ID)) {
		return
	}
	r.seen.Set(uint(info.ID))

	if r.unknown[info.Var] == nil {
		r.unknown[info.Var] = make(map[int]*AssignInfo)
	}
	r.unknown[info.Var][info.ID] = info
}

// ScopeExit retires every Unknown entry for a variable-id leaving scope.
func (r *Registry) ScopeExit(ids *bitset.BitSet) {
	for id, ok := ids.NextSet(0); ok; id, ok = ids.NextSet(id + 1) {
		v := int(id)
		if prior, exists := r.unknown[v]; exists {
			for elemID, old := range prior {
				r.useless[elemID] = old
			}
			delete(r.unknown, v)
		}
	}
}

// Merge folds other into r, the join rule for an IfThenElse or a While
// unrolling: usefulness is monotone (a read on either path wins),
// uselessness requires agreement across both paths, and an assignment left
// Unknown on either path is never declared useless.
func (r *Registry) Merge(other *Registry) {
	for id, info := range other.useful {
		r.useful[id] = info
	}
	for v, infos := range other.unknown {
		if r.unknown[v] == nil {
			r.unknown[v] = make(map[int]*AssignInfo)
		}
		for id, info := range infos {
			r.unknown[v][id] = info
		}
	}
	for id, info := range other.useless {
		r.useless[id] = info
	}
	r.seen.InPlaceUnion(other.seen)

	// Unknown \ Useful, Useless \ Useful
	for id := range r.useful {
		for v, infos := range r.unknown {
			if _, ok := infos[id]; ok {
				delete(infos, id)
				if len(infos) == 0 {
					delete(r.unknown, v)
				}
			}
		}
		delete(r.useless, id)
	}
	// Useless \ Unknown
	for _, infos := range r.unknown {
		for id := range infos {
			delete(r.useless, id)
		}
	}
}

// Useless returns the final dead-assignment set.
func (r *Registry) Useless() map[int]*AssignInfo { return r.useless }

// UnknownEmpty reports whether no assignment remains unclassified, which
// must hold at the end of a top-level body: every parameter and local
// eventually falls out of scope and is retired into Useful or Useless.
func (r *Registry) UnknownEmpty() bool {
	for _, infos := range r.unknown {
		if len(infos) > 0 {
			return false
		}
	}
	return true
}
