package deadstore

import "github.com/bits-and-blooms/bitset"

// Env is the scoped name environment: a stack of frames mapping source
// identifiers to stable variable-ids under block-structured shadowing.
// Lookup is innermost-first; one instance is owned per body analysis, there
// is no global state.
type Env struct {
	frames []frame
}

type frame struct {
	bindings map[string]int
	ids      *bitset.BitSet
}

func newFrame() frame {
	return frame{bindings: make(map[string]int), ids: bitset.New(64)}
}

// NewEnv returns an environment with a single root frame, ready to be
// seeded with a function or template's parameter names.
func NewEnv() *Env {
	return &Env{frames: []frame{newFrame()}}
}

// Push opens a new innermost frame, e.g. on entering a Block.
func (e *Env) Push() {
	e.frames = append(e.frames, newFrame())
}

// Pop discards the innermost frame and returns the variable-ids it bound,
// i.e. exactly the ids leaving scope.
func (e *Env) Pop() *bitset.BitSet {
	top := e.frames[len(e.frames)-1]
	e.frames = e.frames[:len(e.frames)-1]
	return top.ids
}

// Add binds name to id in the innermost frame, overriding any existing
// binding for that name in the same frame (shadowing across frames is
// handled by Lookup's innermost-first search instead).
func (e *Env) Add(name string, id int) {
	top := &e.frames[len(e.frames)-1]
	top.bindings[name] = id
	top.ids.Set(uint(id))
}

// Lookup returns the innermost binding for name, if any.
func (e *Env) Lookup(name string) (int, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if id, ok := e.frames[i].bindings[name]; ok {
			return id, true
		}
	}
	return 0, false
}
