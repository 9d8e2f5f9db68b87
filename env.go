// env.go — lexical environment frames.
package rulsp

import (
	"sort"
	"strings"
)

// Env is a scope frame: a name→value table plus an optional parent link.
// Lookups walk parent-ward; writes always land in the local frame. A child
// keeps its parent alive for as long as the child (or any closure that
// captured it) is reachable.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates an empty frame linked to parent (which may be nil).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Value)}
}

// Set inserts or overwrites name in this frame only. It never searches
// ancestors; shadowing an outer binding is the expected outcome.
func (e *Env) Set(name string, v Value) {
	e.table[name] = v
}

// Get retrieves the nearest visible binding for name, walking the chain.
func (e *Env) Get(name string) (Value, bool) {
	if v, ok := e.table[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, false
}

// Bind sets each parameter (which must be a symbol) from the positional
// argument at the same index. Missing trailing arguments bind to Nil;
// surplus arguments are ignored. Arity mismatches are tolerated, not
// errors.
func (e *Env) Bind(params []Value, args []Value) error {
	for i, p := range params {
		name, err := p.AsSym()
		if err != nil {
			return err
		}
		e.table[name] = safeGet(args, i)
	}
	return nil
}

// dump renders the local frame only: keys sorted, "{k v k v ...}".
func (e *Env) dump(tagged bool) string {
	parts := make([]string, 0, len(e.table))
	for k, v := range e.table {
		parts = append(parts, k+" "+Format(v, tagged))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, " ") + "}"
}

// String renders the local bindings with plain value formatting.
func (e *Env) String() string { return e.dump(false) }
