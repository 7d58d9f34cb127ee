package command

import "strings"

// Resolver maps command names to bindings, ignoring case.
type Resolver struct {
	byName map[string]Binding
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{byName: make(map[string]Binding)}
	for _, b := range bindings {
		for _, name := range b.Names {
			r.byName[strings.ToUpper(name)] = b
		}
	}
	return r
}

// Resolve returns the binding for a command name.
func (r *Resolver) Resolve(name string) (Binding, bool) {
	b, ok := r.byName[strings.ToUpper(name)]
	return b, ok
}
