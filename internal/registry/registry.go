// Package registry holds the set of modules genact can run.
//
// A Registry is built once at start-up and read-only afterwards.  Names
// are kept in registration order, which the modules package makes
// alphabetical.
package registry

import (
	"context"
	"fmt"

	"genact/internal/session"
)

// Module is one fake activity.  Run prints to the session until the
// activity is finished, the session asks it to stop, or ctx is
// cancelled.
type Module interface {
	// Name is the identifier used on the command line and in URLs.
	Name() string

	// Signature is a one-line shell command the activity pretends to be.
	Signature() string

	// Run plays the activity once.  It returns ctx.Err() when
	// interrupted.
	Run(ctx context.Context, sess *session.Session) error
}

// Registry maps module names to modules, preserving registration order.
type Registry struct {
	names   []string
	modules map[string]Module
}

// New returns a Registry holding mods.  A duplicate or empty name is an
// error.
func New(mods ...Module) (*Registry, error) {
	r := &Registry{modules: make(map[string]Module, len(mods))}
	for _, m := range mods {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds m.
func (r *Registry) Register(m Module) error {
	name := m.Name()
	if name == "" {
		return fmt.Errorf("registry: module with empty name")
	}
	if _, dup := r.modules[name]; dup {
		return fmt.Errorf("registry: module %q registered twice", name)
	}
	r.names = append(r.names, name)
	r.modules[name] = m
	return nil
}

// Names returns a copy of the registered names.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.modules[name]
	return ok
}

// Get returns the module registered as name.
func (r *Registry) Get(name string) (Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// Len returns the number of registered modules.
func (r *Registry) Len() int { return len(r.names) }
