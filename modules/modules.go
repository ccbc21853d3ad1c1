// Package modules contains the built-in fake activities.
package modules

import (
	"context"
	"time"

	"genact/internal/registry"
	"genact/internal/session"
)

// All returns every built-in module in alphabetical order.
func All() []registry.Module {
	return []registry.Module{
		Bootlog{},
		Cargo{},
		CC{},
		DockerBuild{},
		Download{},
		Memdump{},
		Weblog{},
	}
}

// Registry returns a registry holding All().
func Registry() *registry.Registry {
	r, err := registry.New(All()...)
	if err != nil {
		// The list above is static; a duplicate is a programming error.
		panic(err)
	}
	return r
}

// pause sleeps for d and reports whether the module should stop.  err is
// non-nil only when ctx was cancelled.
func pause(ctx context.Context, s *session.Session, d time.Duration) (stop bool, err error) {
	if err := s.Sleep(ctx, d); err != nil {
		return true, err
	}
	return s.Done(ctx), nil
}
