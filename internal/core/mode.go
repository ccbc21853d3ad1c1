// Package core is the orchestration layer.  It composes the resolved
// configuration, the module registry and the runtime state into
// complete operational modes, and provides a builder that selects the
// right mode from a Config.
//
// Architecture layers (bottom → top):
//
//	config  →  session  →  registry/modules  →  core  →  cmd (CLI)
//
// The builder in this package is the single dispatch point for the
// standalone build.  The browser build skips it and constructs a
// RunMode directly.
package core

import "context"

// Mode represents a complete operational mode of genact (run modules,
// list them, or print generated documentation).  Each mode owns its
// full lifecycle.
type Mode interface {
	Run(ctx context.Context) error
}
