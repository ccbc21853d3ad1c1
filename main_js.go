//go:build js && wasm

// genact - a nonsense activity generator, browser build.
package main

import (
	"context"
	"fmt"
	"os"

	"genact/config"
	"genact/internal/core"
	"genact/internal/metrics"
	"genact/internal/web"
	"genact/modules"
	"genact/util"
)

func main() {
	collector := metrics.New()
	reg := modules.Registry()

	// The URL resolver never fails; bad parameters fall back to defaults.
	resolver := &config.URLResolver{Href: web.Href}
	cfg, _ := resolver.Resolve(reg)

	mode := &core.RunMode{
		Config:   cfg,
		Registry: reg,
		Out:      web.Output(),
		Logger:   util.NewLogger(0),
		Metrics:  collector,
	}
	if err := mode.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "genact: %v\n", err)
	}
}
