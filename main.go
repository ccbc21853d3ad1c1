//go:build !js

// genact - a nonsense activity generator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"genact/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "genact: %v\n", err)
		os.Exit(1)
	}
}
