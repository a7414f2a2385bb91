// Package main implements pokedex, a terminal client that identifies
// Pokemon from free text and renders them as a Pokedex screen.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(defaultDeps()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
