// Command blogmesh generates a fashion e-commerce blog post from a topic by
// chaining six model-backed stages.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/blogmesh/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Run(ctx, os.Args[1:], cli.DefaultOptions())

	stop()
	os.Exit(code)
}
