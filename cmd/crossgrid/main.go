// Command crossgrid generates crossword-style letter grids.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/crossgrid/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
