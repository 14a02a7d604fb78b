// Command morph inflects sentences from the command line or an
// interactive console.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/6o6p/morphology/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
