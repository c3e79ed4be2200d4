package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/subosito/gotenv"

	"github.com/guicheweb/recibo/internal/cli"
)

func main() {
	_ = gotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
