package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/adapters/inbound/cli"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewRootCommand(app.NewHostedApp, os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err) //nolint:errcheck
		stop()
		os.Exit(1)
	}
}
