package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwhite7112/webreader/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.CreateRootCommand(cli.NewFlags(), runners())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runners() cli.Runners {
	return cli.Runners{
		Serve:   runServe,
		Lookup:  runLookup,
		Migrate: runMigrate,
	}
}
