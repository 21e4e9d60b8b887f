// Package main provides a CLI that deals one round of swampdeck hands.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	dealcmd "github.com/louisbranch/swampdeck/internal/cmd/deal"
	entrypoint "github.com/louisbranch/swampdeck/internal/platform/cmd"
	"github.com/louisbranch/swampdeck/internal/platform/config"
	apperrors "github.com/louisbranch/swampdeck/internal/platform/errors"
)

func main() {
	cfg, err := dealcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(apperrors.ExitUsage, "Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDeal, func(ctx context.Context) error {
		return dealcmd.Run(ctx, cfg, os.Stdout, os.Stderr)
	})
	if err != nil {
		stop()
		config.ExitCodef(apperrors.ExitCode(err), "Error: %v", err)
	}
}
