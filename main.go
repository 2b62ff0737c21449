package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ardnew/buildfile/cli"
	"github.com/ardnew/buildfile/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		// *pkg.Error and *lang.SyntaxError render through LogValue/Error.
		log.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
