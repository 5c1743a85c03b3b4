package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/command"
)

const VERSION = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := command.NewRootCmd(VERSION)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("Command failed", zap.Error(err))
		root.PrintErrln("Error:", err)
		logger.Sync()
		stop()
		os.Exit(1)
	}
}
