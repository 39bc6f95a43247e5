package main

import (
	"os"

	"github.com/hysios/etrace/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	LogError((&cli.App{
		Name:  "etrace",
		Usage: "etrace generates named error wrapper types with backtrace capture",
		Commands: []*cli.Command{
			genCmd(),
		},
	}).Run(os.Args))
}

func LogError(err error) {
	if err != nil {
		logger.Cli.Error("run command failed", zap.Error(err))
	}
}
