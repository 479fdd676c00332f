package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/geometry2d/internal/cli"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "geom"})
	if err := cli.NewApp(os.Stdout).Run(os.Args); err != nil {
		logger.Fatal("command failed", "err", err)
	}
}
