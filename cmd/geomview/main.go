package main

import (
	"bufio"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/geometry2d/internal/config"
	"github.com/tomz197/geometry2d/internal/scene"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}
	cfg, err := config.ViewerFromEnv()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	logger, err := config.NewLogger(os.Stderr, "geomview", cfg.LogLevel)
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	sc, err := scene.LoadOrDefault(cfg.ScenePath)
	if err != nil {
		logger.Fatal("failed to load scene", "path", cfg.ScenePath, "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}

	reader := bufio.NewReader(os.Stdin)
	err = scene.Run(reader, os.Stdout, scene.Options{
		Scene:  sc,
		FPS:    cfg.FPS,
		Logger: logger,
	})
	_ = term.Restore(fd, oldState)
	if err != nil {
		logger.Fatal("viewer error", "err", err)
	}
}
