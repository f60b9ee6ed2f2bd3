package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/steuertools/invoice-extractor/internal/commands"
	"github.com/steuertools/invoice-extractor/internal/common"
)

func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()

	var w io.Writer = os.Stderr
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			defer func() { _ = f.Close() }()
			w = io.MultiWriter(os.Stderr, f)
		}
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	root := commands.NewRootCommand(cfg, logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
