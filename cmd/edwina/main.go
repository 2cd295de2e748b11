package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	edwinacli "github.com/glencjones/edwina/internal/cli"
	"github.com/glencjones/edwina/internal/layout"
	"github.com/glencjones/edwina/internal/logging"
)

var version = "dev"

func main() {
	logCfg := logging.Config{}
	if configPath, err := layout.DefaultConfigPath(); err == nil && configPath != "" {
		if cfg, err := layout.LoadConfig(configPath); err == nil && cfg != nil {
			logCfg = cfg.Logging
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "edwina: load config: %v\n", err)
			os.Exit(1)
		}
	}
	closeLogger, err := logging.Init(logCfg, logging.InitOptions{
		App:     "edwina",
		Version: version,
	})
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		slog.Error("init logging failed; using stderr fallback", "err", err)
	} else if closeLogger != nil {
		defer func() { _ = closeLogger() }()
	}

	if err := edwinacli.New(version, os.Stdout).Run(context.Background(), os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "edwina: %v\n", err)
		os.Exit(1)
	}
}
