package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sangkips/booth-pos/internal/bootstrap"
	"github.com/sangkips/booth-pos/internal/cli"
	"github.com/sangkips/booth-pos/internal/config"
	"github.com/sangkips/booth-pos/pkg/logger"
	"github.com/spf13/afero"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	fs := afero.NewOsFs()
	root := cli.NewRootCmd(func() (*bootstrap.Services, error) {
		return bootstrap.Build(cfg, fs)
	}, fs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
