package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/layersmith"
	"github.com/unkn0wn-root/layersmith/internal/bootstrap"
	"github.com/unkn0wn-root/layersmith/internal/config"
	sloglog "github.com/unkn0wn-root/layersmith/log/slog"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "layersmith",
		Short:         "Compose layered garment images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newComposeCmd(flags))
	cmd.AddCommand(newExamplesCmd(flags))
	cmd.AddCommand(newStatsCmd(flags))
	return cmd
}

// newRenderer wires config, storage and logging for a subcommand run.
func newRenderer(ctx context.Context, flags *rootFlags) (layersmith.Renderer, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	backend, err := bootstrap.Backend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return layersmith.New(layersmith.Options{
		Backend:       backend,
		Logger:        sloglog.Logger{L: log},
		MemoryEntries: cfg.Cache.MemoryEntries,
		JPEGQuality:   cfg.Cache.JPEGQuality,
	})
}
