// Command bookshelfctl inspects and seeds the bookshelf store offline,
// using the same storage settings as the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/msomdec/bookshelf/internal/config"
	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/repository/backend"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	root := newRootCmd(openConfigured)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openConfigured(ctx context.Context) (domain.Backend, error) {
	cfg, err := config.LoadStorage()
	if err != nil {
		return nil, err
	}
	return backend.Open(ctx, cfg)
}
