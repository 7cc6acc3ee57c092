// Command pingrid-import reads a browser bookmark export file (Netscape
// HTML format) and stages every valid entry into the PinGrid Inbox group
// for later triage.
//
// Usage:
//
//	PINGRID_API=http://localhost:8080 pingrid-import bookmarks.html
//
// PINGRID_TOKEN carries the bearer token when the backend requires auth.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/importer"
	"github.com/pingrid/pingrid/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: pingrid-import <bookmarks.html>")
		os.Exit(2)
	}
	path := os.Args[1]

	baseURL := os.Getenv("PINGRID_API")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	token := os.Getenv("PINGRID_TOKEN")
	if token == "" {
		logger.Warn("PINGRID_TOKEN not set — requests are unauthenticated")
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Error("cannot open bookmark file",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	defer f.Close()

	client := api.New(baseURL, token, logger)
	stores := store.New(client, logger)
	imp := importer.New(stores, logger)

	summary, err := imp.Run(context.Background(), f)
	if err != nil {
		logger.Error("import failed",
			slog.Int("imported_before_failure", summary.Imported),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	fmt.Printf("imported %d bookmarks into the Inbox (%d skipped)\n",
		summary.Imported, summary.Skipped)
}
