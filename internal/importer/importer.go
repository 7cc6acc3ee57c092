package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/pingrid/pingrid/internal/model"
	"github.com/pingrid/pingrid/internal/store"
)

// Importer pushes parsed bookmark entries into the Inbox staging group,
// where the user triages them into real groups later.
type Importer struct {
	stores *store.Stores
	logger *slog.Logger
}

// New creates an Importer over the given stores.
func New(stores *store.Stores, logger *slog.Logger) *Importer {
	return &Importer{stores: stores, logger: logger}
}

// Summary reports what one import run did.
type Summary struct {
	Imported int // entries created in the Inbox
	Skipped  int // entries dropped for failing validation
}

// Run parses a Netscape bookmark file and creates every valid entry in
// the Inbox group. Entries with a non-http(s) URL are skipped and
// counted, never aborting the run; over-long titles are truncated rather
// than dropped. The first creation failure aborts with the partial
// summary, since a failing backend would fail every remaining entry too.
func (imp *Importer) Run(ctx context.Context, r io.Reader) (Summary, error) {
	var summary Summary

	parsed, err := Parse(r)
	if err != nil {
		return summary, err
	}

	inbox, err := imp.stores.Groups.EnsureInbox(ctx)
	if err != nil {
		return summary, fmt.Errorf("importer: ensuring inbox: %w", err)
	}

	for _, entry := range parsed {
		if !entry.Valid() {
			summary.Skipped++
			imp.logger.Debug("skipping invalid bookmark entry",
				slog.String("title", entry.Title),
				slog.String("url", entry.URL),
			)
			continue
		}

		title := truncateTitle(entry.Title)

		bookmark := model.Bookmark{
			GroupID:     inbox.ID,
			Title:       title,
			URL:         entry.URL,
			Description: entry.Folder,
			Column:      1,
		}
		if _, err := imp.stores.Bookmarks.Create(ctx, bookmark); err != nil {
			return summary, fmt.Errorf("importer: creating %q: %w", title, err)
		}
		summary.Imported++
	}

	imp.logger.Info("import finished",
		slog.Int("imported", summary.Imported),
		slog.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

// truncateTitle cuts an over-long title down to the bookmark limit on a
// rune boundary. Cutting at the raw byte offset could split a multi-byte
// rune and import a title ending in an invalid sequence.
func truncateTitle(title string) string {
	if len(title) <= model.MaxBookmarkTitleLength {
		return title
	}
	cut := model.MaxBookmarkTitleLength
	for cut > 0 && !utf8.RuneStart(title[cut]) {
		cut--
	}
	return title[:cut]
}
