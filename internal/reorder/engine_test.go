package reorder

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/apitest"
	"github.com/pingrid/pingrid/internal/model"
	"github.com/pingrid/pingrid/internal/store"
)

func newFixture(t *testing.T) (*apitest.Server, *store.Stores, *Engine) {
	t.Helper()
	fake := apitest.NewServer()
	srv := httptest.NewServer(fake.Handler())
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.New(srv.URL, "", logger)
	stores := store.New(client, logger)
	return fake, stores, NewEngine(client, stores, logger)
}

func ids(bookmarks []model.Bookmark) []string {
	out := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		out[i] = b.ID
	}
	return out
}

func TestDropBookmarkSameColumnReorder(t *testing.T) {
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	g := fake.SeedGroup("sec-1", model.Group{Name: "Reading", ColumnCount: 1})
	a := fake.SeedBookmark(g.ID, model.Bookmark{Title: "A", URL: "https://a.example", Column: 1})
	fake.SeedBookmark(g.ID, model.Bookmark{Title: "B", URL: "https://b.example", Column: 1})
	c := fake.SeedBookmark(g.ID, model.Bookmark{Title: "C", URL: "https://c.example", Column: 1})
	require.NoError(t, stores.Bookmarks.Load(ctx, g.ID))

	outcome, err := engine.DropBookmark(ctx, BookmarkDrop{
		Dragged:       a,
		OriginGroup:   g,
		OriginColumn:  1,
		TargetGroup:   g,
		TargetColumn:  1,
		TargetSibling: &c,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeReorder, outcome)

	// A takes C's slot, C shifts down; local state is the server's answer.
	got := stores.Bookmarks.Column(g.ID, 1)
	titles := []string{got[0].Title, got[1].Title, got[2].Title}
	require.Equal(t, []string{"B", "A", "C"}, titles)
	require.Equal(t, ids(got), ids(fake.GroupBookmarks(g.ID)))
}

func TestDropBookmarkColumnChangeAppends(t *testing.T) {
	// Group X (2 columns): [A@1, B@1], [C@2]. Dragging A into column 2
	// with no sibling target appends it after C.
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	g := fake.SeedGroup("sec-1", model.Group{Name: "X", ColumnCount: 2})
	a := fake.SeedBookmark(g.ID, model.Bookmark{Title: "A", URL: "https://a.example", Column: 1})
	fake.SeedBookmark(g.ID, model.Bookmark{Title: "B", URL: "https://b.example", Column: 1})
	fake.SeedBookmark(g.ID, model.Bookmark{Title: "C", URL: "https://c.example", Column: 2})
	require.NoError(t, stores.Bookmarks.Load(ctx, g.ID))

	outcome, err := engine.DropBookmark(ctx, BookmarkDrop{
		Dragged:       a,
		OriginGroup:   g,
		OriginColumn:  1,
		TargetGroup:   g,
		TargetColumn:  2,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeColumnChange, outcome)

	col2 := stores.Bookmarks.Column(g.ID, 2)
	require.Len(t, col2, 2)
	require.Equal(t, "C", col2[0].Title)
	require.Equal(t, "A", col2[1].Title)

	persisted, ok := fake.Bookmark(a.ID)
	require.True(t, ok)
	require.Equal(t, 2, persisted.Column)
}

func TestDropBookmarkColumnChangeOntoSibling(t *testing.T) {
	// Same shape, but the drop lands on C itself: A slots in above C
	// instead of trailing.
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	g := fake.SeedGroup("sec-1", model.Group{Name: "X", ColumnCount: 2})
	a := fake.SeedBookmark(g.ID, model.Bookmark{Title: "A", URL: "https://a.example", Column: 1})
	c := fake.SeedBookmark(g.ID, model.Bookmark{Title: "C", URL: "https://c.example", Column: 2})
	require.NoError(t, stores.Bookmarks.Load(ctx, g.ID))

	outcome, err := engine.DropBookmark(ctx, BookmarkDrop{
		Dragged:       a,
		OriginGroup:   g,
		OriginColumn:  1,
		TargetGroup:   g,
		TargetColumn:  2,
		TargetSibling: &c,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeColumnChange, outcome)

	col2 := stores.Bookmarks.Column(g.ID, 2)
	require.Len(t, col2, 2)
	require.Equal(t, "A", col2[0].Title)
	require.Equal(t, "C", col2[1].Title)
}

func TestDropBookmarkCrossGroupMove(t *testing.T) {
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	g1 := fake.SeedGroup("sec-1", model.Group{Name: "Source", ColumnCount: 1})
	g2 := fake.SeedGroup("sec-1", model.Group{Name: "Dest", ColumnCount: 1})
	a := fake.SeedBookmark(g1.ID, model.Bookmark{Title: "A", URL: "https://a.example", Column: 1})
	fake.SeedBookmark(g2.ID, model.Bookmark{Title: "Z", URL: "https://z.example", Column: 1})
	require.NoError(t, stores.Bookmarks.Load(ctx, g1.ID))
	require.NoError(t, stores.Bookmarks.Load(ctx, g2.ID))

	outcome, err := engine.DropBookmark(ctx, BookmarkDrop{
		Dragged:       a,
		OriginGroup:   g1,
		OriginColumn:  1,
		TargetGroup:   g2,
		TargetColumn:  1,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeMove, outcome)

	// Spliced out of the source, appended to the destination.
	source, _ := stores.Bookmarks.Bookmarks(g1.ID)
	require.Empty(t, source)
	dest, _ := stores.Bookmarks.Bookmarks(g2.ID)
	require.Len(t, dest, 2)
	require.Equal(t, a.ID, dest[1].ID)

	persisted, ok := fake.Bookmark(a.ID)
	require.True(t, ok)
	require.Equal(t, g2.ID, persisted.GroupID)
}

func TestDropBookmarkSelfDropIsNoop(t *testing.T) {
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	g := fake.SeedGroup("sec-1", model.Group{Name: "Reading", ColumnCount: 1})
	a := fake.SeedBookmark(g.ID, model.Bookmark{Title: "A", URL: "https://a.example", Column: 1})
	require.NoError(t, stores.Bookmarks.Load(ctx, g.ID))

	outcome, err := engine.DropBookmark(ctx, BookmarkDrop{
		Dragged:       a,
		OriginGroup:   g,
		OriginColumn:  1,
		TargetGroup:   g,
		TargetColumn:  1,
		TargetSibling: &a,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeNone, outcome)
}

func TestDropBookmarkOnDynamicGroupIsNoop(t *testing.T) {
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	g1 := fake.SeedGroup("sec-1", model.Group{Name: "Source", ColumnCount: 1})
	dyn := fake.SeedGroup("sec-1", model.Group{Name: "Top Used", Type: model.GroupDynamicTopUsed, ColumnCount: 1})
	a := fake.SeedBookmark(g1.ID, model.Bookmark{Title: "A", URL: "https://a.example", Column: 1})
	require.NoError(t, stores.Bookmarks.Load(ctx, g1.ID))

	outcome, err := engine.DropBookmark(ctx, BookmarkDrop{
		Dragged:       a,
		OriginGroup:   g1,
		OriginColumn:  1,
		TargetGroup:   dyn,
		TargetColumn:  1,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeNone, outcome)

	persisted, _ := fake.Bookmark(a.ID)
	require.Equal(t, g1.ID, persisted.GroupID)
}

func TestDropBookmarkFromDynamicGroupIsNoop(t *testing.T) {
	// A bookmark shown inside a dynamic group really lives in its home
	// group. Dragging that rendering into a manual group must not fire a
	// move: the patch would relocate the real bookmark while the local
	// splice ran against the dynamic group's empty list, leaving the item
	// in two lists at once.
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	home := fake.SeedGroup("sec-1", model.Group{Name: "Home", ColumnCount: 1})
	dest := fake.SeedGroup("sec-1", model.Group{Name: "Dest", ColumnCount: 1})
	dyn := fake.SeedGroup("sec-1", model.Group{Name: "Top Used", Type: model.GroupDynamicTopUsed, ColumnCount: 1, BookmarkLimit: 5})
	a := fake.SeedBookmark(home.ID, model.Bookmark{Title: "A", URL: "https://a.example", Column: 1})
	require.NoError(t, stores.Bookmarks.Load(ctx, home.ID))
	require.NoError(t, stores.Bookmarks.Load(ctx, dest.ID))

	outcome, err := engine.DropBookmark(ctx, BookmarkDrop{
		Dragged:      a,
		OriginGroup:  dyn,
		OriginColumn: 1,
		TargetGroup:  dest,
		TargetColumn: 1,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeNone, outcome)

	// Nothing moved, locally or on the server.
	persisted, _ := fake.Bookmark(a.ID)
	require.Equal(t, home.ID, persisted.GroupID)
	homeList, _ := stores.Bookmarks.Bookmarks(home.ID)
	require.Equal(t, []string{a.ID}, ids(homeList))
	destList, _ := stores.Bookmarks.Bookmarks(dest.ID)
	require.Empty(t, destList)
}

func TestDropBookmarkFailedReorderKeepsLocalOrder(t *testing.T) {
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	g := fake.SeedGroup("sec-1", model.Group{Name: "Reading", ColumnCount: 1})
	a := fake.SeedBookmark(g.ID, model.Bookmark{Title: "A", URL: "https://a.example", Column: 1})
	b := fake.SeedBookmark(g.ID, model.Bookmark{Title: "B", URL: "https://b.example", Column: 1})
	require.NoError(t, stores.Bookmarks.Load(ctx, g.ID))

	fake.FailNext(http.StatusInternalServerError, "backend exploded")
	outcome, err := engine.DropBookmark(ctx, BookmarkDrop{
		Dragged:       b,
		OriginGroup:   g,
		OriginColumn:  1,
		TargetGroup:   g,
		TargetColumn:  1,
		TargetSibling: &a,
	})
	require.Error(t, err)
	require.Equal(t, OutcomeReorder, outcome)

	// No mutation before server confirmation: order is exactly as loaded.
	got := stores.Bookmarks.Column(g.ID, 1)
	require.Equal(t, []string{a.ID, b.ID}, ids(got))
	require.Contains(t, stores.Bookmarks.Err(), "backend exploded")
}

func TestDropGroupMoveToEmptySection(t *testing.T) {
	// Moving G1 from S1 to empty S2: removed from S1's list, appended to
	// S2's, section id updated.
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	p := fake.SeedPage("Home")
	s1 := fake.SeedSection(p.ID, "S1")
	s2 := fake.SeedSection(p.ID, "S2")
	g1 := fake.SeedGroup(s1.ID, model.Group{Name: "G1", ColumnCount: 1})
	require.NoError(t, stores.Groups.Load(ctx, s1.ID))
	require.NoError(t, stores.Groups.Load(ctx, s2.ID))

	outcome, err := engine.DropGroup(ctx, GroupDrop{
		Dragged:         g1,
		OriginSectionID: s1.ID,
		TargetSectionID: s2.ID,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeMove, outcome)

	src, _ := stores.Groups.Groups(s1.ID)
	require.Empty(t, src)
	dst, _ := stores.Groups.Groups(s2.ID)
	require.Len(t, dst, 1)
	require.Equal(t, g1.ID, dst[0].ID)

	persisted, ok := fake.Group(g1.ID)
	require.True(t, ok)
	require.Equal(t, s2.ID, persisted.SectionID)
}

func TestDropGroupReorderWithinSection(t *testing.T) {
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	p := fake.SeedPage("Home")
	sec := fake.SeedSection(p.ID, "S1")
	g1 := fake.SeedGroup(sec.ID, model.Group{Name: "G1", ColumnCount: 1})
	g2 := fake.SeedGroup(sec.ID, model.Group{Name: "G2", ColumnCount: 1})
	require.NoError(t, stores.Groups.Load(ctx, sec.ID))

	outcome, err := engine.DropGroup(ctx, GroupDrop{
		Dragged:         g2,
		OriginSectionID: sec.ID,
		TargetSectionID: sec.ID,
		TargetSibling:   &g1,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeReorder, outcome)

	got, _ := stores.Groups.Groups(sec.ID)
	require.Equal(t, []string{g2.ID, g1.ID}, []string{got[0].ID, got[1].ID})
}

func TestDropSectionMoveAcrossPages(t *testing.T) {
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	p1 := fake.SeedPage("Home")
	p2 := fake.SeedPage("Work")
	sec := fake.SeedSection(p1.ID, "Links")
	require.NoError(t, stores.Sections.Load(ctx, p1.ID))
	require.NoError(t, stores.Sections.Load(ctx, p2.ID))

	outcome, err := engine.DropSection(ctx, SectionDrop{
		Dragged:      sec,
		OriginPageID: p1.ID,
		TargetPageID: p2.ID,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeMove, outcome)

	src, _ := stores.Sections.Sections(p1.ID)
	require.Empty(t, src)
	dst, _ := stores.Sections.Sections(p2.ID)
	require.Len(t, dst, 1)
	require.Equal(t, p2.ID, dst[0].PageID)
}

func TestDropPageReorder(t *testing.T) {
	fake, stores, engine := newFixture(t)
	ctx := context.Background()

	p1 := fake.SeedPage("One")
	p2 := fake.SeedPage("Two")
	p3 := fake.SeedPage("Three")
	require.NoError(t, stores.Pages.Load(ctx))

	outcome, err := engine.DropPage(ctx, PageDrop{Dragged: p1, TargetSibling: &p3})
	require.NoError(t, err)
	require.Equal(t, OutcomeReorder, outcome)

	pages := stores.Pages.Pages()
	require.Equal(t, []string{p2.ID, p1.ID, p3.ID},
		[]string{pages[0].ID, pages[1].ID, pages[2].ID})

	// Dropping the trailing page into open space changes nothing and
	// issues no call.
	outcome, err = engine.DropPage(ctx, PageDrop{Dragged: p3})
	require.NoError(t, err)
	require.Equal(t, OutcomeNone, outcome)
}
