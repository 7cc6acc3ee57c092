package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pingrid/pingrid/internal/model"
)

func testTree() model.PageTree {
	return model.PageTree{
		Page: model.Page{ID: "page-1", Name: "Home"},
		Sections: []model.SectionTree{
			{
				Section: model.Section{ID: "sec-1", PageID: "page-1", Name: "Links"},
				Groups: []model.GroupTree{
					{
						Group: model.Group{ID: "g-1", SectionID: "sec-1", Name: "Reading", Type: model.GroupManual, ColumnCount: 2},
						Bookmarks: []model.Bookmark{
							{ID: "b-1", GroupID: "g-1", Title: "Go blog", URL: "https://go.dev/blog", Column: 1, Position: 0},
							{ID: "b-2", GroupID: "g-1", Title: "Go spec", URL: "https://go.dev/ref/spec", Column: 2, Position: 0},
						},
					},
					{
						Group: model.Group{ID: "g-inbox", SectionID: "sec-1", Name: model.InboxGroupName, Type: model.GroupManual, ColumnCount: 1},
						Bookmarks: []model.Bookmark{
							{ID: "b-staged", GroupID: "g-inbox", Title: "Staged", URL: "https://example.com", Column: 1},
						},
					},
					{
						Group: model.Group{ID: "g-dyn", SectionID: "sec-1", Name: "Top Used", Type: model.GroupDynamicTopUsed, ColumnCount: 2, BookmarkLimit: 3},
					},
				},
			},
		},
	}
}

func topUsed() []model.Bookmark {
	return []model.Bookmark{
		{ID: "t-1", Title: "First", URL: "https://one.example", VisitCount: 90, Column: 5, Position: 7},
		{ID: "t-2", Title: "Second", URL: "https://two.example", VisitCount: 50},
		{ID: "t-3", Title: "Third", URL: "https://three.example", VisitCount: 20},
		{ID: "t-4", Title: "Fourth", URL: "https://four.example", VisitCount: 5},
	}
}

func TestBuildSnapshotFiltersInbox(t *testing.T) {
	built := BuildSnapshot(testTree(), topUsed())

	require.Len(t, built.Sections, 1)
	for _, g := range built.Sections[0].Groups {
		require.NotEqual(t, model.InboxGroupName, g.Group.Name)
	}
	require.Len(t, built.Sections[0].Groups, 2)
}

func TestBuildSnapshotInboxOnlyPage(t *testing.T) {
	// A page whose only group is the Inbox snapshots to an empty group list.
	tree := model.PageTree{
		Page: model.Page{ID: "page-2", Name: "Staging"},
		Sections: []model.SectionTree{
			{
				Section: model.Section{ID: "sec-2", PageID: "page-2", Name: "Only"},
				Groups: []model.GroupTree{
					{Group: model.Group{ID: "g-i", Name: model.InboxGroupName, Type: model.GroupManual, ColumnCount: 1}},
				},
			},
		},
	}

	built := BuildSnapshot(tree, nil)
	require.Len(t, built.Sections, 1)
	require.Empty(t, built.Sections[0].Groups)
}

func TestBuildSnapshotResolvesDynamicGroups(t *testing.T) {
	built := BuildSnapshot(testTree(), topUsed())

	var dyn *model.GroupTree
	for i := range built.Sections[0].Groups {
		if built.Sections[0].Groups[i].Group.ID == "g-dyn" {
			dyn = &built.Sections[0].Groups[i]
		}
	}
	require.NotNil(t, dyn)

	// BookmarkLimit caps the list; columns and positions are synthetic
	// (index mod column_count, rank), discarding stored values.
	require.Len(t, dyn.Bookmarks, 3)
	require.Equal(t, "t-1", dyn.Bookmarks[0].ID)
	require.Equal(t, 1, dyn.Bookmarks[0].Column)
	require.Equal(t, 0, dyn.Bookmarks[0].Position)
	require.Equal(t, 2, dyn.Bookmarks[1].Column)
	require.Equal(t, 1, dyn.Bookmarks[2].Column)
}

func TestBuildSnapshotCopiesManualGroupsVerbatim(t *testing.T) {
	tree := testTree()
	built := BuildSnapshot(tree, topUsed())

	manual := built.Sections[0].Groups[0]
	require.Equal(t, "g-1", manual.Group.ID)
	require.Equal(t, tree.Sections[0].Groups[0].Bookmarks, manual.Bookmarks)

	// Fresh lists — mutating the snapshot must not reach the input tree.
	manual.Bookmarks[0].Title = "changed"
	require.Equal(t, "Go blog", tree.Sections[0].Groups[0].Bookmarks[0].Title)
}

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.False(t, s.Has(ctx, "page-1"))
	if _, ok := s.Get(ctx, "page-1"); ok {
		t.Fatal("Get before Generate should report no cache")
	}

	require.NoError(t, s.Generate(ctx, testTree(), topUsed()))
	require.True(t, s.Has(ctx, "page-1"))

	got, ok := s.Get(ctx, "page-1")
	require.True(t, ok)
	require.Equal(t, "page-1", got.PageID)
	require.False(t, got.GeneratedAt.IsZero())
	require.Len(t, got.Data.Sections, 1)
	require.Len(t, got.Data.Sections[0].Groups, 2) // inbox filtered before storage
}

func TestGenerateOverwritesWholesale(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Generate(ctx, testTree(), topUsed()))

	// Second build for the same page: one section fewer. The stored
	// snapshot must be the new tree, not a merge.
	tree := testTree()
	tree.Sections = nil
	require.NoError(t, s.Generate(ctx, tree, nil))

	got, ok := s.Get(ctx, "page-1")
	require.True(t, ok)
	require.Empty(t, got.Data.Sections)
}

func TestSnapshotDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Generate(ctx, testTree(), topUsed()))
	require.NoError(t, s.Delete(ctx, "page-1"))
	require.False(t, s.Has(ctx, "page-1"))

	// Deleting a missing snapshot is not an error.
	require.NoError(t, s.Delete(ctx, "page-zz"))
}
