package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/pingrid/pingrid/internal/apperror"
)

func TestBookmarkValidate(t *testing.T) {
	valid := Bookmark{Title: "Go blog", URL: "https://go.dev/blog", Column: 1}

	tests := []struct {
		name    string
		mutate  func(b *Bookmark)
		wantErr bool
	}{
		{"valid bookmark", func(b *Bookmark) {}, false},
		{"empty title", func(b *Bookmark) { b.Title = "" }, true},
		{"whitespace-only title", func(b *Bookmark) { b.Title = "   " }, true},
		{"title too long", func(b *Bookmark) { b.Title = strings.Repeat("a", MaxBookmarkTitleLength+1) }, true},
		{"missing scheme", func(b *Bookmark) { b.URL = "go.dev" }, true},
		{"ftp scheme rejected", func(b *Bookmark) { b.URL = "ftp://example.com" }, true},
		{"http accepted", func(b *Bookmark) { b.URL = "http://example.com" }, false},
		{"description too long", func(b *Bookmark) { b.Description = strings.Repeat("d", MaxBookmarkDescriptionLength+1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("Validate() should have failed")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if tt.wantErr && !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestGroupValidate(t *testing.T) {
	valid := Group{Name: "Reading", ColumnCount: 2, Type: GroupManual, Width: 50}

	tests := []struct {
		name    string
		mutate  func(g *Group)
		wantErr bool
	}{
		{"valid group", func(g *Group) {}, false},
		{"empty name", func(g *Group) { g.Name = "" }, true},
		{"zero columns", func(g *Group) { g.ColumnCount = 0 }, true},
		{"seven columns", func(g *Group) { g.ColumnCount = 7 }, true},
		{"unknown type", func(g *Group) { g.Type = "smart" }, true},
		{"bad width", func(g *Group) { g.Width = 40 }, true},
		{"zero width means unset", func(g *Group) { g.Width = 0 }, false},
		{"dynamic group valid", func(g *Group) { g.Type = GroupDynamicTopUsed; g.BookmarkLimit = 10 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			err := g.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("Validate() should have failed")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
		})
	}
}

func TestClampColumn(t *testing.T) {
	tests := []struct {
		name       string
		col, count int
		want       int
	}{
		{"in range untouched", 2, 3, 2},
		{"above count clamps down", 5, 3, 3},
		{"zero clamps to one", 0, 3, 1},
		{"negative clamps to one", -2, 3, 1},
		{"degenerate count treated as one column", 4, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampColumn(tt.col, tt.count); got != tt.want {
				t.Errorf("ClampColumn(%d, %d) = %d, want %d", tt.col, tt.count, got, tt.want)
			}
		})
	}
}

func TestResolveDynamic(t *testing.T) {
	topUsed := []Bookmark{
		{ID: "b1", Title: "first", Column: 9, Position: 42, VisitCount: 100},
		{ID: "b2", Title: "second", VisitCount: 90},
		{ID: "b3", Title: "third", VisitCount: 80},
		{ID: "b4", Title: "fourth", VisitCount: 70},
		{ID: "b5", Title: "fifth", VisitCount: 60},
	}

	g := Group{ID: "g1", Name: "Most used", Type: GroupDynamicTopUsed, ColumnCount: 2, BookmarkLimit: 4}

	resolved := ResolveDynamic(g, topUsed)
	if len(resolved) != 4 {
		t.Fatalf("resolved %d bookmarks, want 4 (the bookmark limit)", len(resolved))
	}

	// Synthetic column = index mod column_count + 1; position = rank.
	wantColumns := []int{1, 2, 1, 2}
	for i, b := range resolved {
		if b.Column != wantColumns[i] {
			t.Errorf("resolved[%d].Column = %d, want %d", i, b.Column, wantColumns[i])
		}
		if b.Position != i {
			t.Errorf("resolved[%d].Position = %d, want %d", i, b.Position, i)
		}
	}

	// The stored column/position of the source bookmark must be discarded.
	if resolved[0].Column == 9 || resolved[0].Position == 42 {
		t.Error("dynamic resolution must overwrite the bookmark's stored column/position")
	}

	// The ranking slice itself must not be mutated.
	if topUsed[0].Column != 9 || topUsed[0].Position != 42 {
		t.Error("ResolveDynamic mutated the shared top-used list")
	}
}

func TestResolveDynamic_LimitLargerThanRanking(t *testing.T) {
	g := Group{Type: GroupDynamicTopUsed, ColumnCount: 3, BookmarkLimit: 50}
	topUsed := []Bookmark{{ID: "b1"}, {ID: "b2"}}

	resolved := ResolveDynamic(g, topUsed)
	if len(resolved) != 2 {
		t.Fatalf("resolved %d bookmarks, want 2 (whole ranking)", len(resolved))
	}
}

func TestResolveDynamic_ManualGroupReturnsNil(t *testing.T) {
	g := Group{Type: GroupManual, ColumnCount: 2}
	if got := ResolveDynamic(g, []Bookmark{{ID: "b1"}}); got != nil {
		t.Errorf("ResolveDynamic on a manual group = %v, want nil", got)
	}
}

func TestIsInbox(t *testing.T) {
	inbox := Group{Name: InboxGroupName}
	if !inbox.IsInbox() {
		t.Error("group named Inbox should be the inbox")
	}
	other := Group{Name: "inbox"} // reserved name is case-sensitive
	if other.IsInbox() {
		t.Error("lowercase 'inbox' is a regular group name")
	}
}
