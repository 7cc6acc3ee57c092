// Package apitest is an in-memory fake of the PinGrid backend.
//
// WHY A FAKE AND NOT A MOCK?
// The store/reorder/importer tests exercise real request/response cycles:
// JSON encoding, the error body convention, server-assigned ids and
// positions. A per-test mock would re-implement those contracts badly in
// every file. The fake implements them once, behind a chi router, and
// tests drive it through httptest.Server — the client code under test is
// byte-for-byte the code that talks to the real backend.
//
// The fake honours the backend contracts the client relies on:
//   - ids are server-assigned UUIDs
//   - display order / position sequences are dense and rewritten whole
//   - bulk reorder returns the full child list in canonical order
//   - partial updates return the full updated resource
//   - deletes cascade to descendants
//   - dynamic groups never accept bookmark writes
package apitest

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pingrid/pingrid/internal/model"
)

// Server is the fake backend. All state lives in the four maps; the mutex
// makes it safe for parallel test use.
type Server struct {
	mu        sync.Mutex
	pages     map[string]*model.Page
	sections  map[string]*model.Section
	groups    map[string]*model.Group
	bookmarks map[string]*model.Bookmark

	router *chi.Mux

	// failNext, when set, makes the next request fail with the given
	// status and message, then clears itself. Lets tests exercise the
	// error paths without a second fixture.
	failNext *injectedFailure
}

type injectedFailure struct {
	status  int
	code    string
	message string
}

// NewServer creates a fake backend with empty state.
func NewServer() *Server {
	s := &Server{
		pages:     make(map[string]*model.Page),
		sections:  make(map[string]*model.Section),
		groups:    make(map[string]*model.Group),
		bookmarks: make(map[string]*model.Bookmark),
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// Handler returns the http.Handler to mount in an httptest.Server.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		fail := s.failNext
		s.failNext = nil
		s.mu.Unlock()

		if fail != nil {
			writeError(w, fail.status, fail.code, fail.message)
			return
		}
		s.router.ServeHTTP(w, r)
	})
}

// FailNext makes the next request fail with the given status and message.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = &injectedFailure{status: status, code: "injected", message: message}
}

func (s *Server) routes() {
	r := s.router

	r.Route("/api", func(r chi.Router) {
		r.Get("/pages", s.handleListPages)
		r.Post("/pages", s.handleCreatePage)
		r.Put("/pages/order", s.handleReorderPages)
		r.Patch("/pages/{id}", s.handleUpdatePage)
		r.Delete("/pages/{id}", s.handleDeletePage)
		r.Get("/pages/{id}/sections", s.handleListSections)
		r.Put("/pages/{id}/sections/order", s.handleReorderSections)

		r.Post("/sections", s.handleCreateSection)
		r.Patch("/sections/{id}", s.handleUpdateSection)
		r.Delete("/sections/{id}", s.handleDeleteSection)
		r.Get("/sections/{id}/groups", s.handleListGroups)
		r.Put("/sections/{id}/groups/order", s.handleReorderGroups)

		r.Post("/groups", s.handleCreateGroup)
		r.Post("/groups/inbox", s.handleEnsureInbox)
		r.Patch("/groups/{id}", s.handleUpdateGroup)
		r.Delete("/groups/{id}", s.handleDeleteGroup)
		r.Get("/groups/{id}/bookmarks", s.handleListBookmarks)
		r.Put("/groups/{id}/bookmarks/order", s.handleReorderBookmarks)

		r.Post("/bookmarks", s.handleCreateBookmark)
		r.Get("/bookmarks/top-used", s.handleTopUsed)
		r.Patch("/bookmarks/{id}", s.handleUpdateBookmark)
		r.Delete("/bookmarks/{id}", s.handleDeleteBookmark)
		r.Post("/bookmarks/{id}/click", s.handleClick)
	})
}

func newID() string {
	return uuid.NewString()
}

// Seed helpers — tests build fixtures through these instead of HTTP so the
// arrange step stays short. They hold the same invariants as the handlers.

// SeedPage inserts a page with a server-assigned id and trailing order.
func (s *Server) SeedPage(name string) model.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &model.Page{ID: newID(), Name: name, DisplayOrder: len(s.pages)}
	s.pages[p.ID] = p
	return *p
}

// SeedSection inserts a section under pageID with trailing order.
func (s *Server) SeedSection(pageID, name string) model.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec := &model.Section{
		ID:           newID(),
		PageID:       pageID,
		Name:         name,
		DisplayOrder: len(s.sectionsOf(pageID)),
	}
	s.sections[sec.ID] = sec
	return *sec
}

// SeedGroup inserts a group under sectionID with trailing order.
func (s *Server) SeedGroup(sectionID string, g model.Group) model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = newID()
	g.SectionID = sectionID
	g.DisplayOrder = len(s.groupsOf(sectionID))
	if g.ColumnCount == 0 {
		g.ColumnCount = 1
	}
	if g.Type == "" {
		g.Type = model.GroupManual
	}
	stored := g
	s.groups[stored.ID] = &stored
	return g
}

// SeedBookmark inserts a bookmark at the end of its group+column.
func (s *Server) SeedBookmark(groupID string, b model.Bookmark) model.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = newID()
	b.GroupID = groupID
	if b.Column < 1 {
		b.Column = 1
	}
	b.Position = len(s.bookmarksOfColumn(groupID, b.Column))
	stored := b
	s.bookmarks[stored.ID] = &stored
	return b
}

// Bookmark returns the current server-side copy of a bookmark, for
// asserting on persisted state after a client operation.
func (s *Server) Bookmark(id string) (model.Bookmark, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookmarks[id]
	if !ok {
		return model.Bookmark{}, false
	}
	return *b, true
}

// Group returns the current server-side copy of a group.
func (s *Server) Group(id string) (model.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[id]
	if !ok {
		return model.Group{}, false
	}
	return *g, true
}

// GroupBookmarks returns a group's persisted bookmarks in canonical order.
func (s *Server) GroupBookmarks(groupID string) []model.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Bookmark, 0)
	for _, b := range s.bookmarksOf(groupID) {
		out = append(out, *b)
	}
	return out
}
