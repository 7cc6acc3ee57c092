package apitest

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pingrid/pingrid/internal/api"
	"github.com/pingrid/pingrid/internal/model"
)

// ---- pages ----

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Page, 0, len(s.pages))
	for _, p := range s.orderedPages() {
		out = append(out, *p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var p model.Page
	if !decode(w, r, &p) {
		return
	}
	if err := p.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = newID()
	p.DisplayOrder = len(s.pages)
	stored := p
	s.pages[stored.ID] = &stored
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch api.PagePatch
	if !decode(w, r, &patch) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pages[id]
	if !ok {
		writeNotFound(w, "page", id)
		return
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Icon != nil {
		p.Icon = *patch.Icon
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	writeJSON(w, http.StatusOK, *p)
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[id]; !ok {
		writeNotFound(w, "page", id)
		return
	}
	for _, sec := range s.sectionsOf(id) {
		s.deleteSectionLocked(sec.ID)
	}
	delete(s.pages, id)
	s.renumberPages()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReorderPages(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if !decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !sameIDSet(req.IDs, pageIDs(s.orderedPages())) {
		writeBadRequest(w, "ordered id list must contain exactly the current pages")
		return
	}
	for i, id := range req.IDs {
		s.pages[id].DisplayOrder = i
	}
	out := make([]model.Page, 0, len(s.pages))
	for _, p := range s.orderedPages() {
		out = append(out, *p)
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- sections ----

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[pageID]; !ok {
		writeNotFound(w, "page", pageID)
		return
	}
	out := make([]model.Section, 0)
	for _, sec := range s.sectionsOf(pageID) {
		out = append(out, *sec)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSection(w http.ResponseWriter, r *http.Request) {
	var sec model.Section
	if !decode(w, r, &sec) {
		return
	}
	if err := sec.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[sec.PageID]; !ok {
		writeNotFound(w, "page", sec.PageID)
		return
	}
	sec.ID = newID()
	sec.DisplayOrder = len(s.sectionsOf(sec.PageID))
	stored := sec
	s.sections[stored.ID] = &stored
	writeJSON(w, http.StatusCreated, sec)
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch api.SectionPatch
	if !decode(w, r, &patch) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sec, ok := s.sections[id]
	if !ok {
		writeNotFound(w, "section", id)
		return
	}
	if patch.Name != nil {
		sec.Name = *patch.Name
	}
	if patch.Collapsed != nil {
		sec.Collapsed = *patch.Collapsed
	}
	if patch.PageID != nil && *patch.PageID != sec.PageID {
		// Reparent: trailing order in the destination page, source page
		// renumbered so its sequence stays dense.
		if _, ok := s.pages[*patch.PageID]; !ok {
			writeNotFound(w, "page", *patch.PageID)
			return
		}
		oldPage := sec.PageID
		sec.PageID = *patch.PageID
		sec.DisplayOrder = len(s.sectionsOf(sec.PageID)) - 1 // already included
		s.renumberSections(oldPage)
		s.renumberSections(sec.PageID)
	}
	writeJSON(w, http.StatusOK, *sec)
}

func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	sec, ok := s.sections[id]
	if !ok {
		writeNotFound(w, "section", id)
		return
	}
	pageID := sec.PageID
	s.deleteSectionLocked(id)
	s.renumberSections(pageID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReorderSections(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "id")
	var req struct {
		IDs []string `json:"ids"`
	}
	if !decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.sectionsOf(pageID)
	if !sameIDSet(req.IDs, sectionIDs(current)) {
		writeBadRequest(w, "ordered id list must contain exactly the page's sections")
		return
	}
	for i, id := range req.IDs {
		s.sections[id].DisplayOrder = i
	}
	out := make([]model.Section, 0, len(current))
	for _, sec := range s.sectionsOf(pageID) {
		out = append(out, *sec)
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- groups ----

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sections[sectionID]; !ok {
		writeNotFound(w, "section", sectionID)
		return
	}
	out := make([]model.Group, 0)
	for _, g := range s.groupsOf(sectionID) {
		out = append(out, *g)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var g model.Group
	if !decode(w, r, &g) {
		return
	}
	if g.ColumnCount == 0 {
		g.ColumnCount = 1
	}
	if g.Type == "" {
		g.Type = model.GroupManual
	}
	if err := g.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sections[g.SectionID]; !ok {
		writeNotFound(w, "section", g.SectionID)
		return
	}
	g.ID = newID()
	g.DisplayOrder = len(s.groupsOf(g.SectionID))
	stored := g
	s.groups[stored.ID] = &stored
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleUpdateGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch api.GroupPatch
	if !decode(w, r, &patch) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[id]
	if !ok {
		writeNotFound(w, "group", id)
		return
	}
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.ColumnCount != nil {
		// Deliberately no clamping of existing bookmark columns — the
		// stored values stay as they are (acknowledged inconsistency;
		// clients clamp at read time).
		g.ColumnCount = *patch.ColumnCount
	}
	if patch.BookmarkLimit != nil {
		g.BookmarkLimit = *patch.BookmarkLimit
	}
	if patch.Width != nil {
		g.Width = *patch.Width
	}
	if patch.SectionID != nil && *patch.SectionID != g.SectionID {
		if _, ok := s.sections[*patch.SectionID]; !ok {
			writeNotFound(w, "section", *patch.SectionID)
			return
		}
		oldSection := g.SectionID
		g.SectionID = *patch.SectionID
		g.DisplayOrder = len(s.groupsOf(g.SectionID)) - 1 // already included
		s.renumberGroups(oldSection)
		s.renumberGroups(g.SectionID)
	}
	writeJSON(w, http.StatusOK, *g)
}

// handleEnsureInbox returns the reserved "Inbox" staging group, creating
// it lazily on first use. The inbox lives under a hidden staging section
// (no page), which is why it can never show up in a page's section list.
func (s *Server) handleEnsureInbox(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		if g.IsInbox() {
			writeJSON(w, http.StatusOK, *g)
			return
		}
	}
	staging := &model.Section{ID: newID(), Name: "staging"}
	s.sections[staging.ID] = staging
	inbox := &model.Group{
		ID:          newID(),
		SectionID:   staging.ID,
		Name:        model.InboxGroupName,
		ColumnCount: 1,
		Type:        model.GroupManual,
	}
	s.groups[inbox.ID] = inbox
	writeJSON(w, http.StatusCreated, *inbox)
}

func (s *Server) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[id]
	if !ok {
		writeNotFound(w, "group", id)
		return
	}
	sectionID := g.SectionID
	s.deleteGroupLocked(id)
	s.renumberGroups(sectionID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReorderGroups(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "id")
	var req struct {
		IDs []string `json:"ids"`
	}
	if !decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.groupsOf(sectionID)
	if !sameIDSet(req.IDs, groupIDs(current)) {
		writeBadRequest(w, "ordered id list must contain exactly the section's groups")
		return
	}
	for i, id := range req.IDs {
		s.groups[id].DisplayOrder = i
	}
	out := make([]model.Group, 0, len(current))
	for _, g := range s.groupsOf(sectionID) {
		out = append(out, *g)
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- bookmarks ----

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[groupID]; !ok {
		writeNotFound(w, "group", groupID)
		return
	}
	out := make([]model.Bookmark, 0)
	for _, b := range s.bookmarksOf(groupID) {
		out = append(out, *b)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateBookmark(w http.ResponseWriter, r *http.Request) {
	var b model.Bookmark
	if !decode(w, r, &b) {
		return
	}
	if err := b.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[b.GroupID]
	if !ok {
		writeNotFound(w, "group", b.GroupID)
		return
	}
	if g.IsDynamic() {
		writeBadRequest(w, "dynamic groups do not accept bookmarks")
		return
	}
	b.ID = newID()
	if b.Column < 1 || b.Column > g.ColumnCount {
		b.Column = 1
	}
	b.Position = len(s.bookmarksOfColumn(b.GroupID, b.Column))
	stored := b
	s.bookmarks[stored.ID] = &stored
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleUpdateBookmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch api.BookmarkPatch
	if !decode(w, r, &patch) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookmarks[id]
	if !ok {
		writeNotFound(w, "bookmark", id)
		return
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.URL != nil {
		if !model.ValidURL(*patch.URL) {
			writeBadRequest(w, "url must start with http:// or https://")
			return
		}
		b.URL = *patch.URL
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.FaviconURL != nil {
		b.FaviconURL = *patch.FaviconURL
	}

	switch {
	case patch.GroupID != nil && *patch.GroupID != b.GroupID:
		// Cross-group move: append to the end of the destination column.
		dest, ok := s.groups[*patch.GroupID]
		if !ok {
			writeNotFound(w, "group", *patch.GroupID)
			return
		}
		if dest.IsDynamic() {
			writeBadRequest(w, "dynamic groups do not accept bookmarks")
			return
		}
		oldGroup, oldColumn := b.GroupID, b.Column
		b.GroupID = dest.ID
		if patch.Column != nil {
			b.Column = *patch.Column
		}
		b.Column = model.ClampColumn(b.Column, dest.ColumnCount)
		b.Position = len(s.bookmarksOfColumn(b.GroupID, b.Column)) - 1 // already included
		s.renumberColumn(oldGroup, oldColumn)
		s.renumberColumn(b.GroupID, b.Column)

	case patch.Column != nil && *patch.Column != b.Column:
		// Same-group column change: server assigns the trailing position.
		g := s.groups[b.GroupID]
		oldColumn := b.Column
		b.Column = model.ClampColumn(*patch.Column, g.ColumnCount)
		b.Position = len(s.bookmarksOfColumn(b.GroupID, b.Column)) - 1 // already included
		s.renumberColumn(b.GroupID, oldColumn)
		s.renumberColumn(b.GroupID, b.Column)
	}

	writeJSON(w, http.StatusOK, *b)
}

func (s *Server) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookmarks[id]
	if !ok {
		writeNotFound(w, "bookmark", id)
		return
	}
	groupID, column := b.GroupID, b.Column
	delete(s.bookmarks, id)
	s.renumberColumn(groupID, column)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReorderBookmarks(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	var req struct {
		Column int      `json:"column"`
		IDs    []string `json:"ids"`
	}
	if !decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[groupID]
	if !ok {
		writeNotFound(w, "group", groupID)
		return
	}
	if g.IsDynamic() {
		writeBadRequest(w, "dynamic groups cannot be reordered")
		return
	}
	seen := make(map[string]bool, len(req.IDs))
	for _, id := range req.IDs {
		b, ok := s.bookmarks[id]
		if !ok || b.GroupID != groupID {
			writeBadRequest(w, "ordered id list must contain only the group's bookmarks")
			return
		}
		if seen[id] {
			writeBadRequest(w, "ordered id list must not repeat ids")
			return
		}
		seen[id] = true
	}
	// The list may pull ids in from other columns, but it must cover every
	// bookmark already in the target column — an omitted one would keep
	// its old position and leave the column's sequence with duplicates.
	for _, b := range s.bookmarksOfColumn(groupID, req.Column) {
		if !seen[b.ID] {
			writeBadRequest(w, "ordered id list must contain every bookmark in the column")
			return
		}
	}
	columns := make(map[int]bool)
	for i, id := range req.IDs {
		b := s.bookmarks[id]
		if b.Column != req.Column {
			columns[b.Column] = true
		}
		b.Column = req.Column
		b.Position = i
	}
	// Columns that lost a bookmark get renumbered so they stay dense.
	for col := range columns {
		s.renumberColumn(groupID, col)
	}
	out := make([]model.Bookmark, 0)
	for _, b := range s.bookmarksOf(groupID) {
		out = append(out, *b)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookmarks[id]
	if !ok {
		writeNotFound(w, "bookmark", id)
		return
	}
	b.VisitCount++
	writeJSON(w, http.StatusOK, *b)
}

func (s *Server) handleTopUsed(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ranked := make([]model.Bookmark, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		ranked = append(ranked, *b)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].VisitCount != ranked[j].VisitCount {
			return ranked[i].VisitCount > ranked[j].VisitCount
		}
		return ranked[i].Title < ranked[j].Title // deterministic tie-break
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	writeJSON(w, http.StatusOK, ranked)
}

// ---- cascade + id-set helpers (callers hold s.mu) ----

func (s *Server) deleteSectionLocked(id string) {
	for _, g := range s.groupsOf(id) {
		s.deleteGroupLocked(g.ID)
	}
	delete(s.sections, id)
}

func (s *Server) deleteGroupLocked(id string) {
	for _, b := range s.bookmarksOf(id) {
		delete(s.bookmarks, b.ID)
	}
	delete(s.groups, id)
}

func pageIDs(pages []*model.Page) []string {
	ids := make([]string, len(pages))
	for i, p := range pages {
		ids[i] = p.ID
	}
	return ids
}

func sectionIDs(sections []*model.Section) []string {
	ids := make([]string, len(sections))
	for i, sec := range sections {
		ids[i] = sec.ID
	}
	return ids
}

func groupIDs(groups []*model.Group) []string {
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	return ids
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, id := range a {
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	for _, id := range b {
		if !seen[id] {
			return false
		}
	}
	return true
}
