package model

import "strings"

const MaxSectionNameLength = 100

// Section is a child of exactly one Page. The collapsed flag is pure UI
// state but persisted so it survives reloads.
type Section struct {
	ID           string `json:"id"`
	PageID       string `json:"page_id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
	Collapsed    bool   `json:"collapsed"`
}

func (s *Section) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return requiredField("name", "section name is required")
	}
	if len(s.Name) > MaxSectionNameLength {
		return tooLong("name", "section name", MaxSectionNameLength)
	}
	return nil
}
