// Package importer reads Netscape-format bookmark export files (the
// HTML every browser's "export bookmarks" produces) and stages their
// entries into the Inbox group.
package importer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/pingrid/pingrid/internal/model"
)

// ParsedBookmark is one entry read from an export file. Folder is the
// innermost folder path element the entry sat under, "" at top level.
type ParsedBookmark struct {
	Title  string
	URL    string
	Folder string
}

// Parse walks a Netscape bookmark file. The format nests folders as
// <H3>name</H3> headers followed by <DL> lists; leaving a DL pops the
// folder. Anchors without an href are dropped here; URL-format filtering
// happens in the importer so the skip count can be reported.
func Parse(r io.Reader) ([]ParsedBookmark, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("importer: parsing bookmark file: %w", err)
	}

	var (
		bookmarks   []ParsedBookmark
		folderStack []string
	)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "h3" && n.FirstChild != nil {
			folderStack = append(folderStack, strings.TrimSpace(n.FirstChild.Data))
		}

		if n.Type == html.ElementNode && n.Data == "a" {
			var b ParsedBookmark
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					b.URL = attr.Val
				}
			}
			if n.FirstChild != nil {
				b.Title = strings.TrimSpace(n.FirstChild.Data)
			}
			if len(folderStack) > 0 {
				b.Folder = folderStack[len(folderStack)-1]
			}
			if b.URL != "" {
				if b.Title == "" {
					b.Title = b.URL
				}
				bookmarks = append(bookmarks, b)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && n.Data == "dl" {
			if len(folderStack) > 0 {
				folderStack = folderStack[:len(folderStack)-1]
			}
		}
	}

	walk(doc)
	return bookmarks, nil
}

// Valid reports whether a parsed entry would pass bookmark validation.
func (b ParsedBookmark) Valid() bool {
	return model.ValidURL(b.URL) && strings.TrimSpace(b.Title) != ""
}
