// Package icons ranks the static icon catalog against free-text queries
// for the icon picker.
package icons

import (
	"sort"
	"strings"
	"unicode"
)

// Match scores, strongest first. An icon's score is the best rule that
// applies to it; distance-1 fuzzy outranks distance-2, distance ≥3 is
// excluded entirely.
const (
	scoreExact     = 100
	scorePrefix    = 80
	scoreSubstring = 60
	scoreKeyword   = 40
	scoreAlias     = 30
	scoreFuzzy1    = 20
	scoreFuzzy2    = 10
)

const maxEditDistance = 2

// Search ranks catalog icons against query, closest match first.
//
// The category filter is applied before scoring, so limit always yields
// up to limit category-matching results. Equal scores break
// alphabetically — the ranking must be deterministic, never an artifact
// of sort internals.
func Search(query, category string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	pool := filterByCategory(category)
	q := strings.ToLower(strings.TrimSpace(query))

	// An empty query browses the category alphabetically.
	if q == "" {
		names := make([]string, len(pool))
		for i, icon := range pool {
			names[i] = icon.Name
		}
		sort.Strings(names)
		if len(names) > limit {
			names = names[:limit]
		}
		return names
	}

	type scored struct {
		name  string
		score int
	}
	results := make([]scored, 0, len(pool))
	for _, icon := range pool {
		if s := score(q, icon.Name); s > 0 {
			results = append(results, scored{name: icon.Name, score: s})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].name < results[j].name
	})

	if len(results) > limit {
		results = results[:limit]
	}
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.name
	}
	return names
}

func filterByCategory(category string) []Icon {
	if category == "" || category == CategoryAll {
		return catalog
	}
	out := make([]Icon, 0, len(catalog))
	for _, icon := range catalog {
		if icon.Category == category {
			out = append(out, icon)
		}
	}
	return out
}

// score applies the match rules to one icon name and returns the best
// applicable score, or 0 for no match.
func score(q, name string) int {
	lower := strings.ToLower(name)

	if lower == q {
		return scoreExact
	}
	if strings.HasPrefix(lower, q) {
		return scorePrefix
	}
	if strings.Contains(lower, q) {
		return scoreSubstring
	}

	// Per-keyword matching pays off for multi-word queries: "open mail"
	// is no substring of "mailopen", but every token matches a keyword.
	if matchesKeywords(strings.Fields(q), keywords(name)) {
		return scoreKeyword
	}

	for alias, names := range aliases {
		if alias != q && !strings.HasPrefix(alias, q) {
			continue
		}
		for _, n := range names {
			if n == name {
				return scoreAlias
			}
		}
	}

	switch levenshtein(q, lower) {
	case 1:
		return scoreFuzzy1
	case 2:
		return scoreFuzzy2
	}
	return 0
}

// matchesKeywords reports whether every query token equals or prefixes
// one of the name's keywords.
func matchesKeywords(tokens, kws []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		found := false
		for _, kw := range kws {
			if strings.HasPrefix(kw, tok) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// keywords decomposes an UpperCamelCase icon name at its case boundaries:
// "CloudUpload" → ["cloud", "upload"].
func keywords(name string) []string {
	var words []string
	start := 0
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, strings.ToLower(name[start:i]))
			start = i
		}
	}
	words = append(words, strings.ToLower(name[start:]))
	return words
}

// levenshtein is the classic two-row edit distance. The early exit on
// length difference keeps the common no-match case cheap: if the lengths
// already differ by more than the cap, the distance cannot be under it.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > maxEditDistance {
		return maxEditDistance + 1
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
