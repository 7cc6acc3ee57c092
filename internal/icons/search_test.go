package icons

import (
	"reflect"
	"sort"
	"testing"
)

func TestSearchExactMatchRanksFirst(t *testing.T) {
	got := Search("mail", CategoryAll, 10)
	if len(got) == 0 || got[0] != "Mail" {
		t.Fatalf("Search(mail) = %v, want Mail first", got)
	}
	// "MailOpen" is a prefix match and must sit above any alias match.
	if got[1] != "MailOpen" {
		t.Errorf("Search(mail)[1] = %q, want MailOpen", got[1])
	}
}

func TestSearchScoring(t *testing.T) {
	tests := []struct {
		name  string
		query string
		icon  string
		want  int
	}{
		{"exact", "inbox", "Inbox", scoreExact},
		{"exact is case-insensitive", "INBOX", "Inbox", 0}, // caller lowercases; score takes lowered q
		{"prefix", "fold", "Folder", scorePrefix},
		{"substring", "circle", "MessageCircle", scoreSubstring},
		{"keyword tokens across case boundaries", "open mail", "MailOpen", scoreKeyword},
		{"alias", "email", "AtSign", scoreAlias},
		{"fuzzy distance one", "maul", "Mail", scoreFuzzy1},
		{"fuzzy distance two", "mial", "Mail", scoreFuzzy2},
		{"distance three excluded", "mxxxl", "Mail", 0},
		{"no match", "zzz", "Folder", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := score(tt.query, tt.icon); got != tt.want {
				t.Errorf("score(%q, %q) = %d, want %d", tt.query, tt.icon, got, tt.want)
			}
		})
	}
}

func TestSearchCategoryFilterBeforeCutoff(t *testing.T) {
	// The filter runs before the limit, so every returned name belongs to
	// the category even when other categories score higher.
	got := Search("c", CategoryDevelopment, 50)
	if len(got) == 0 {
		t.Fatal("expected development matches for 'c'")
	}
	members := make(map[string]bool)
	for _, icon := range catalog {
		if icon.Category == CategoryDevelopment {
			members[icon.Name] = true
		}
	}
	for _, name := range got {
		if !members[name] {
			t.Errorf("%q leaked through the %s filter", name, CategoryDevelopment)
		}
	}
}

func TestSearchLimit(t *testing.T) {
	got := Search("o", CategoryAll, 3)
	if len(got) > 3 {
		t.Errorf("limit 3 returned %d results", len(got))
	}
	if got := Search("mail", CategoryAll, 0); got != nil {
		t.Errorf("limit 0 should return nothing, got %v", got)
	}
}

func TestSearchTieBreakIsAlphabetical(t *testing.T) {
	// All prefix matches for "git" score equally; order must be
	// alphabetical, not catalog order or sort-internals order.
	got := Search("git", CategoryAll, 10)
	if len(got) < 2 {
		t.Fatalf("Search(git) = %v, want at least 2 results", got)
	}
	prefix := []string{got[0], got[1]}
	want := []string{"GitBranch", "GitCommit"}
	if !reflect.DeepEqual(prefix, want) {
		t.Errorf("Search(git)[:2] = %v, want %v", prefix, want)
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	first := Search("ma", CategoryAll, 10)
	for i := 0; i < 20; i++ {
		if got := Search("ma", CategoryAll, 10); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: %v != %v", i, got, first)
		}
	}
}

func TestSearchEmptyQueryBrowsesAlphabetically(t *testing.T) {
	got := Search("", CategoryCommerce, 100)
	if len(got) == 0 {
		t.Fatal("empty query should list the category")
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("browse order not alphabetical: %v", got)
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"CloudUpload", []string{"cloud", "upload"}},
		{"Mail", []string{"mail"}},
		{"FolderOpen", []string{"folder", "open"}},
	}
	for _, tt := range tests {
		if got := keywords(tt.name); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("keywords(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"mail", "mail", 0},
		{"maul", "mail", 1},
		{"mial", "mail", 2},
		{"", "ab", 2},
		{"abcdef", "mail", maxEditDistance + 1}, // length gap short-circuits
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
