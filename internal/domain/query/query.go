// Package query turns raw search text into categorized tokens.
package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLen drops single-character noise such as "a" or stray initials.
const minTokenLen = 2

// Tokenize lowercases raw text and splits it on separators and whitespace.
// Order and duplicates are preserved; tokens shorter than two runes are dropped.
func Tokenize(raw string) []string {
	fields := strings.FieldsFunc(strings.ToLower(raw), isSeparator)

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenLen {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func isSeparator(r rune) bool {
	return r == ';' || r == ',' || unicode.IsSpace(r)
}

// Categorized holds query tokens grouped by category.
type Categorized struct {
	buckets map[Category][]string
	total   int
}

// Categorize assigns every token to exactly one category.
func Categorize(tokens []string) Categorized {
	c := Categorized{buckets: make(map[Category][]string, len(taxonomy)+1)}
	for _, tok := range tokens {
		cat := classify(tok)
		c.buckets[cat] = append(c.buckets[cat], tok)
		c.total++
	}
	return c
}

// Parse tokenizes and categorizes raw query text.
func Parse(raw string) Categorized {
	return Categorize(Tokenize(raw))
}

// classify returns the first category with a keyword that contains the token
// or is contained by it.
func classify(token string) Category {
	for _, ks := range taxonomy {
		for _, kw := range ks.keywords {
			if strings.Contains(token, kw) || strings.Contains(kw, token) {
				return ks.category
			}
		}
	}
	return General
}

// Tokens returns the tokens assigned to a category, in query order.
func (c Categorized) Tokens(cat Category) []string {
	return c.buckets[cat]
}

// Total returns the number of tokens across all categories.
func (c Categorized) Total() int { return c.total }

// IsEmpty reports whether the query produced no tokens.
func (c Categorized) IsEmpty() bool { return c.total == 0 }

// Map returns every category keyed by name. Empty categories map to empty slices.
func (c Categorized) Map() map[string][]string {
	out := make(map[string][]string, len(taxonomy)+1)
	for _, cat := range Categories() {
		toks := c.buckets[cat]
		cp := make([]string, len(toks))
		copy(cp, toks)
		out[string(cat)] = cp
	}
	return out
}
