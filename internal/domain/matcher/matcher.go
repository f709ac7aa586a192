// Package matcher decides whether a requested item name refers to a catalog item.
//
// Matching is a substring heuristic: after normalization, a query matches an
// item when either string contains the other, so "milk" matches "Whole Milk 1L"
// and "whole milk 1l" matches "Milk". False positives are accepted.
package matcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC, Unicode case folding and whitespace collapsing.
// The result is what Matches compares.
func Normalize(s string) string {
	folded := cases.Fold().String(norm.NFKC.String(s))

	return strings.Join(strings.Fields(folded), " ")
}

// Matches reports whether query and item refer to the same product.
// An empty query or item never matches.
func Matches(query, item string) bool {
	return matchNormalized(Normalize(query), Normalize(item))
}

// Matcher holds a pre-normalized set of queries so a catalog scan normalizes
// each query once instead of once per inventory entry.
type Matcher struct {
	queries []string
}

// New builds a Matcher; empty queries are dropped and duplicates collapsed.
func New(queries ...string) *Matcher {
	seen := make(map[string]struct{}, len(queries))
	normalized := make([]string, 0, len(queries))

	for _, q := range queries {
		n := Normalize(q)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}

	return &Matcher{queries: normalized}
}

// Empty reports whether the matcher can never match anything.
func (m *Matcher) Empty() bool {
	return len(m.queries) == 0
}

// MatchAny reports whether any query matches item.
func (m *Matcher) MatchAny(item string) bool {
	n := Normalize(item)
	for _, q := range m.queries {
		if matchNormalized(q, n) {
			return true
		}
	}

	return false
}

func matchNormalized(query, item string) bool {
	if query == "" || item == "" {
		return false
	}

	return strings.Contains(item, query) || strings.Contains(query, item)
}
