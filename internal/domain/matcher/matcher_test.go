package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		query string
		item  string
		want  bool
	}{
		{name: "exact", query: "milk", item: "milk", want: true},
		{name: "case insensitive", query: "MILK", item: "Milk", want: true},
		{name: "query inside item", query: "milk", item: "Whole Milk 1L", want: true},
		{name: "item inside query", query: "organic whole milk", item: "Milk", want: true},
		{name: "surrounding whitespace", query: "  milk\t", item: "Milk", want: true},
		{name: "collapsed inner whitespace", query: "whole   milk", item: "Whole Milk 1L", want: true},
		{name: "fullwidth letters", query: "ｍｉｌｋ", item: "Milk", want: true},
		{name: "case folding beyond ASCII", query: "STRASSE", item: "straße", want: true},
		{name: "hebrew", query: "חלב", item: "חלב 3%", want: true},
		{name: "no overlap", query: "bread", item: "Milk", want: false},
		{name: "empty query", query: "", item: "Milk", want: false},
		{name: "whitespace only query", query: "   ", item: "Milk", want: false},
		{name: "empty item", query: "milk", item: "", want: false},
		{name: "both empty", query: "", item: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.query, tt.item))
		})
	}
}

func TestMatcher_MatchAny(t *testing.T) {
	m := New("milk", "", "  ", "Eggs", "MILK")

	assert.False(t, m.Empty())
	assert.Len(t, m.queries, 2)
	assert.True(t, m.MatchAny("Whole Milk 1L"))
	assert.True(t, m.MatchAny("eggs (12)"))
	assert.False(t, m.MatchAny("Bread"))
	assert.False(t, m.MatchAny(""))
}

func TestMatcher_Empty(t *testing.T) {
	assert.True(t, New().Empty())
	assert.True(t, New("", " \n").Empty())
	assert.False(t, New().MatchAny("Milk"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "whole milk 1l", Normalize("  Whole \t Milk\n1L "))
	assert.Equal(t, "", Normalize("   "))
}
