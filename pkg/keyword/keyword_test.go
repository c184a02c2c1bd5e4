package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Match(t *testing.T) {
	table := NewTable("default",
		Rules("water", "waterproof"),
		Rules("boot", "boots"),
		Rules("rain", "rain", "drizzle"),
	)

	tests := []struct {
		name    string
		subject string
		want    string
	}{
		{name: "first declared wins", subject: "waterproof hiking boots", want: "water"},
		{name: "single keyword", subject: "Leather Boots", want: "boot"},
		{name: "case insensitive", subject: "LIGHT DRIZZLE", want: "rain"},
		{name: "substring match", subject: "rainy afternoon", want: "rain"},
		{name: "no match falls back", subject: "xyz123", want: "default"},
		{name: "empty subject", subject: "", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Match(tt.subject))
		})
	}
}

func TestTable_Lookup(t *testing.T) {
	table := NewTable(0, Rules(1, "one"), Rules(2, "two"))

	got, ok := table.Lookup("two and one")
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	got, ok = table.Lookup("three")
	assert.False(t, ok)
	assert.Equal(t, 0, got)
	assert.Equal(t, 0, table.Default())
}

func TestNewTable_NormalizesKeywords(t *testing.T) {
	table := NewTable("none",
		[]Rule[string]{{Keyword: "", Result: "empty"}},
		Rules("upper", "UPPER"),
	)

	assert.Equal(t, 1, table.Len())
	assert.Equal(t, "upper", table.All()[0].Keyword)
	assert.Equal(t, "upper", table.Match("some upper text"))
	assert.Equal(t, "none", table.Match("anything"))
}

func TestTable_AllReturnsCopy(t *testing.T) {
	table := NewTable("d", Rules("a", "alpha"))
	rules := table.All()
	rules[0].Result = "mutated"

	assert.Equal(t, "a", table.Match("alpha"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Light Rain", "snow", "rain"))
	assert.False(t, Contains("Clear sky", "rain", "snow"))
	assert.False(t, Contains("anything", ""))
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		subject string
		word    string
		want    bool
	}{
		{"Seattle, WA", "wa", true},
		{"wa", "wa", true},
		{"Washington", "wa", false},
		{"Hawaii", "wa", false},
		{"LA", "la", true},
		{"Los Angeles, LA 90001", "la", true},
		{"Dallas", "la", false},
		{"Lake_la", "la", false},
		{"anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.subject+"/"+tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsWord(tt.subject, tt.word))
		})
	}
}
