// Package keyword implements ordered keyword-containment rule tables.
//
// A Table holds rules in declaration order. Matching lowercases the subject
// and returns the result of the first rule whose keyword is a substring of
// it, so earlier rules win when a subject contains several keywords.
package keyword

import (
	"strings"
	"unicode"
)

type Rule[T any] struct {
	Keyword string
	Result  T
}

// Table is immutable after construction.
type Table[T any] struct {
	rules []Rule[T]
	def   T
}

// NewTable builds a table from rules in the given order. Keywords are
// lowercased; empty keywords are dropped since they would match everything.
func NewTable[T any](def T, rules ...[]Rule[T]) Table[T] {
	t := Table[T]{def: def}
	for _, group := range rules {
		for _, r := range group {
			kw := strings.ToLower(r.Keyword)
			if kw == "" {
				continue
			}
			t.rules = append(t.rules, Rule[T]{Keyword: kw, Result: r.Result})
		}
	}
	return t
}

// Rules expands several keywords sharing one result, preserving their order.
func Rules[T any](result T, keywords ...string) []Rule[T] {
	out := make([]Rule[T], 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, Rule[T]{Keyword: kw, Result: result})
	}
	return out
}

// Match returns the first matching result or the table default.
func (t Table[T]) Match(subject string) T {
	if res, ok := t.Lookup(subject); ok {
		return res
	}
	return t.def
}

// Lookup reports whether any rule matched.
func (t Table[T]) Lookup(subject string) (T, bool) {
	subject = strings.ToLower(subject)
	for _, r := range t.rules {
		if strings.Contains(subject, r.Keyword) {
			return r.Result, true
		}
	}
	var zero T
	return zero, false
}

func (t Table[T]) Default() T {
	return t.def
}

func (t Table[T]) Len() int {
	return len(t.rules)
}

// All returns a copy of the rules in match order.
func (t Table[T]) All() []Rule[T] {
	out := make([]Rule[T], len(t.rules))
	copy(out, t.rules)
	return out
}

// Contains reports whether the lowercased subject contains any keyword.
func Contains(subject string, keywords ...string) bool {
	subject = strings.ToLower(subject)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(subject, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// ContainsWord reports whether word appears in subject delimited by
// non-word characters (letters, digits and underscore are word characters).
func ContainsWord(subject, word string) bool {
	word = strings.ToLower(word)
	if word == "" {
		return false
	}
	tokens := strings.FieldsFunc(strings.ToLower(subject), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
	for _, tok := range tokens {
		if tok == word {
			return true
		}
	}
	return false
}
