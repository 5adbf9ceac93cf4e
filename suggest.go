package fitlog

import (
	"iter"
	"sort"
	"strings"
	"time"
)

// SuggestionIndex builds name-based autocomplete suggestions from
// historical meals.
//
// Entries are deduplicated by the (lowercased name, calories) pair.
// Ranking is deterministic: most recently used first, then higher usage
// count, then name and calories. Suggestions are templates for a new meal,
// not live ledger entries: their ID is empty and their Timestamp is the
// last time the pair was used.
type SuggestionIndex struct {
	entries map[suggestionKey]*suggestionEntry
}

type suggestionKey struct {
	name     string // lowercased
	calories int
}

type suggestionEntry struct {
	name     string // most recent casing the user typed
	calories int
	count    int
	lastUsed time.Time
}

// NewSuggestionIndex returns an empty index.
func NewSuggestionIndex() *SuggestionIndex {
	return &SuggestionIndex{entries: make(map[suggestionKey]*suggestionEntry)}
}

// BuildSuggestionIndex indexes every meal from the given history.
func BuildSuggestionIndex(history iter.Seq[Meal]) *SuggestionIndex {
	x := NewSuggestionIndex()
	for m := range history {
		x.Record(m)
	}
	return x
}

// Record notes one use of the meal's (name, calories) pair.
func (x *SuggestionIndex) Record(m Meal) {
	key := suggestionKey{name: strings.ToLower(m.Name), calories: m.Calories}
	e, ok := x.entries[key]
	if !ok {
		e = &suggestionEntry{name: m.Name, calories: m.Calories}
		x.entries[key] = e
	}
	e.count++
	if !m.Timestamp.Before(e.lastUsed) {
		e.lastUsed = m.Timestamp
		e.name = m.Name
	}
}

// Len returns the number of distinct (name, calories) pairs indexed.
func (x *SuggestionIndex) Len() int { return len(x.entries) }

// Clear forgets all indexed pairs.
func (x *SuggestionIndex) Clear() {
	x.entries = make(map[suggestionKey]*suggestionEntry)
}

// Suggest returns up to limit meal templates whose name contains query,
// case-insensitively. An empty query returns nothing: suggestions appear
// only once the user starts typing. A limit of zero or less means no limit.
func (x *SuggestionIndex) Suggest(query string, limit int) []Meal {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var matched []*suggestionEntry
	for key, e := range x.entries {
		if strings.Contains(key.name, query) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.lastUsed.Equal(b.lastUsed) {
			return a.lastUsed.After(b.lastUsed)
		}
		if a.count != b.count {
			return a.count > b.count
		}
		an, bn := strings.ToLower(a.name), strings.ToLower(b.name)
		if an != bn {
			return an < bn
		}
		return a.calories < b.calories
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	meals := make([]Meal, 0, len(matched))
	for _, e := range matched {
		meals = append(meals, Meal{Name: e.name, Calories: e.calories, Timestamp: e.lastUsed})
	}
	return meals
}
