package fitlog

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/etnz/fitlog/date"
)

// Logical store keys. The values are JSON documents, so any string
// key-value backend can hold them.
const (
	keyProfile   = "profile"
	keyLedger    = "ledger"
	keyNameIndex = "mealNameIndex"
)

// encodeDays serializes the date to day-record mapping. When overlay is not
// nil it replaces (or adds) the record for its own date, which lets the
// ledger serialize a pending mutation before committing it in memory.
func encodeDays(days map[date.Date]*DayRecord, overlay *DayRecord) (string, error) {
	m := make(map[string]*DayRecord, len(days)+1)
	for on, rec := range days {
		m[on.String()] = rec
	}
	if overlay != nil {
		m[overlay.Date.String()] = overlay
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("could not encode ledger: %w", err)
	}
	return string(b), nil
}

// decodeDays parses the stored mapping. Totals are recomputed from the
// meals; a stored total that disagrees is repaired and logged, never
// trusted.
func decodeDays(s string) (map[date.Date]*DayRecord, error) {
	var m map[string]*DayRecord
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	days := make(map[date.Date]*DayRecord, len(m))
	for k, rec := range m {
		on, err := date.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("could not decode ledger: %w", err)
		}
		if rec == nil {
			rec = &DayRecord{}
		}
		rec.Date = on
		if got := rec.sum(); got != rec.TotalCalories {
			log.Printf("fitlog: repairing total for %s: stored %d, meals sum to %d", on, rec.TotalCalories, got)
		}
		rec.recompute()
		days[on] = rec
	}
	return days, nil
}

// indexEntryJSON is the serialized form of one usage-frequency entry.
type indexEntryJSON struct {
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"lastUsed"`
}

// encodeNameIndex serializes the suggestion index, sorted by name then
// calories so the output is canonical.
func encodeNameIndex(x *SuggestionIndex) (string, error) {
	entries := make([]indexEntryJSON, 0, len(x.entries))
	for key, e := range x.entries {
		entries = append(entries, indexEntryJSON{
			Name:     e.name,
			Calories: key.calories,
			Count:    e.count,
			LastUsed: e.lastUsed,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Calories < entries[j].Calories
	})
	b, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("could not encode name index: %w", err)
	}
	return string(b), nil
}

// decodeNameIndex parses a stored usage-frequency table.
func decodeNameIndex(s string) (*SuggestionIndex, error) {
	var entries []indexEntryJSON
	if err := json.Unmarshal([]byte(s), &entries); err != nil {
		return nil, fmt.Errorf("could not decode name index: %w", err)
	}
	x := NewSuggestionIndex()
	for _, e := range entries {
		key := suggestionKey{name: strings.ToLower(e.Name), calories: e.Calories}
		x.entries[key] = &suggestionEntry{
			name:     e.Name,
			calories: e.Calories,
			count:    e.Count,
			lastUsed: e.LastUsed,
		}
	}
	return x, nil
}
