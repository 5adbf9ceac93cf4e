package fitlog

import (
	"reflect"
	"testing"
	"time"
)

func at(h int) time.Time {
	return time.Date(2025, 8, 30, h, 0, 0, 0, time.UTC)
}

func TestSuggestionIndex_Suggest(t *testing.T) {
	x := NewSuggestionIndex()
	x.Record(Meal{Name: "Oatmeal", Calories: 350, Timestamp: at(8)})
	x.Record(Meal{Name: "Oatmeal", Calories: 350, Timestamp: at(9)})
	x.Record(Meal{Name: "Oat Bran", Calories: 200, Timestamp: at(10)})
	x.Record(Meal{Name: "Chicken Salad", Calories: 520, Timestamp: at(12)})

	testCases := []struct {
		name      string
		query     string
		limit     int
		wantNames []string
	}{
		{"Empty query yields nothing", "", 0, nil},
		{"Blank query yields nothing", "   ", 0, nil},
		{"Case-insensitive substring", "OAT", 0, []string{"Oat Bran", "Oatmeal"}},
		{"Substring in the middle", "icken", 0, []string{"Chicken Salad"}},
		{"No match", "pizza", 0, nil},
		{"Limit caps the result", "oat", 1, []string{"Oat Bran"}},
		{"Zero limit means unlimited", "a", 0, []string{"Chicken Salad", "Oat Bran", "Oatmeal"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var names []string
			for _, m := range x.Suggest(tc.query, tc.limit) {
				names = append(names, m.Name)
			}
			if !reflect.DeepEqual(names, tc.wantNames) {
				t.Errorf("Suggest(%q, %d) = %v, want %v", tc.query, tc.limit, names, tc.wantNames)
			}
		})
	}
}

func TestSuggestionIndex_DedupByNameAndCalories(t *testing.T) {
	x := NewSuggestionIndex()
	// Same name in mixed casing and identical calories is one entry;
	// a different calorie figure is a separate one.
	x.Record(Meal{Name: "Latte", Calories: 150, Timestamp: at(8)})
	x.Record(Meal{Name: "latte", Calories: 150, Timestamp: at(9)})
	x.Record(Meal{Name: "Latte", Calories: 220, Timestamp: at(7)})

	if x.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", x.Len())
	}
	got := x.Suggest("latte", 0)
	if len(got) != 2 {
		t.Fatalf("Suggest() returned %d meals, want 2", len(got))
	}
	// The deduplicated entry keeps the most recent casing.
	if got[0].Name != "latte" || got[0].Calories != 150 {
		t.Errorf("first suggestion = %+v, want latest casing of the 150 kcal pair", got[0])
	}
	if got[1].Calories != 220 {
		t.Errorf("second suggestion = %+v, want the 220 kcal pair", got[1])
	}
}

func TestSuggestionIndex_Ranking(t *testing.T) {
	x := NewSuggestionIndex()
	// "Apple" used twice but long ago; "Apricot" used once, recently.
	x.Record(Meal{Name: "Apple", Calories: 80, Timestamp: at(6)})
	x.Record(Meal{Name: "Apple", Calories: 80, Timestamp: at(7)})
	x.Record(Meal{Name: "Apricot", Calories: 40, Timestamp: at(11)})
	// Two entries tied on recency and count break the tie by name.
	x.Record(Meal{Name: "Avocado", Calories: 240, Timestamp: at(5)})
	x.Record(Meal{Name: "Almonds", Calories: 160, Timestamp: at(5)})

	var names []string
	for _, m := range x.Suggest("a", 0) {
		names = append(names, m.Name)
	}
	want := []string{"Apricot", "Apple", "Almonds", "Avocado"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Suggest() order = %v, want recency, then count, then name: %v", names, want)
	}
}

func TestSuggestionIndex_TemplatesAreNotLedgerEntries(t *testing.T) {
	x := NewSuggestionIndex()
	used := at(9)
	x.Record(Meal{ID: "some-id", Name: "Oatmeal", Calories: 350, Timestamp: used})

	got := x.Suggest("oat", 0)
	if len(got) != 1 {
		t.Fatalf("Suggest() returned %d meals, want 1", len(got))
	}
	if got[0].ID != "" {
		t.Errorf("suggestion carries a ledger id %q, want empty", got[0].ID)
	}
	if !got[0].Timestamp.Equal(used) {
		t.Errorf("suggestion timestamp = %v, want last use %v", got[0].Timestamp, used)
	}
}

func TestSuggestionIndex_Clear(t *testing.T) {
	x := NewSuggestionIndex()
	x.Record(Meal{Name: "Oatmeal", Calories: 350, Timestamp: at(8)})
	x.Clear()
	if x.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", x.Len())
	}
	if got := x.Suggest("oat", 0); got != nil {
		t.Errorf("Suggest() after Clear() = %+v, want none", got)
	}
}
