package fitlog

import (
	"reflect"
	"testing"

	"github.com/etnz/fitlog/date"
)

func TestEncodeDecodeDays(t *testing.T) {
	on := date.MustParse("2025-08-30")
	days := map[date.Date]*DayRecord{
		on: {
			Date: on,
			Meals: []Meal{
				{ID: "a", Name: "Oatmeal", Calories: 350, Timestamp: at(8)},
				{ID: "b", Name: "Soup", Calories: 300, Timestamp: at(12)},
			},
			TotalCalories: 650,
		},
	}

	s, err := encodeDays(days, nil)
	if err != nil {
		t.Fatalf("encodeDays() failed: %v", err)
	}
	got, err := decodeDays(s)
	if err != nil {
		t.Fatalf("decodeDays() failed: %v", err)
	}
	if !reflect.DeepEqual(got, days) {
		t.Errorf("round trip = %+v, want %+v", got, days)
	}
}

func TestEncodeDaysOverlay(t *testing.T) {
	on := date.MustParse("2025-08-30")
	days := map[date.Date]*DayRecord{
		on: {Date: on, Meals: []Meal{{ID: "a", Name: "Toast", Calories: 200}}, TotalCalories: 200},
	}
	pending := &DayRecord{
		Date:          on,
		Meals:         []Meal{{ID: "a", Name: "Toast", Calories: 200}, {ID: "b", Name: "Soup", Calories: 300}},
		TotalCalories: 500,
	}

	s, err := encodeDays(days, pending)
	if err != nil {
		t.Fatalf("encodeDays() failed: %v", err)
	}
	got, err := decodeDays(s)
	if err != nil {
		t.Fatalf("decodeDays() failed: %v", err)
	}
	if len(got) != 1 || got[on].TotalCalories != 500 || len(got[on].Meals) != 2 {
		t.Errorf("overlay did not replace the stored record: %+v", got[on])
	}
}

func TestDecodeDaysRepairsTotal(t *testing.T) {
	// A stored total that disagrees with the meals is recomputed.
	s := `{"2025-08-30":{"date":"2025-08-30","meals":[{"id":"a","name":"Toast","calories":200,"timestamp":"2025-08-30T08:00:00Z"}],"totalCalories":9999}}`
	got, err := decodeDays(s)
	if err != nil {
		t.Fatalf("decodeDays() failed: %v", err)
	}
	rec := got[date.MustParse("2025-08-30")]
	if rec == nil || rec.TotalCalories != 200 {
		t.Errorf("decodeDays() kept the bad total: %+v", rec)
	}
}

func TestDecodeDaysRejectsBadKeys(t *testing.T) {
	for _, s := range []string{
		`not json`,
		`{"yesterday":{}}`,
	} {
		if _, err := decodeDays(s); err == nil {
			t.Errorf("decodeDays(%q) succeeded, want error", s)
		}
	}
}

func TestEncodeDecodeNameIndex(t *testing.T) {
	x := NewSuggestionIndex()
	x.Record(Meal{Name: "Oatmeal", Calories: 350, Timestamp: at(8)})
	x.Record(Meal{Name: "Oatmeal", Calories: 350, Timestamp: at(9)})
	x.Record(Meal{Name: "Soup", Calories: 300, Timestamp: at(12)})

	s, err := encodeNameIndex(x)
	if err != nil {
		t.Fatalf("encodeNameIndex() failed: %v", err)
	}
	got, err := decodeNameIndex(s)
	if err != nil {
		t.Fatalf("decodeNameIndex() failed: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("decoded index has %d entries, want 2", got.Len())
	}
	// Counts and recency survive the round trip.
	oat := got.Suggest("oatmeal", 0)
	if len(oat) != 1 || !oat[0].Timestamp.Equal(at(9)) {
		t.Errorf("round trip lost recency: %+v", oat)
	}
	if e := got.entries[suggestionKey{name: "oatmeal", calories: 350}]; e == nil || e.count != 2 {
		t.Errorf("round trip lost the usage count: %+v", e)
	}
}

func TestEncodeNameIndexIsCanonical(t *testing.T) {
	// The serialized form must not depend on map iteration order.
	build := func(order []int) string {
		meals := []Meal{
			{Name: "Soup", Calories: 300, Timestamp: at(12)},
			{Name: "Oatmeal", Calories: 350, Timestamp: at(8)},
			{Name: "Apple", Calories: 80, Timestamp: at(10)},
		}
		x := NewSuggestionIndex()
		for _, i := range order {
			x.Record(meals[i])
		}
		s, err := encodeNameIndex(x)
		if err != nil {
			t.Fatalf("encodeNameIndex() failed: %v", err)
		}
		return s
	}
	if a, b := build([]int{0, 1, 2}), build([]int{2, 0, 1}); a != b {
		t.Errorf("insertion order changed the encoding:\n%s\n%s", a, b)
	}
}

func TestDecodeNameIndexRejectsBadPayload(t *testing.T) {
	if _, err := decodeNameIndex("not json"); err == nil {
		t.Error("decodeNameIndex() succeeded on garbage, want error")
	}
}
