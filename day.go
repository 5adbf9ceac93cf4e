package fitlog

import "github.com/etnz/fitlog/date"

// DayRecord holds one calendar day's meals in insertion order, together
// with the derived calorie total.
//
// TotalCalories is always recomputed from the meals, never mutated
// independently: an absent record and an explicit empty record are
// equivalent (zero meals, zero calories).
type DayRecord struct {
	Date          date.Date `json:"date"`
	Meals         []Meal    `json:"meals"`
	TotalCalories int       `json:"totalCalories"`
}

// sum returns the calorie sum of the day's meals.
func (r *DayRecord) sum() int {
	total := 0
	for _, m := range r.Meals {
		total += m.Calories
	}
	return total
}

// recompute refreshes the derived total from the meal list.
func (r *DayRecord) recompute() { r.TotalCalories = r.sum() }

// clone returns a deep copy, so callers can never alias the ledger's
// internal state.
func (r *DayRecord) clone() DayRecord {
	c := *r
	if r.Meals != nil {
		c.Meals = make([]Meal, len(r.Meals))
		copy(c.Meals, r.Meals)
	}
	return c
}

// mealIndex returns the position of the meal with the given id, or -1.
func (r *DayRecord) mealIndex(id string) int {
	for i, m := range r.Meals {
		if m.ID == id {
			return i
		}
	}
	return -1
}
