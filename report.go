package fitlog

import "github.com/etnz/fitlog/date"

// DayReport summarizes one day's consumption against the profile's target.
// It is a plain value assembled on demand; rendering lives in the renderer
// subpackage.
type DayReport struct {
	Date          date.Date
	Meals         []Meal
	ConsumedKcal  int
	TargetKcal    int
	RemainingKcal int // negative once over target
	Progress      Progress
	Macros        Macros // estimate for the daily target
}

// DailyReport assembles the report for the given day under the given
// profile.
func (l *Ledger) DailyReport(on date.Date, p Profile) *DayReport {
	rec := l.Day(on)
	target := ComputeTarget(p)
	return &DayReport{
		Date:          on,
		Meals:         rec.Meals,
		ConsumedKcal:  rec.TotalCalories,
		TargetKcal:    target,
		RemainingKcal: target - rec.TotalCalories,
		Progress:      Classify(rec.TotalCalories, target),
		Macros:        EstimateMacros(target),
	}
}
