package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/fitlog"
	"github.com/etnz/fitlog/date"
)

func TestDailyMarkdown(t *testing.T) {
	r := &fitlog.DayReport{
		Date: date.New(2025, time.August, 30),
		Meals: []fitlog.Meal{
			{ID: "a", Name: "Oatmeal", Calories: 350, Timestamp: time.Date(2025, 8, 30, 8, 15, 0, 0, time.UTC)},
			{ID: "b", Name: "Chicken Salad", Calories: 520, Timestamp: time.Date(2025, 8, 30, 12, 30, 0, 0, time.UTC)},
		},
		ConsumedKcal:  870,
		TargetKcal:    2507,
		RemainingKcal: 1637,
		Progress:      fitlog.Classify(870, 2507),
		Macros:        fitlog.EstimateMacros(2507),
	}

	got := DailyMarkdown(r)
	for _, want := range []string{
		"# Daily Intake for 2025-08-30",
		"870 kcal",
		"2507 kcal",
		"1637 kcal",
		"35% (under_or_on_target)",
		"## Meals",
		"Oatmeal",
		"350 kcal",
		"08:15",
		"Chicken Salad",
		"520 kcal",
		"12:30",
		"## Macro Estimate",
		"Carbohydrates",
		"Protein",
		"Fat",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DailyMarkdown() output is missing %q:\n%s", want, got)
		}
	}
}

func TestDailyMarkdownEmptyDay(t *testing.T) {
	r := &fitlog.DayReport{
		Date:          date.New(2025, time.August, 30),
		TargetKcal:    2000,
		RemainingKcal: 2000,
		Progress:      fitlog.Classify(0, 2000),
		Macros:        fitlog.EstimateMacros(2000),
	}

	got := DailyMarkdown(r)
	if strings.Contains(got, "## Meals") {
		t.Errorf("DailyMarkdown() renders a meal table for an empty day:\n%s", got)
	}
	if !strings.Contains(got, "0 kcal") {
		t.Errorf("DailyMarkdown() is missing the zero consumption line:\n%s", got)
	}
}
