// Package renderer turns fitlog reports into markdown documents. The
// presentation layer decides how to display them; this package only
// produces text.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fitlog"
	md "github.com/nao1215/markdown"
)

func DailyMarkdown(r *fitlog.DayReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daily Intake for %s", r.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Consumed"),
			md.Bold(fmt.Sprintf("%d kcal", r.ConsumedKcal)),
		},
		Rows: [][]string{
			{"Target", fmt.Sprintf("%d kcal", r.TargetKcal)},
			{"Remaining", fmt.Sprintf("%d kcal", r.RemainingKcal)},
			{"Progress", fmt.Sprintf("%s (%s)", r.Progress, r.Progress.Tier)},
		},
	})

	if len(r.Meals) > 0 {
		doc.H2("Meals")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{
				"Meal",
				"Calories",
				"Time",
			},
		}
		for _, meal := range r.Meals {
			table.Rows = append(table.Rows, []string{
				meal.Name,
				fmt.Sprintf("%d kcal", meal.Calories),
				meal.Timestamp.Format("15:04"),
			})
		}
		doc.Table(table)
	}

	doc.H2("Macro Estimate")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			"Macro",
			"Grams",
		},
		Rows: [][]string{
			{"Carbohydrates", fmt.Sprintf("%d g", r.Macros.CarbsG)},
			{"Protein", fmt.Sprintf("%d g", r.Macros.ProteinG)},
			{"Fat", fmt.Sprintf("%d g", r.Macros.FatG)},
		},
	})

	return doc.String()
}
