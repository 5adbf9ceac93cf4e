package fitlog

import "github.com/shopspring/decimal"

// Macros is a rough macronutrient split for a calorie amount, in grams.
type Macros struct {
	CarbsG   int `json:"carbsG"`
	ProteinG int `json:"proteinG"`
	FatG     int `json:"fatG"`
}

// Macro split: 50% carbohydrates, 20% protein, 30% fat, at 4 kcal/g for
// carbohydrates and protein and 9 kcal/g for fat.
var (
	carbsShare   = decimal.RequireFromString("0.5")
	proteinShare = decimal.RequireFromString("0.2")
	fatShare     = decimal.RequireFromString("0.3")

	kcalPerGramCarbs   = decimal.NewFromInt(4)
	kcalPerGramProtein = decimal.NewFromInt(4)
	kcalPerGramFat     = decimal.NewFromInt(9)
)

// EstimateMacros derives a standard macronutrient estimate from a daily
// calorie amount. It is a coarse guideline, not nutrient tracking.
func EstimateMacros(kcal int) Macros {
	total := decimal.NewFromInt(int64(kcal))
	grams := func(share, kcalPerGram decimal.Decimal) int {
		return int(total.Mul(share).Div(kcalPerGram).Round(0).IntPart())
	}
	return Macros{
		CarbsG:   grams(carbsShare, kcalPerGramCarbs),
		ProteinG: grams(proteinShare, kcalPerGramProtein),
		FatG:     grams(fatShare, kcalPerGramFat),
	}
}
