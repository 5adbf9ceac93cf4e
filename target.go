package fitlog

import "github.com/shopspring/decimal"

// activityMultipliers maps each activity level to its daily-target factor.
// The table is fixed; it is also the source of truth for valid activity
// levels in Profile.Validate.
var activityMultipliers = map[ActivityLevel]decimal.Decimal{
	Sedentary:  decimal.RequireFromString("1.2"),
	Light:      decimal.RequireFromString("1.375"),
	Moderate:   decimal.RequireFromString("1.55"),
	Active:     decimal.RequireFromString("1.725"),
	VeryActive: decimal.RequireFromString("1.9"),
}

// ComputeTarget derives the daily calorie target from the profile.
//
// With the manual override set it returns ManualTargetKcal verbatim.
// Otherwise it computes the Mifflin-St Jeor basal metabolic rate, scales it
// by the activity multiplier and rounds to a whole kcal. Pathological
// biometrics can drive the formula negative; the result is clamped at 0 so
// callers never see a negative target.
//
// The function is pure and cheap, safe to call on every profile-field
// change for a live preview.
func ComputeTarget(p Profile) int {
	if p.ManualTarget {
		return p.ManualTargetKcal
	}
	mult, ok := activityMultipliers[p.Activity]
	if !ok {
		// Unknown level in an unvalidated profile: use the first-run default.
		mult = activityMultipliers[Moderate]
	}
	target := basalMetabolicRate(p).Mul(mult).Round(0).IntPart()
	if target < 0 {
		return 0
	}
	return int(target)
}

// basalMetabolicRate computes the Mifflin-St Jeor BMR in kcal:
// 10*weight + 6.25*height - 5*age, plus 5 for males or minus 161 for
// females. Decimal arithmetic keeps the .25 and .75 coefficients exact.
func basalMetabolicRate(p Profile) decimal.Decimal {
	bmr := decimal.NewFromFloat(p.WeightKg).Mul(decimal.NewFromInt(10)).
		Add(decimal.NewFromFloat(p.HeightCm).Mul(decimal.RequireFromString("6.25"))).
		Sub(decimal.NewFromInt(int64(p.AgeYears)).Mul(decimal.NewFromInt(5)))
	if p.Sex == Female {
		return bmr.Sub(decimal.NewFromInt(161))
	}
	return bmr.Add(decimal.NewFromInt(5))
}
