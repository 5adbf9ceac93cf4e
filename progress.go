package fitlog

import "fmt"

// Tier classifies a day's consumption against the daily target.
type Tier int

const (
	// UnderOrOnTarget covers ratios up to and including 100%.
	UnderOrOnTarget Tier = iota
	// OverTarget covers ratios above 100% up to and including 135%.
	OverTarget
	// FarOverTarget covers ratios above 135%.
	FarOverTarget
)

func (t Tier) String() string {
	switch t {
	case UnderOrOnTarget:
		return "under_or_on_target"
	case OverTarget:
		return "over_target"
	case FarOverTarget:
		return "far_over_target"
	default:
		return "unknown"
	}
}

// Progress reports how a day's total relates to the target.
type Progress struct {
	Ratio float64
	Tier  Tier
}

// String formats the progress as a whole percentage.
func (p Progress) String() string {
	return fmt.Sprintf("%.0f%%", 100*p.Ratio)
}

// Classify computes the consumption ratio and its tier. The 100% and 135%
// breakpoints are compared in integer arithmetic, so a total of exactly
// 135% of the target lands in OverTarget regardless of float rounding.
//
// A non-positive target (possible only with pathological biometrics) is
// reported as ratio 0 in the lowest tier instead of dividing by zero.
func Classify(totalCalories, target int) Progress {
	if target <= 0 {
		return Progress{Ratio: 0, Tier: UnderOrOnTarget}
	}
	ratio := float64(totalCalories) / float64(target)
	switch {
	case totalCalories <= target:
		return Progress{Ratio: ratio, Tier: UnderOrOnTarget}
	case 100*totalCalories <= 135*target:
		return Progress{Ratio: ratio, Tier: OverTarget}
	default:
		return Progress{Ratio: ratio, Tier: FarOverTarget}
	}
}
