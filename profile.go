package fitlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/etnz/fitlog/kv"
)

// Sex is the biological sex used by the BMR formula.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ActivityLevel scales the basal metabolic rate into a daily target.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

// Profile holds the user biometrics the daily calorie target derives from.
// It is created with defaults on first run and mutated only through an
// explicit SaveProfile.
type Profile struct {
	WeightKg float64       `json:"weightKg"`
	HeightCm float64       `json:"heightCm"`
	AgeYears int           `json:"ageYears"`
	Sex      Sex           `json:"sex"`
	Activity ActivityLevel `json:"activityLevel"`

	// ManualTarget bypasses the formula: when set, ManualTargetKcal is the
	// daily target verbatim.
	ManualTarget     bool `json:"manualTarget"`
	ManualTargetKcal int  `json:"manualTargetKcal"`
}

// DefaultProfile returns the first-run profile: a 30 year old male of
// average build with moderate activity, manual target off but pre-filled
// with 2000 kcal.
func DefaultProfile() Profile {
	return Profile{
		WeightKg:         70,
		HeightCm:         170,
		AgeYears:         30,
		Sex:              Male,
		Activity:         Moderate,
		ManualTarget:     false,
		ManualTargetKcal: 2000,
	}
}

// Validate checks the profile for values the formulas cannot work with.
func (p Profile) Validate() error {
	if p.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %g kg", ErrValidation, p.WeightKg)
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("%w: height must be positive, got %g cm", ErrValidation, p.HeightCm)
	}
	if p.AgeYears <= 0 {
		return fmt.Errorf("%w: age must be positive, got %d", ErrValidation, p.AgeYears)
	}
	if p.Sex != Male && p.Sex != Female {
		return fmt.Errorf("%w: unknown sex %q", ErrValidation, p.Sex)
	}
	if _, ok := activityMultipliers[p.Activity]; !ok {
		return fmt.Errorf("%w: unknown activity level %q", ErrValidation, p.Activity)
	}
	if p.ManualTarget && p.ManualTargetKcal <= 0 {
		return fmt.Errorf("%w: manual target must be positive, got %d kcal", ErrValidation, p.ManualTargetKcal)
	}
	return nil
}

// BMI returns the body mass index, weight over squared height in meters.
func (p Profile) BMI() float64 {
	if p.HeightCm <= 0 {
		return 0
	}
	h := p.HeightCm / 100
	return p.WeightKg / (h * h)
}

// BMICategory is the common four-bucket reading of a BMI value.
type BMICategory string

const (
	Underweight BMICategory = "underweight"
	NormalRange BMICategory = "normal"
	Overweight  BMICategory = "overweight"
	Obese       BMICategory = "obese"
)

// BMICategory classifies the profile's BMI.
func (p Profile) BMICategory() BMICategory {
	bmi := p.BMI()
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalRange
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// profileVersion tags the serialized form so that future field additions can
// default explicitly on decode instead of relying on zero values.
const profileVersion = 1

// profileJSON is the decode form of Profile. Fields added after the first
// release are pointers, so that payloads written by older versions default
// explicitly rather than silently.
type profileJSON struct {
	Version          int            `json:"version"`
	WeightKg         float64        `json:"weightKg"`
	HeightCm         float64        `json:"heightCm"`
	AgeYears         int            `json:"ageYears"`
	Sex              *Sex           `json:"sex"`
	Activity         *ActivityLevel `json:"activityLevel"`
	ManualTarget     *bool          `json:"manualTarget"`
	ManualTargetKcal *int           `json:"manualTargetKcal"`
}

func encodeProfile(p Profile) (string, error) {
	js := profileJSON{
		Version:          profileVersion,
		WeightKg:         p.WeightKg,
		HeightCm:         p.HeightCm,
		AgeYears:         p.AgeYears,
		Sex:              &p.Sex,
		Activity:         &p.Activity,
		ManualTarget:     &p.ManualTarget,
		ManualTargetKcal: &p.ManualTargetKcal,
	}
	b, err := json.Marshal(js)
	if err != nil {
		return "", fmt.Errorf("could not encode profile: %w", err)
	}
	return string(b), nil
}

func decodeProfile(s string) (Profile, error) {
	var js profileJSON
	if err := json.Unmarshal([]byte(s), &js); err != nil {
		return Profile{}, fmt.Errorf("could not decode profile: %w", err)
	}
	p := Profile{
		WeightKg: js.WeightKg,
		HeightCm: js.HeightCm,
		AgeYears: js.AgeYears,
		// Pre-versioning payloads had no sex, activity or manual-target
		// fields. Default them like the first-run profile does.
		Sex:      Male,
		Activity: Moderate,
	}
	if js.Sex != nil {
		p.Sex = *js.Sex
	}
	if js.Activity != nil {
		p.Activity = *js.Activity
	}
	if js.ManualTarget != nil {
		p.ManualTarget = *js.ManualTarget
	}
	if js.ManualTargetKcal != nil {
		p.ManualTargetKcal = *js.ManualTargetKcal
	}
	return p, nil
}

// LoadProfile reads the profile from the store. A missing or corrupt
// payload falls back to DefaultProfile so the application keeps working; a
// store failure is reported alongside the default.
func LoadProfile(ctx context.Context, store kv.Store) (Profile, error) {
	s, ok, err := store.Get(ctx, keyProfile)
	if err != nil {
		return DefaultProfile(), fmt.Errorf("%w: loading profile: %v", ErrStorage, err)
	}
	if !ok {
		return DefaultProfile(), nil
	}
	p, err := decodeProfile(s)
	if err != nil {
		log.Printf("fitlog: ignoring corrupt stored profile: %v", err)
		return DefaultProfile(), nil
	}
	return p, nil
}

// SaveProfile validates and persists the profile.
func SaveProfile(ctx context.Context, store kv.Store, p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s, err := encodeProfile(p)
	if err != nil {
		return err
	}
	if err := store.Set(ctx, keyProfile, s); err != nil {
		return fmt.Errorf("%w: saving profile: %v", ErrStorage, err)
	}
	return nil
}
