package fitlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meal is a single food-intake event. A meal is immutable once created;
// edits go through Ledger.UpdateMeal, which replaces the entry while
// preserving its id and position.
type Meal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	Timestamp time.Time `json:"timestamp"`
}

// newMeal validates the user input and mints a meal with a fresh id.
func newMeal(name string, calories int, at time.Time) (Meal, error) {
	name, err := validMealInput(name, calories)
	if err != nil {
		return Meal{}, err
	}
	return Meal{
		ID:        newMealID(),
		Name:      name,
		Calories:  calories,
		Timestamp: at,
	}, nil
}

// validMealInput checks the user-provided fields and returns the trimmed name.
func validMealInput(name string, calories int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: meal name is empty", ErrValidation)
	}
	if calories <= 0 {
		return "", fmt.Errorf("%w: calories must be positive, got %d", ErrValidation, calories)
	}
	return name, nil
}

// newMealID returns a unique, opaque, time-ordered identifier. UUIDv7 sorts
// by creation time; on the (rand failure) fallback path a random v4 still
// guarantees uniqueness.
func newMealID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
