package fitlog

import (
	"context"
	"fmt"
	"iter"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/etnz/fitlog/date"
	"github.com/etnz/fitlog/kv"
)

// Ledger owns the mapping from calendar date to that day's meals and
// totals. It is the single mutable core of the engine.
//
// All mutation goes through one mutex, so a meal edit and the periodic
// rollover check can never interleave partially. Every mutation is written
// through to the store before it becomes visible in memory; if the write
// fails, the in-memory state is left exactly as it was, keeping memory and
// storage consistent.
type Ledger struct {
	mu    sync.Mutex
	store kv.Store
	now   func() time.Time

	days  map[date.Date]*DayRecord
	today date.Date
	index *SuggestionIndex
}

// Option configures a Ledger at open time.
type Option func(*Ledger)

// WithClock replaces the wall clock, mostly for tests. The clock stamps new
// meals and seeds the current day at open time; day rollover itself takes
// the current instant as an explicit argument.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// Open loads the ledger from the store.
//
// Missing or corrupt stored data falls back to an empty ledger (logged), so
// a damaged file never takes the whole application down. A store that fails
// to read at all is reported as ErrStorage.
func Open(ctx context.Context, store kv.Store, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store: store,
		now:   time.Now,
		days:  make(map[date.Date]*DayRecord),
		index: NewSuggestionIndex(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.today = date.Of(l.now())

	s, ok, err := store.Get(ctx, keyLedger)
	if err != nil {
		return nil, fmt.Errorf("%w: loading ledger: %v", ErrStorage, err)
	}
	if ok {
		days, err := decodeDays(s)
		if err != nil {
			log.Printf("fitlog: ignoring corrupt stored ledger: %v", err)
		} else {
			l.days = days
		}
	}

	s, ok, err = store.Get(ctx, keyNameIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: loading name index: %v", ErrStorage, err)
	}
	if ok {
		if index, err := decodeNameIndex(s); err != nil {
			log.Printf("fitlog: ignoring corrupt name index, rebuilding: %v", err)
			l.index = BuildSuggestionIndex(l.allMeals())
		} else {
			l.index = index
		}
	} else {
		l.index = BuildSuggestionIndex(l.allMeals())
	}
	return l, nil
}

// Today returns the day the ledger currently considers current.
func (l *Ledger) Today() date.Date {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.today
}

// AddMeal validates the input, creates a meal with a fresh id and the
// current timestamp, and appends it to the given day, creating the day
// record if absent. The created meal is returned.
func (l *Ledger) AddMeal(ctx context.Context, on date.Date, name string, calories int) (Meal, error) {
	m, err := newMeal(name, calories, l.now())
	if err != nil {
		return Meal{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.dayLocked(on)
	rec.Meals = append(rec.Meals, m)
	rec.recompute()

	if err := l.persistDays(ctx, &rec); err != nil {
		return Meal{}, err
	}
	l.days[on] = &rec
	l.recordUse(ctx, m)
	return m, nil
}

// UpdateMeal replaces the named meal in place, preserving its position and
// id. The original creation timestamp is preserved too: editing a meal does
// not change its suggestion recency.
func (l *Ledger) UpdateMeal(ctx context.Context, on date.Date, mealID, newName string, newCalories int) (Meal, error) {
	name, err := validMealInput(newName, newCalories)
	if err != nil {
		return Meal{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.dayLocked(on)
	i := rec.mealIndex(mealID)
	if i < 0 {
		return Meal{}, fmt.Errorf("%w: no meal %q on %s", ErrNotFound, mealID, on)
	}
	updated := Meal{
		ID:        rec.Meals[i].ID,
		Name:      name,
		Calories:  newCalories,
		Timestamp: rec.Meals[i].Timestamp,
	}
	rec.Meals[i] = updated
	rec.recompute()

	if err := l.persistDays(ctx, &rec); err != nil {
		return Meal{}, err
	}
	l.days[on] = &rec
	l.recordUse(ctx, updated)
	return updated, nil
}

// DeleteMeal removes the named meal from the given day.
func (l *Ledger) DeleteMeal(ctx context.Context, on date.Date, mealID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.dayLocked(on)
	i := rec.mealIndex(mealID)
	if i < 0 {
		return fmt.Errorf("%w: no meal %q on %s", ErrNotFound, mealID, on)
	}
	rec.Meals = append(rec.Meals[:i], rec.Meals[i+1:]...)
	rec.recompute()

	if err := l.persistDays(ctx, &rec); err != nil {
		return err
	}
	l.days[on] = &rec
	return nil
}

// Day returns a copy of the day's record. A day without meals yields an
// empty record; Day never fails.
func (l *Ledger) Day(on date.Date) DayRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	if rec, ok := l.days[on]; ok {
		return rec.clone()
	}
	return DayRecord{Date: on}
}

// Days iterates over all recorded days in chronological order, yielding
// copies.
func (l *Ledger) Days() iter.Seq[DayRecord] {
	l.mu.Lock()
	dates := make([]date.Date, 0, len(l.days))
	for on := range l.days {
		dates = append(dates, on)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	records := make([]DayRecord, 0, len(dates))
	for _, on := range dates {
		records = append(records, l.days[on].clone())
	}
	l.mu.Unlock()

	return func(yield func(DayRecord) bool) {
		for _, rec := range records {
			if !yield(rec) {
				return
			}
		}
	}
}

// RolloverIfNeeded performs the day-boundary check. When now has crossed
// local midnight past the current day, the finished day is committed to
// history (even if empty) and the ledger starts a fresh current day.
//
// The check is idempotent: once the current day has advanced, repeated
// calls for the same boundary are no-ops. It always operates on the
// ledger's latest state under the mutation lock, so a meal added
// concurrently with the rollover is never lost.
func (l *Ledger) RolloverIfNeeded(ctx context.Context, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	day := date.Of(now)
	if !day.After(l.today) {
		return nil
	}

	finished, ok := l.days[l.today]
	if !ok {
		finished = &DayRecord{Date: l.today}
	}
	committed := finished.clone()
	if err := l.persistDays(ctx, &committed); err != nil {
		return err
	}
	l.days[l.today] = finished
	log.Printf("fitlog: day rolled over from %s to %s", l.today, day)
	l.today = day
	return nil
}

// ClearHistory wipes the whole ledger and its suggestion index. Afterwards
// every date, including today, reads back as an empty day.
func (l *Ledger) ClearHistory(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Remove(ctx, keyLedger); err != nil {
		return fmt.Errorf("%w: clearing ledger: %v", ErrStorage, err)
	}
	if err := l.store.Remove(ctx, keyNameIndex); err != nil {
		// The ledger itself is already gone; a stale index only risks
		// outdated suggestions until the next successful write.
		log.Printf("fitlog: could not clear name index: %v", err)
	}
	l.days = make(map[date.Date]*DayRecord)
	l.index = NewSuggestionIndex()
	return nil
}

// Suggest returns autocomplete suggestions for a partially typed meal name.
// See SuggestionIndex.Suggest for matching and ranking rules.
func (l *Ledger) Suggest(query string, limit int) []Meal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.Suggest(query, limit)
}

// dayLocked returns a mutable copy of the day's record, creating an empty
// one if absent. Callers must hold l.mu and commit the copy back into
// l.days only after a successful persist.
func (l *Ledger) dayLocked(on date.Date) DayRecord {
	if rec, ok := l.days[on]; ok {
		return rec.clone()
	}
	return DayRecord{Date: on}
}

// persistDays writes the ledger mapping with the pending record overlaid.
// On failure nothing has been committed in memory yet, so the caller simply
// drops the pending copy.
func (l *Ledger) persistDays(ctx context.Context, pending *DayRecord) error {
	s, err := encodeDays(l.days, pending)
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, keyLedger, s); err != nil {
		return fmt.Errorf("%w: saving ledger: %v", ErrStorage, err)
	}
	return nil
}

// recordUse updates the suggestion index for a created or edited meal and
// writes it through. The ledger mapping is the source of truth; an index
// write failure is logged and the index is rebuilt from the ledger on the
// next open.
func (l *Ledger) recordUse(ctx context.Context, m Meal) {
	l.index.Record(m)
	s, err := encodeNameIndex(l.index)
	if err != nil {
		log.Printf("fitlog: could not encode name index: %v", err)
		return
	}
	if err := l.store.Set(ctx, keyNameIndex, s); err != nil {
		log.Printf("fitlog: could not save name index: %v", err)
	}
}

// allMeals iterates over every meal in the ledger, used to rebuild the
// suggestion index during Open, before the ledger is shared.
func (l *Ledger) allMeals() iter.Seq[Meal] {
	return func(yield func(Meal) bool) {
		for _, rec := range l.days {
			for _, m := range rec.Meals {
				if !yield(m) {
					return
				}
			}
		}
	}
}
