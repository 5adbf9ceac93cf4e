// Package fitlog provides the core engine of a personal nutrition ledger.
// It is designed to be local-first and embeddable: the presentation layer
// (forms, calendars, theming) lives outside this module and consumes the
// engine through plain Go calls.
//
// The core functionalities include:
//   - Ledger Management: Recording discrete food-intake events ("meals")
//     per calendar day, with add/edit/delete, lazy day records, an
//     idempotent day-rollover check, and a bulk clear.
//   - Target Calculation: Deriving a daily calorie target from user
//     biometrics with the Mifflin-St Jeor formula and an activity
//     multiplier, or honoring a manual override.
//   - Progress Reporting: Classifying a day's consumption against the
//     target into under/over/far-over tiers with exact breakpoints.
//   - Suggestions: Name-based autocomplete built from historical meals,
//     deduplicated and deterministically ranked.
//   - Data Persistence: Write-through JSON persistence into an abstract
//     key-value store (see the kv subpackage), tolerant of missing or
//     corrupt stored data on read.
//
// All mutation goes through a single serialized path, so the periodic
// rollover check can never interleave with an in-flight meal edit.
package fitlog
