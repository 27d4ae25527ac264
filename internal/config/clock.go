package config

import "time"

// nowFunc returns the current time (override in tests for determinism).
// It is only consulted to default the reference year; the estimator itself
// never reads the clock.
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// CurrentYear returns the calendar year of the time provider.
func CurrentYear() int { return nowFunc().Year() }
