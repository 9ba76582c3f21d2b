// Package clock supplies the current date to commands that default to
// "today".
package clock

import "time"

// Provider reports the current time.
type Provider struct {
	now func() time.Time // injectable for testing
}

// New creates a Provider backed by time.Now.
func New() *Provider {
	return &Provider{now: time.Now}
}

// Fixed creates a Provider that always reports t.
func Fixed(t time.Time) *Provider {
	return &Provider{now: func() time.Time { return t }}
}

// Today returns midnight of the current day in the current time's location.
//
// Example:
//
//	now:    2024-01-15 14:30:45.123456789
//	output: 2024-01-15 00:00:00.0
func (p *Provider) Today() time.Time {
	return NormalizeDate(p.now())
}

// NormalizeDate truncates t to midnight in t's location.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
