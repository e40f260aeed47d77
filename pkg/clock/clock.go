// Package clock provides the wall clock used by storage code, plus a
// settable mock for tests.
package clock

import "time"

// Clock returns the current time, optionally pinned to a location.
type Clock struct {
	loc *time.Location
}

func New() *Clock {
	return &Clock{}
}

func NewWithLocation(loc *time.Location) *Clock {
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	now := time.Now()
	if c.loc != nil {
		now = now.In(c.loc)
	}
	return now
}

// Mock is a Clock stand-in whose time is controlled by the test.
type Mock struct {
	value func() time.Time
}

// NewMock returns a mock frozen at t.
func NewMock(t time.Time) *Mock {
	m := &Mock{}
	m.Set(t)
	return m
}

func (m *Mock) Now() time.Time {
	return m.value()
}

// Set freezes the mock at t.
func (m *Mock) Set(t time.Time) {
	m.value = func() time.Time {
		return t
	}
}

// SetF makes the mock call value on every Now.
func (m *Mock) SetF(value func() time.Time) {
	m.value = value
}
