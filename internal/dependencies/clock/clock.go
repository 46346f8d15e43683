package clock

import "time"

// Clock reports the current time. Sessions stamp logins with it.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// New creates a System clock
func New() *System {
	return &System{}
}

// Now returns time.Now in UTC
func (c *System) Now() time.Time {
	return time.Now().UTC()
}
