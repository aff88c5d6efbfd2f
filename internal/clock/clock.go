// Package clock provides the 32-bit microsecond time base used for button
// debouncing.
package clock

import "time"

// Clock reports monotonic time in microseconds. The value wraps after about
// 71 minutes, the same as a 32-bit hardware timer.
type Clock interface {
	Micros() uint32
}

// Monotonic counts microseconds since it was created
type Monotonic struct {
	start time.Time
}

// NewMonotonic starts a clock at zero
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Micros returns the elapsed microseconds, truncated to 32 bits
func (m *Monotonic) Micros() uint32 {
	return Micros(time.Since(m.start))
}

// Micros truncates a duration to the 32-bit microsecond time base
func Micros(d time.Duration) uint32 {
	return uint32(d.Microseconds())
}

// Manual is a clock whose time only moves when told to
type Manual struct {
	Now uint32
}

// Micros returns the current manual time
func (m *Manual) Micros() uint32 {
	return m.Now
}

// Advance moves the manual clock forward by d
func (m *Manual) Advance(d time.Duration) {
	m.Now += Micros(d)
}
