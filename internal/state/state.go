// Package state holds the values shared between the render loop, the button
// handler and the blink timer.
//
// Every field has exactly one writer. The button handler is the only code
// that changes the counter; the render loop only reads it. No locks are
// taken anywhere: the counter is one machine word, so a reader always sees
// either the old or the new digit.
package state

import "sync/atomic"

// Modulus is the number of values the counter cycles through
const Modulus = 10

// Counter is the digit on display, always in [0, Modulus).
type Counter struct {
	v atomic.Int32
}

// Value returns the current digit
func (c *Counter) Value() int {
	return int(c.v.Load())
}

// Increment advances the digit by one, wrapping 9 to 0. Only the button
// handler may call it.
func (c *Counter) Increment() {
	c.v.Store((c.v.Load() + 1) % Modulus)
}

// Decrement steps the digit back by one, wrapping 0 to 9. Only the button
// handler may call it.
func (c *Counter) Decrement() {
	c.v.Store((c.v.Load() - 1 + Modulus) % Modulus)
}

// Shared is the process-wide state handed to each context at startup.
type Shared struct {
	Counter Counter
}

// New returns shared state with the counter at zero
func New() *Shared {
	return &Shared{}
}
