package domain

// Clock reads the current simulation instant in milliseconds.
type Clock interface {
	Now() int
}

// SimClock is the single clock of a run. Only the scheduler advances it.
type SimClock struct {
	now int
}

// NewSimClock creates a clock positioned at start.
func NewSimClock(start int) *SimClock { return &SimClock{now: start} }

func (c *SimClock) Now() int { return c.now }

// Set moves the clock to t.
func (c *SimClock) Set(t int) { c.now = t }
