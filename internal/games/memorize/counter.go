package memorize

// Counter tallies how many instances of each figure type were shown.
// Types keep the order they were registered in.
type Counter struct {
	order  []FigureType
	counts map[FigureType]int
}

// NewCounter creates a counter with every type at zero.
func NewCounter(types ...FigureType) *Counter {
	c := &Counter{counts: make(map[FigureType]int, len(types))}
	for _, t := range types {
		if _, ok := c.counts[t]; !ok {
			c.order = append(c.order, t)
			c.counts[t] = 0
		}
	}
	return c
}

// Add increases the tally of t by n. Negative n is ignored.
func (c *Counter) Add(t FigureType, n int) {
	if n <= 0 {
		return
	}
	if _, ok := c.counts[t]; !ok {
		c.order = append(c.order, t)
	}
	c.counts[t] += n
}

// Get returns the tally of t.
func (c *Counter) Get(t FigureType) int {
	return c.counts[t]
}

// Types returns the counted figure types.
func (c *Counter) Types() []FigureType {
	out := make([]FigureType, len(c.order))
	copy(out, c.order)
	return out
}

// Total returns the sum over all types.
func (c *Counter) Total() int {
	sum := 0
	for _, n := range c.counts {
		sum += n
	}
	return sum
}

// Clone returns an independent copy.
func (c *Counter) Clone() *Counter {
	out := NewCounter(c.order...)
	for t, n := range c.counts {
		out.counts[t] = n
	}
	return out
}
