package warehouse

// Config holds global tuning knobs for the storage engine. It plays the
// same role the teacher's table-event wiring played, but for column
// growth instead: a single package-level var callers may adjust before
// creating worlds.
var Config config = config{
	initialColumnCapacity: 8,
	columnGrowthFactor:    2,
}

type config struct {
	initialColumnCapacity int
	columnGrowthFactor    int
}

// SetInitialColumnCapacity sets the capacity a freshly created archetype
// column is pre-allocated with.
func (c *config) SetInitialColumnCapacity(n int) {
	if n < 1 {
		n = 1
	}
	c.initialColumnCapacity = n
}

// SetColumnGrowthFactor records a column growth multiplier. Values below 2
// are clamped to 2. Columns do not read this value: they grow through Go's
// slice append (see typedColumn.grow).
func (c *config) SetColumnGrowthFactor(n int) {
	if n < 2 {
		n = 2
	}
	c.columnGrowthFactor = n
}
