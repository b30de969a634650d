package energy

// Carrier is implemented by any entity that owns an energy level.
type Carrier interface {
	Energy() Level
	SetEnergy(level Level)
}

// CanPerform reports whether the carrier has at least the required energy.
func CanPerform(c Carrier, required Level) bool {
	return c.Energy() >= required
}

// Consume lowers the carrier's energy by one step, saturating at Collapsed.
func Consume(c Carrier) {
	c.SetEnergy(c.Energy().Decrease())
}

// ConsumeLevels applies n saturating decrements in sequence, so consuming
// more levels than remain lands exactly on Collapsed.
func ConsumeLevels(c Carrier, n int) {
	current := c.Energy()
	for i := 0; i < n; i++ {
		current = current.Decrease()
	}
	c.SetEnergy(current)
}

// Rest raises the carrier's energy by one step, saturating at Hyperactive.
func Rest(c Carrier) {
	c.SetEnergy(c.Energy().Increase())
}
