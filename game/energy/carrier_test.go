package energy

import "testing"

type testCarrier struct {
	level Level
}

func (c *testCarrier) Energy() Level         { return c.level }
func (c *testCarrier) SetEnergy(level Level) { c.level = level }

func TestCanPerform(t *testing.T) {
	c := &testCarrier{level: Normal}

	if !CanPerform(c, Tired) {
		t.Error("Normal should satisfy a Tired requirement")
	}
	if !CanPerform(c, Normal) {
		t.Error("Normal should satisfy a Normal requirement")
	}
	if CanPerform(c, Energetic) {
		t.Error("Normal should not satisfy an Energetic requirement")
	}
}

func TestConsume(t *testing.T) {
	c := &testCarrier{level: Normal}
	Consume(c)
	if c.Energy() != Tired {
		t.Errorf("expected Tired after consume, got %s", c.Energy())
	}
}

func TestConsumeLevelsClampsAtCollapsed(t *testing.T) {
	c := &testCarrier{level: Hyperactive}
	ConsumeLevels(c, 10)
	if c.Energy() != Collapsed {
		t.Errorf("expected Collapsed after consuming 10 levels, got %s", c.Energy())
	}

	c.SetEnergy(Energetic)
	ConsumeLevels(c, 2)
	if c.Energy() != Tired {
		t.Errorf("expected Tired after consuming 2 levels, got %s", c.Energy())
	}
}

func TestRest(t *testing.T) {
	c := &testCarrier{level: Collapsed}
	Rest(c)
	if c.Energy() != Exhausted {
		t.Errorf("expected Exhausted after rest, got %s", c.Energy())
	}

	c.SetEnergy(Hyperactive)
	Rest(c)
	if c.Energy() != Hyperactive {
		t.Errorf("expected rest to saturate at Hyperactive, got %s", c.Energy())
	}
}
