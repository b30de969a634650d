package motion

import (
	"errors"
	"strings"
	"testing"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
)

func TestSwimCostsTwo(t *testing.T) {
	e := newTestEntity(energy.Normal)

	msg, err := Swim(e)
	if err != nil {
		t.Fatalf("Swim failed: %v", err)
	}
	if e.Energy() != energy.Exhausted {
		t.Errorf("energy = %s, want Exhausted", e.Energy())
	}
	if !strings.Contains(msg, "swims steadily") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestSwimFromTiredFloor(t *testing.T) {
	e := newTestEntity(energy.Tired)

	if _, err := Swim(e); err != nil {
		t.Fatalf("Swim at the Tired floor should succeed: %v", err)
	}
	if e.Energy() != energy.Collapsed {
		t.Errorf("energy = %s, want Collapsed", e.Energy())
	}
}

func TestSwimBelowFloor(t *testing.T) {
	e := newTestEntity(energy.Exhausted)

	_, err := Swim(e)
	var insufficient *InsufficientEnergyError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientEnergyError, got %v", err)
	}
	if insufficient.Required != energy.Tired {
		t.Errorf("Required = %s, want Tired", insufficient.Required)
	}
	if !strings.Contains(strings.ToLower(err.Error()), "insufficient energy") {
		t.Errorf("error message missing 'insufficient energy': %q", err)
	}
	if e.Energy() != energy.Exhausted {
		t.Errorf("energy changed on failure: %s", e.Energy())
	}
}

func TestDiveCosts(t *testing.T) {
	cases := []struct {
		depth int
		start energy.Level
		want  energy.Level
	}{
		{5, energy.Normal, energy.Exhausted},       // cost 1+1
		{30, energy.Normal, energy.Collapsed},      // cost 2+1
		{100, energy.Energetic, energy.Collapsed},  // cost 3+1
		{300, energy.Hyperactive, energy.Collapsed}, // cost 4+1
	}
	for _, tc := range cases {
		e := newTestEntity(tc.start)
		msg, err := Dive(e, tc.depth)
		if err != nil {
			t.Fatalf("Dive(%d) from %s failed: %v", tc.depth, tc.start, err)
		}
		if e.Energy() != tc.want {
			t.Errorf("Dive(%d) energy = %s, want %s", tc.depth, e.Energy(), tc.want)
		}
		if !strings.Contains(msg, "meters depth") {
			t.Errorf("unexpected message: %q", msg)
		}
	}
}

func TestDiveDepthLimit(t *testing.T) {
	e := newTestEntity(energy.Hyperactive)
	e.maxDepth = 100

	_, err := Dive(e, 250)
	var limit *DepthLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("expected DepthLimitError, got %v", err)
	}
	if limit.Requested != 250 || limit.Max != 100 {
		t.Errorf("limit = %+v", limit)
	}
	if e.Energy() != energy.Hyperactive {
		t.Errorf("energy changed on failure: %s", e.Energy())
	}
}

func TestDiveRequiresBucketEnergy(t *testing.T) {
	e := newTestEntity(energy.Tired)

	_, err := Dive(e, 100)
	var insufficient *InsufficientEnergyError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientEnergyError, got %v", err)
	}
	if insufficient.Required != energy.Energetic {
		t.Errorf("Required = %s, want Energetic", insufficient.Required)
	}
	if e.Energy() != energy.Tired {
		t.Errorf("energy changed on failure: %s", e.Energy())
	}
}

func TestSwimInConditions(t *testing.T) {
	e := newTestEntity(energy.Normal)

	msg, err := SwimInConditions(e, conditions.WaterChoppy)
	if err != nil {
		t.Fatalf("SwimInConditions failed: %v", err)
	}
	if e.Energy() != energy.Collapsed {
		t.Errorf("choppy water should cost 3 total, energy = %s", e.Energy())
	}
	if !strings.Contains(msg, "choppy conditions") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestSwimInCalmWater(t *testing.T) {
	e := newTestEntity(energy.Tired)

	if _, err := SwimInConditions(e, conditions.WaterCalm); err != nil {
		t.Fatalf("calm water swim failed: %v", err)
	}
	if e.Energy() != energy.Collapsed {
		t.Errorf("calm water should cost the basic 2, energy = %s", e.Energy())
	}
}

func TestSwimInHurricaneAlwaysRejected(t *testing.T) {
	e := newTestEntity(energy.Hyperactive)

	_, err := SwimInConditions(e, conditions.WaterHurricane)
	var water *WaterConditionsError
	if !errors.As(err, &water) {
		t.Fatalf("expected WaterConditionsError, got %v", err)
	}
	if e.Energy() != energy.Hyperactive {
		t.Errorf("energy changed on failure: %s", e.Energy())
	}
}

func TestSwimInRoughWaterNeedsEnergetic(t *testing.T) {
	e := newTestEntity(energy.Normal)

	_, err := SwimInConditions(e, conditions.WaterRough)
	var water *WaterConditionsError
	if !errors.As(err, &water) {
		t.Fatalf("expected WaterConditionsError, got %v", err)
	}
	if !strings.Contains(err.Error(), "too challenging") {
		t.Errorf("error message missing 'too challenging': %q", err)
	}
	if e.Energy() != energy.Normal {
		t.Errorf("energy changed on failure: %s", e.Energy())
	}
}
