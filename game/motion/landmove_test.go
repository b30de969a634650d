package motion

import (
	"errors"
	"strings"
	"testing"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
)

func TestLandMove(t *testing.T) {
	e := newTestEntity(energy.Normal)

	msg, err := LandMove(e)
	if err != nil {
		t.Fatalf("LandMove failed: %v", err)
	}
	if e.Energy() != energy.Tired {
		t.Errorf("energy = %s, want Tired", e.Energy())
	}
	if !strings.Contains(msg, "moves steadily on land") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestLandMoveFromMinimumEnergy(t *testing.T) {
	e := newTestEntity(energy.Exhausted)
	if _, err := LandMove(e); err != nil {
		t.Fatalf("LandMove at Exhausted should succeed: %v", err)
	}
	if e.Energy() != energy.Collapsed {
		t.Errorf("energy = %s, want Collapsed", e.Energy())
	}
}

func TestLandMoveWhenCollapsed(t *testing.T) {
	e := newTestEntity(energy.Collapsed)

	_, err := LandMove(e)
	var insufficient *InsufficientEnergyError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientEnergyError, got %v", err)
	}
	if insufficient.Required != energy.Exhausted {
		t.Errorf("Required = %s, want Exhausted", insufficient.Required)
	}
	if e.Energy() != energy.Collapsed {
		t.Errorf("energy changed on failure: %s", e.Energy())
	}
}

func TestLandMoveFast(t *testing.T) {
	e := newTestEntity(energy.Energetic)

	if _, err := LandMoveFast(e); err != nil {
		t.Fatalf("LandMoveFast failed: %v", err)
	}
	if e.Energy() != energy.Tired {
		t.Errorf("energy = %s, want Tired (cost 2)", e.Energy())
	}
}

func TestLandMoveFastNeedsNormal(t *testing.T) {
	e := newTestEntity(energy.Tired)

	_, err := LandMoveFast(e)
	var insufficient *InsufficientEnergyError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientEnergyError, got %v", err)
	}
	if insufficient.Required != energy.Normal {
		t.Errorf("Required = %s, want Normal", insufficient.Required)
	}
	if e.Energy() != energy.Tired {
		t.Errorf("energy changed on failure: %s", e.Energy())
	}
}

func TestLandMoveAtSpeed(t *testing.T) {
	cases := []struct {
		speed int
		start energy.Level
		want  energy.Level
	}{
		{10, energy.Tired, energy.Collapsed},     // cost 1+1
		{40, energy.Energetic, energy.Tired},     // cost 1+1
		{80, energy.Normal, energy.Collapsed},    // cost 2+1
		{120, energy.Hyperactive, energy.Exhausted}, // cost 3+1
	}
	for _, tc := range cases {
		e := newTestEntity(tc.start)
		msg, err := LandMoveAtSpeed(e, tc.speed)
		if err != nil {
			t.Fatalf("LandMoveAtSpeed(%d) from %s failed: %v", tc.speed, tc.start, err)
		}
		if e.Energy() != tc.want {
			t.Errorf("LandMoveAtSpeed(%d) energy = %s, want %s", tc.speed, e.Energy(), tc.want)
		}
		if !strings.Contains(msg, "km/h") {
			t.Errorf("unexpected message: %q", msg)
		}
	}
}

func TestLandMoveAtSpeedExceedsMaximum(t *testing.T) {
	e := newTestEntity(energy.Hyperactive)
	e.maxLandSpeed = 15

	_, err := LandMoveAtSpeed(e, 20)
	var limit *SpeedLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("expected SpeedLimitError, got %v", err)
	}
	if limit.Requested != 20 || limit.Max != 15 {
		t.Errorf("limit = %+v", limit)
	}
	if e.Energy() != energy.Hyperactive {
		t.Errorf("energy changed on failure: %s", e.Energy())
	}
}

func TestNavigateTerrain(t *testing.T) {
	e := newTestEntity(energy.Normal)

	msg, err := NavigateTerrain(e, conditions.TerrainGrass)
	if err != nil {
		t.Fatalf("NavigateTerrain failed: %v", err)
	}
	if e.Energy() != energy.Tired {
		t.Errorf("grass should cost 1 total, energy = %s", e.Energy())
	}
	if !strings.Contains(msg, "navigates grass terrain") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestNavigateTerrainTooDifficult(t *testing.T) {
	e := newTestEntity(energy.Tired)

	_, err := NavigateTerrain(e, conditions.TerrainMountain)
	var terr *TerrainError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TerrainError, got %v", err)
	}
	if !strings.Contains(err.Error(), "too difficult") {
		t.Errorf("error message missing 'too difficult': %q", err)
	}
	if e.Energy() != energy.Tired {
		t.Errorf("energy changed on failure: %s", e.Energy())
	}
}

func TestNavigateTerrainNotWalkable(t *testing.T) {
	e := newTestEntity(energy.Hyperactive)

	_, err := NavigateTerrain(e, conditions.TerrainCliff)
	var unsupported *TerrainNotSupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected TerrainNotSupportedError, got %v", err)
	}
	if e.Energy() != energy.Hyperactive {
		t.Errorf("energy changed on failure: %s", e.Energy())
	}
}

func TestNavigateTerrainSkillModifier(t *testing.T) {
	skilled := newTestEntity(energy.Tired)
	skilled.skill = 5

	// Mountain normally needs Normal at cost 2; a skilled mover gets in
	// at Tired for cost 1.
	if _, err := NavigateTerrain(skilled, conditions.TerrainMountain); err != nil {
		t.Fatalf("skilled NavigateTerrain failed: %v", err)
	}
	if skilled.Energy() != energy.Collapsed {
		t.Errorf("skilled energy = %s, want Collapsed (cost 1+1 from Tired)", skilled.Energy())
	}

	novice := newTestEntity(energy.Normal)
	novice.skill = 1
	if _, err := NavigateTerrain(novice, conditions.TerrainMountain); err != nil {
		t.Fatalf("novice NavigateTerrain failed: %v", err)
	}
	if novice.Energy() != energy.Collapsed {
		t.Errorf("novice energy = %s, want Collapsed (cost 3+1 clamped from Normal)", novice.Energy())
	}
}
