package motion

import (
	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
)

// testEntity implements every capability so the same fixture can exercise
// each action function.
type testEntity struct {
	name         string
	level        energy.Level
	maxLandSpeed int
	maxSpeed     int
	maxDepth     int
	maxAltitude  int
	efficiency   int
	skill        int
	flyingSkill  int
	offRoad      bool
	canHover     bool
}

func newTestEntity(level energy.Level) *testEntity {
	return &testEntity{
		name:         "Tester",
		level:        level,
		maxLandSpeed: 150,
		maxSpeed:     200,
		maxDepth:     500,
		maxAltitude:  3000,
		efficiency:   50,
		skill:        3,
		flyingSkill:  3,
	}
}

func (e *testEntity) Energy() energy.Level         { return e.level }
func (e *testEntity) SetEnergy(level energy.Level) { e.level = level }
func (e *testEntity) Name() string                 { return e.name }
func (e *testEntity) MaxLandSpeed() int            { return e.maxLandSpeed }
func (e *testEntity) LandEfficiency() int          { return e.efficiency }
func (e *testEntity) LandMoverType() string        { return "Tester (testing)" }
func (e *testEntity) LandSkill() int               { return e.skill }
func (e *testEntity) MaxDepth() int                { return e.maxDepth }
func (e *testEntity) MaxAltitude() int             { return e.maxAltitude }
func (e *testEntity) FlyingSkill() int             { return e.flyingSkill }
func (e *testEntity) MaxSpeed() int                { return e.maxSpeed }
func (e *testEntity) FuelEfficiency() int          { return e.efficiency }
func (e *testEntity) HasOffRoadCapability() bool   { return e.offRoad }

func (e *testEntity) SupportsFlightMode(mode conditions.FlightMode) bool {
	if mode == conditions.FlightHovering {
		return e.canHover
	}
	return true
}
