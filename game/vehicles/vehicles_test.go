package vehicles

import (
	"errors"
	"strings"
	"testing"

	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

func TestCarRejectsOffRoadWithoutCapability(t *testing.T) {
	car := NewCar("Model 3", "Tesla", 2023, ElectricEngine{BatteryCapacity: 75})
	before := car.Energy()

	_, err := motion.DriveOnRoad(car, conditions.RoadOffRoad)
	var roadErr *motion.RoadConditionsError
	if !errors.As(err, &roadErr) {
		t.Fatalf("err = %v, want RoadConditionsError", err)
	}
	if car.Energy() != before {
		t.Errorf("energy changed on failure: %s -> %s", before, car.Energy())
	}
}

func TestCarDriveConsumesFuel(t *testing.T) {
	car := NewCar("Model 3", "Tesla", 2023, ElectricEngine{BatteryCapacity: 75})
	if _, err := motion.Drive(car); err != nil {
		t.Fatalf("drive failed: %v", err)
	}
	if car.Energy() != energy.Tired {
		t.Errorf("energy = %s, want Tired", car.Energy())
	}
}

func TestCarOversizedEngineCannotDriveByDistance(t *testing.T) {
	// A 12-cylinder 7.2L engine computes exactly 0 km per energy level.
	car := NewCar("Behemoth", "Custom", 1970, GasolineEngine{Cylinders: 12, Displacement: 7.2})
	if got := car.FuelEfficiency(); got != 0 {
		t.Fatalf("efficiency = %d, want 0", got)
	}
	car.Refuel()
	before := car.Energy()

	_, err := motion.DriveDistance(car, 10)
	var fuelErr *motion.FuelEfficiencyError
	if !errors.As(err, &fuelErr) {
		t.Fatalf("err = %v, want FuelEfficiencyError", err)
	}
	if car.Energy() != before {
		t.Errorf("energy changed on failure: %s -> %s", before, car.Energy())
	}

	// Plain driving is still fine; only the distance conversion is blocked.
	if _, err := motion.Drive(car); err != nil {
		t.Fatalf("drive failed: %v", err)
	}
}

func TestRefuelRestoresFullTank(t *testing.T) {
	car := NewCar("Beetle", "VW", 1968, GasolineEngine{Cylinders: 4, Displacement: 1.6})
	car.SetEnergy(energy.Collapsed)
	if car.FuelPercentage() != 0 {
		t.Errorf("empty tank = %d%%, want 0", car.FuelPercentage())
	}

	car.Refuel()
	if car.Energy() != energy.Hyperactive {
		t.Errorf("after refuel energy = %s, want Hyperactive", car.Energy())
	}
	if car.FuelPercentage() != 100 {
		t.Errorf("full tank = %d%%, want 100", car.FuelPercentage())
	}
}

func TestMotorcycleSpeedAndOffRoad(t *testing.T) {
	sport := NewMotorcycle("Ninja", "Kawasaki", 2022, 1000, MotoSport)
	if got := sport.MaxSpeed(); got != 220 {
		t.Errorf("sport max speed = %d, want 220", got)
	}
	if sport.HasOffRoadCapability() {
		t.Error("sport bike should not be off-road capable")
	}

	dirt := NewMotorcycle("CRF", "Honda", 2021, 450, MotoDirt)
	if !dirt.HasOffRoadCapability() {
		t.Error("dirt bike should be off-road capable")
	}
	if dirt.LandSkill() != 4 {
		t.Errorf("dirt rider skill = %d, want 4", dirt.LandSkill())
	}
}

func TestTruckCargoAffectsPerformance(t *testing.T) {
	truck := NewTruck("Hauler", "Volvo", 2020, 10000, TruckSemi)
	emptySpeed := truck.MaxSpeed()
	emptyEfficiency := truck.FuelEfficiency()

	if err := truck.LoadCargo(10000); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if truck.LoadPercentage() != 100 {
		t.Errorf("load = %d%%, want 100", truck.LoadPercentage())
	}
	if got := truck.MaxSpeed(); got != emptySpeed-20 {
		t.Errorf("loaded speed = %d, want %d", got, emptySpeed-20)
	}
	if got := truck.FuelEfficiency(); got != emptyEfficiency-10 {
		t.Errorf("loaded efficiency = %d, want %d", got, emptyEfficiency-10)
	}

	if err := truck.LoadCargo(1); err == nil {
		t.Error("overload should fail")
	}
	if err := truck.UnloadCargo(20000); err == nil {
		t.Error("unloading more than loaded should fail")
	}
	if err := truck.UnloadCargo(10000); err != nil {
		t.Errorf("unload failed: %v", err)
	}
	if truck.CurrentLoad() != 0 {
		t.Errorf("load after unload = %d, want 0", truck.CurrentLoad())
	}
}

func TestAirplaneAltitudeCeiling(t *testing.T) {
	plane := NewAirplane("Cessna 172", "Cessna", 2019, PlanePrivate, 11,
		PistonEngine{Engines: 1, PowerEach: 120})

	ceiling := plane.MaxAltitude()
	_, err := motion.FlyToAltitude(plane, ceiling+1)
	var altErr *motion.AltitudeLimitError
	if !errors.As(err, &altErr) {
		t.Fatalf("err = %v, want AltitudeLimitError", err)
	}
	if altErr.Max != ceiling {
		t.Errorf("error max = %d, want %d", altErr.Max, ceiling)
	}
}

func TestAirplaneCannotHoverButTaxis(t *testing.T) {
	plane := NewAirplane("747", "Boeing", 2005, PlaneCommercial, 60,
		JetEngine{Engines: 4, ThrustEach: 280})

	if plane.SupportsFlightMode(conditions.FlightHovering) {
		t.Error("fixed wing should not hover")
	}

	plane.SetEnergy(energy.Energetic)
	if _, err := motion.Drive(plane); err != nil {
		t.Errorf("taxi failed: %v", err)
	}
}

func TestHelicopterHovers(t *testing.T) {
	heli := NewHelicopter("Rescue 1", "Airbus", 2021, HeliEmergency, 11,
		TurboshaftEngine{Engines: 2, PowerEach: 700})
	heli.SetEnergy(energy.Hyperactive)

	msg, err := motion.Hover(heli)
	if err != nil {
		t.Fatalf("hover failed: %v", err)
	}
	if !strings.Contains(msg, "hovers") {
		t.Errorf("message = %q, want hover wording", msg)
	}
	// Hovering costs 3 plus the base move.
	if heli.Energy() != energy.Exhausted {
		t.Errorf("energy after hover = %s, want Exhausted", heli.Energy())
	}

	if heli.SupportsFlightMode(conditions.FlightGliding) {
		t.Error("rotorcraft should not glide")
	}
}

func TestShipDepthByHullClass(t *testing.T) {
	sub := NewShip("Nautilus", "Electric Boat", 1954, ShipSubmarine, 3500,
		NuclearPropulsion{Reactors: 1})
	if sub.MaxDepth() != 300 {
		t.Errorf("submarine depth = %d, want 300", sub.MaxDepth())
	}

	yacht := NewShip("Serenity", "Azimut", 2018, ShipYacht, 90,
		DieselPropulsion{Engines: 2, PowerEach: 800})
	if yacht.MaxDepth() != 0 {
		t.Errorf("yacht depth = %d, want 0", yacht.MaxDepth())
	}

	sub.SetEnergy(energy.Hyperactive)
	if _, err := motion.Dive(sub, 200); err != nil {
		t.Errorf("dive failed: %v", err)
	}
}

func TestAmphibiousSwitchMode(t *testing.T) {
	duck := NewAmphibiousVehicle("DUKW", "GMC", 1944, AmphibDuck, HullBoat)

	msg, err := duck.SwitchMode(true)
	if err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if !strings.Contains(msg, "water mode") {
		t.Errorf("message = %q", msg)
	}
	if !duck.InWater() {
		t.Error("vehicle should be in water mode")
	}
	if duck.Energy() != energy.Tired {
		t.Errorf("energy after switch = %s, want Tired", duck.Energy())
	}

	duck.SetEnergy(energy.Exhausted)
	if _, err := duck.SwitchMode(false); err == nil {
		t.Error("switch at Exhausted should fail")
	}
}

func TestAmphibiousHovercraftSwitchesFree(t *testing.T) {
	hover := NewAmphibiousVehicle("Griffon", "BHC", 2010, AmphibHovercraft, HullAirCushion)
	before := hover.Energy()
	if _, err := hover.SwitchMode(true); err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if hover.Energy() != before {
		t.Errorf("hovercraft switch consumed energy: %s -> %s", before, hover.Energy())
	}
	if hover.MaxDepth() != 0 {
		t.Errorf("hovercraft depth = %d, want 0", hover.MaxDepth())
	}
}

func TestVehicleDescriptions(t *testing.T) {
	car := NewCar("Model 3", "Tesla", 2023, ElectricEngine{BatteryCapacity: 75})
	if got := car.Description(); got != "2023 Tesla Model 3 (Car, 75kWh Electric)" {
		t.Errorf("car description = %q", got)
	}

	truck := NewTruck("Hauler", "Volvo", 2020, 10000, TruckSemi)
	if got := truck.Description(); got != "2020 Volvo Hauler (Truck, Semi, 10000kg capacity)" {
		t.Errorf("truck description = %q", got)
	}
}
