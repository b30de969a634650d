package animals

import (
	"errors"
	"testing"

	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
)

func TestDogWalksDownTheScale(t *testing.T) {
	dog := NewDog("Buddy", "Golden Retriever")
	dog.SetEnergy(energy.Hyperactive)

	want := []energy.Level{energy.Energetic, energy.Normal, energy.Tired}
	for i, wantLevel := range want {
		if _, err := motion.Walk(dog); err != nil {
			t.Fatalf("walk %d failed: %v", i+1, err)
		}
		if dog.Energy() != wantLevel {
			t.Fatalf("after walk %d energy = %s, want %s", i+1, dog.Energy(), wantLevel)
		}
	}
}

func TestDogDefaults(t *testing.T) {
	dog := NewDog("Rex", "German Shepherd")
	if dog.Energy() != energy.Energetic {
		t.Errorf("new dog energy = %s, want Energetic", dog.Energy())
	}
	if dog.Species() != "Dog" || dog.Breed() != "German Shepherd" {
		t.Errorf("identity = %s/%s", dog.Species(), dog.Breed())
	}
	if dog.Description() != "Rex is a Dog" {
		t.Errorf("description = %q", dog.Description())
	}
}

func TestDogDepthByBreed(t *testing.T) {
	cases := []struct {
		breed string
		want  int
	}{
		{"Golden Retriever", 10},
		{"Labrador", 10},
		{"Bulldog", 2},
		{"Poodle", 5},
	}
	for _, tc := range cases {
		if got := NewDog("d", tc.breed).MaxDepth(); got != tc.want {
			t.Errorf("%s max depth = %d, want %d", tc.breed, got, tc.want)
		}
	}
}

func TestDogLandSpeedTracksEnergy(t *testing.T) {
	dog := NewDog("Buddy", "Golden Retriever")
	dog.SetEnergy(energy.Normal)
	if dog.MaxLandSpeed() != 8 {
		t.Errorf("Normal dog speed = %d, want 8", dog.MaxLandSpeed())
	}
	if _, err := motion.Walk(dog); err != nil {
		t.Fatal(err)
	}
	if dog.MaxLandSpeed() != 5 {
		t.Errorf("Tired dog speed = %d, want 5", dog.MaxLandSpeed())
	}
}

func TestWhaleSwimsFromTiredToCollapsed(t *testing.T) {
	whale := NewWhale("Moby")
	whale.SetEnergy(energy.Tired)

	if _, err := motion.Swim(whale); err != nil {
		t.Fatalf("a Tired whale meets the swim floor: %v", err)
	}
	if whale.Energy() != energy.Collapsed {
		t.Errorf("energy = %s, want Collapsed", whale.Energy())
	}
}

func TestWhaleDivesDeep(t *testing.T) {
	whale := NewWhale("Moby")
	if _, err := motion.Dive(whale, 1500); err != nil {
		t.Fatalf("whale dive failed: %v", err)
	}
}

func TestEagleAltitudeLimit(t *testing.T) {
	eagle := NewEagle("Liberty")

	_, err := motion.FlyToAltitude(eagle, 5000)
	var limit *motion.AltitudeLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("expected AltitudeLimitError, got %v", err)
	}
	if limit.Requested != 5000 || limit.Max != 3000 {
		t.Errorf("limit = %+v", limit)
	}
	if eagle.Energy() != energy.Energetic {
		t.Errorf("energy changed on failure: %s", eagle.Energy())
	}
}

func TestEagleSoars(t *testing.T) {
	eagle := NewEagle("Liberty")
	if _, err := motion.Soar(eagle); err != nil {
		t.Fatalf("eagle should soar: %v", err)
	}
	if eagle.Energy() != energy.Tired {
		t.Errorf("soar costs 2, energy = %s", eagle.Energy())
	}
}

func TestEagleCannotHover(t *testing.T) {
	eagle := NewEagle("Liberty")
	_, err := motion.Hover(eagle)
	var mode *motion.FlightModeError
	if !errors.As(err, &mode) {
		t.Fatalf("expected FlightModeError, got %v", err)
	}
}

func TestDuckDoesEverything(t *testing.T) {
	duck := NewDuck("Donald")

	if _, err := motion.Walk(duck); err != nil {
		t.Fatalf("duck walk failed: %v", err)
	}
	duck.SetEnergy(energy.Normal)
	if _, err := motion.Swim(duck); err != nil {
		t.Fatalf("duck swim failed: %v", err)
	}
	duck.SetEnergy(energy.Normal)
	if _, err := motion.Fly(duck); err != nil {
		t.Fatalf("duck fly failed: %v", err)
	}
}

func TestDuckAltitudeCeiling(t *testing.T) {
	duck := NewDuck("Donald")
	duck.SetEnergy(energy.Hyperactive)

	if _, err := motion.FlyToAltitude(duck, 2000); err == nil {
		t.Error("duck ceiling is 1000m")
	}
	if _, err := motion.FlyToAltitude(duck, 900); err != nil {
		t.Errorf("900m is within the duck's ceiling: %v", err)
	}
}

func TestPenguinDives(t *testing.T) {
	penguin := NewPenguin("Pingu")
	penguin.SetEnergy(energy.Hyperactive)

	if _, err := motion.Dive(penguin, 400); err != nil {
		t.Fatalf("penguin dive failed: %v", err)
	}
	if penguin.Energy() != energy.Collapsed {
		t.Errorf("400m dive costs 5, energy = %s", penguin.Energy())
	}
}

func TestSnakeDepthByHabitat(t *testing.T) {
	aquatic := NewSnake("Nessie", true)
	land := NewSnake("Kaa", false)

	if aquatic.MaxDepth() != 50 || land.MaxDepth() != 0 {
		t.Errorf("depths = %d/%d, want 50/0", aquatic.MaxDepth(), land.MaxDepth())
	}

	_, err := motion.Dive(land, 5)
	var limit *motion.DepthLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("land snake dive should hit the depth limit, got %v", err)
	}
}
