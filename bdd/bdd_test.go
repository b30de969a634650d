package bdd

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/fieldday-games/fieldday/game/animals"
	"github.com/fieldday-games/fieldday/game/competition"
	"github.com/fieldday-games/fieldday/game/conditions"
	"github.com/fieldday-games/fieldday/game/energy"
	"github.com/fieldday-games/fieldday/game/motion"
	"github.com/fieldday-games/fieldday/game/vehicles"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// world holds the entities and the outcome of the last action for one
// scenario.
type world struct {
	movers  map[string]motion.Mover
	lastMsg string
	lastErr error
}

func (w *world) mover(subject string) (motion.Mover, error) {
	m, ok := w.movers[subject]
	if !ok {
		return nil, fmt.Errorf("no %s in this scenario", subject)
	}
	return m, nil
}

func (w *world) record(msg string, err error) {
	w.lastMsg, w.lastErr = msg, err
}

// Givens

func (w *world) aDogNamedWithBreed(name, breed string) error {
	w.movers["dog"] = animals.NewDog(name, breed)
	return nil
}

func (w *world) aDuckNamed(name string) error {
	w.movers["duck"] = animals.NewDuck(name)
	return nil
}

func (w *world) anEagleNamed(name string) error {
	w.movers["eagle"] = animals.NewEagle(name)
	return nil
}

func (w *world) aPenguinNamed(name string) error {
	w.movers["penguin"] = animals.NewPenguin(name)
	return nil
}

func (w *world) aWhaleNamed(name string) error {
	w.movers["whale"] = animals.NewWhale(name)
	return nil
}

func (w *world) anElectricCarNamed(name string) error {
	w.movers["car"] = vehicles.NewCar(name, "Tesla", 2023, vehicles.ElectricEngine{BatteryCapacity: 75})
	return nil
}

func (w *world) aHelicopterNamed(name string) error {
	w.movers["helicopter"] = vehicles.NewHelicopter(name, "Bell", 2020,
		vehicles.HeliCivilian, 12, vehicles.TurboshaftEngine{Engines: 2, PowerEach: 500})
	return nil
}

func (w *world) hasEnergyLevel(subject, level string) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	m.SetEnergy(energy.ParseLevel(level))
	return nil
}

// Whens

func (w *world) walks(subject string) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	walker, ok := m.(motion.Walker)
	if !ok {
		return fmt.Errorf("%s cannot walk at all", subject)
	}
	w.record(motion.Walk(walker))
	return nil
}

func (w *world) runs(subject string) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	walker, ok := m.(motion.Walker)
	if !ok {
		return fmt.Errorf("%s cannot run at all", subject)
	}
	w.record(motion.Run(walker))
	return nil
}

func (w *world) swims(subject string) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	swimmer, ok := m.(motion.Swimmer)
	if !ok {
		return fmt.Errorf("%s cannot swim at all", subject)
	}
	w.record(motion.Swim(swimmer))
	return nil
}

func (w *world) flies(subject string) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	flyer, ok := m.(motion.Flyer)
	if !ok {
		return fmt.Errorf("%s cannot fly at all", subject)
	}
	w.record(motion.Fly(flyer))
	return nil
}

func (w *world) hovers(subject string) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	flyer, ok := m.(motion.Flyer)
	if !ok {
		return fmt.Errorf("%s cannot fly at all", subject)
	}
	w.record(motion.Hover(flyer))
	return nil
}

func (w *world) moves(subject string) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	w.record(motion.Move(m))
	return nil
}

func (w *world) rests(subject string) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	energy.Rest(m)
	w.record("rested", nil)
	return nil
}

func (w *world) navigatesTerrain(subject, terrain string) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	lm, ok := m.(motion.LandMover)
	if !ok {
		return fmt.Errorf("%s cannot move over land at all", subject)
	}
	w.record(motion.NavigateTerrain(lm, conditions.ParseTerrain(terrain)))
	return nil
}

func (w *world) divesToMeters(subject string, depth int) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	swimmer, ok := m.(motion.Swimmer)
	if !ok {
		return fmt.Errorf("%s cannot swim at all", subject)
	}
	w.record(motion.Dive(swimmer, depth))
	return nil
}

// Thens

func (w *world) actionSucceeds() error {
	if w.lastErr != nil {
		return fmt.Errorf("expected success, got: %v", w.lastErr)
	}
	return nil
}

func (w *world) actionFailsMentioning(substring string) error {
	if w.lastErr == nil {
		return fmt.Errorf("expected failure mentioning %q, but the action succeeded: %s",
			substring, w.lastMsg)
	}
	if !strings.Contains(strings.ToLower(w.lastErr.Error()), strings.ToLower(substring)) {
		return fmt.Errorf("error %q does not mention %q", w.lastErr, substring)
	}
	return nil
}

func (w *world) resultMentions(substring string) error {
	if w.lastErr != nil {
		return fmt.Errorf("action failed: %v", w.lastErr)
	}
	if !strings.Contains(strings.ToLower(w.lastMsg), strings.ToLower(substring)) {
		return fmt.Errorf("result %q does not mention %q", w.lastMsg, substring)
	}
	return nil
}

func (w *world) shouldHaveEnergyLevel(subject, level string) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}
	expected := energy.ParseLevel(level)
	if got := m.Energy(); got != expected {
		return fmt.Errorf("%s has energy %s, expected %s", subject, got, expected)
	}
	return nil
}

func (w *world) can(subject, verb string) error {
	return w.checkCapability(subject, verb, true)
}

func (w *world) cannot(subject, verb string) error {
	return w.checkCapability(subject, verb, false)
}

func (w *world) checkCapability(subject, verb string, want bool) error {
	m, err := w.mover(subject)
	if err != nil {
		return err
	}

	var flag competition.Capability
	switch verb {
	case "walk":
		flag = competition.CanWalk
	case "swim":
		flag = competition.CanSwim
	case "fly":
		flag = competition.CanFly
	case "drive":
		flag = competition.CanDrive
	default:
		return fmt.Errorf("unknown capability %q", verb)
	}

	if got := competition.ProfileOf(m).Has(flag); got != want {
		return fmt.Errorf("%s capability %s = %v, expected %v", subject, verb, got, want)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	w := &world{movers: make(map[string]motion.Mover)}

	ctx.Step(`^a dog named "([^"]*)" with breed "([^"]*)"$`, w.aDogNamedWithBreed)
	ctx.Step(`^a duck named "([^"]*)"$`, w.aDuckNamed)
	ctx.Step(`^an eagle named "([^"]*)"$`, w.anEagleNamed)
	ctx.Step(`^a penguin named "([^"]*)"$`, w.aPenguinNamed)
	ctx.Step(`^a whale named "([^"]*)"$`, w.aWhaleNamed)
	ctx.Step(`^an electric car named "([^"]*)"$`, w.anElectricCarNamed)
	ctx.Step(`^a helicopter named "([^"]*)"$`, w.aHelicopterNamed)
	ctx.Step(`^the (\w+) has energy level "([^"]*)"$`, w.hasEnergyLevel)

	ctx.Step(`^the (\w+) walks$`, w.walks)
	ctx.Step(`^the (\w+) runs$`, w.runs)
	ctx.Step(`^the (\w+) swims$`, w.swims)
	ctx.Step(`^the (\w+) flies$`, w.flies)
	ctx.Step(`^the (\w+) hovers$`, w.hovers)
	ctx.Step(`^the (\w+) moves$`, w.moves)
	ctx.Step(`^the (\w+) rests$`, w.rests)
	ctx.Step(`^the (\w+) navigates "([^"]*)" terrain$`, w.navigatesTerrain)
	ctx.Step(`^the (\w+) dives to (\d+) meters$`, w.divesToMeters)

	ctx.Step(`^the action succeeds$`, w.actionSucceeds)
	ctx.Step(`^the action fails mentioning "([^"]*)"$`, w.actionFailsMentioning)
	ctx.Step(`^the result mentions "([^"]*)"$`, w.resultMentions)
	ctx.Step(`^the (\w+) should have energy level "([^"]*)"$`, w.shouldHaveEnergyLevel)
	ctx.Step(`^the (\w+) can (walk|swim|fly|drive)$`, w.can)
	ctx.Step(`^the (\w+) cannot (walk|swim|fly|drive)$`, w.cannot)
}
