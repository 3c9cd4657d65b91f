// Package headless drives a game without a terminal on a virtual clock.
// Runs are deterministic for a given seed, which makes them useful for
// simulations and tests.
package headless

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Policy decides which input the virtual player sends each tick.
type Policy string

const (
	PolicyIdle   Policy = "idle"   // Never move
	PolicyUp     Policy = "up"     // Press up every tick
	PolicyRandom Policy = "random" // Random direction or nothing, seeded
)

// ErrUnknownPolicy is returned for policy names that are not recognized.
var ErrUnknownPolicy = errors.New("headless: unknown policy")

// ParsePolicy converts a policy name. An empty name means idle.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyIdle:
		return PolicyIdle, nil
	case PolicyUp:
		return PolicyUp, nil
	case PolicyRandom:
		return PolicyRandom, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Options configure a headless run.
type Options struct {
	Ticks    int   // Number of simulation ticks to run
	TickRate int   // Ticks per virtual second (default 60)
	Seed     int64 // Passed to the game and the random policy
	Policy   Policy
}

// Result summarizes a finished run.
type Result struct {
	State   core.GameState
	Timers  int           // Timer callbacks fired, including the initial one
	Elapsed time.Duration // Virtual time covered by the run
}

var randomActions = []core.Action{
	core.ActionNone,
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
}

// Run resets game and advances it opts.Ticks times. If the game has a
// periodic timer it fires once at start and then whenever its interval has
// elapsed on the virtual clock, before the tick that crosses it.
func Run(game registry.Game, opts Options) (Result, error) {
	if opts.Ticks < 0 {
		return Result{}, fmt.Errorf("headless: negative tick count %d", opts.Ticks)
	}
	policy, err := ParsePolicy(string(opts.Policy))
	if err != nil {
		return Result{}, err
	}

	cfg := core.DefaultConfig()
	if opts.TickRate > 0 {
		cfg.TickRate = opts.TickRate
	}
	cfg.Seed = opts.Seed
	step := time.Second / time.Duration(cfg.TickRate)

	rng := rand.New(rand.NewSource(opts.Seed))
	game.Reset(cfg)

	var res Result
	timer, hasTimer := game.(registry.Timer)
	var untilTimer time.Duration
	if hasTimer {
		timer.OnTimer()
		res.Timers++
		untilTimer = timer.TimerInterval()
	}

	for range opts.Ticks {
		if hasTimer && untilTimer > 0 {
			untilTimer -= step
			for untilTimer <= 0 {
				timer.OnTimer()
				res.Timers++
				next := timer.TimerInterval()
				if next <= 0 {
					// A non-positive interval stops the timer
					break
				}
				untilTimer += next
			}
		}

		game.Step(frameFor(policy, rng))
		res.Elapsed += step
	}

	res.State = game.State()
	return res, nil
}

func frameFor(p Policy, rng *rand.Rand) core.InputFrame {
	switch p {
	case PolicyUp:
		return core.NewInputFrame(core.ActionUp)
	case PolicyRandom:
		return core.NewInputFrame(randomActions[rng.Intn(len(randomActions))])
	}
	return core.NewInputFrame()
}
