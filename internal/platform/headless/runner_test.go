package headless

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

type countingGame struct {
	steps    int
	timers   int
	ups      int
	interval time.Duration
}

func (g *countingGame) ID() string                   { return "counting" }
func (g *countingGame) Title() string                { return "Counting" }
func (g *countingGame) Reset(cfg core.RuntimeConfig) { *g = countingGame{interval: g.interval} }
func (g *countingGame) Render(dst *core.Screen)      {}
func (g *countingGame) TimerInterval() time.Duration { return g.interval }
func (g *countingGame) OnTimer()                     { g.timers++ }
func (g *countingGame) State() core.GameState        { return core.GameState{Ticks: g.steps, Wins: g.ups} }

func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if in.Has(core.ActionUp) {
		g.ups++
	}
	return core.StepResult{State: g.State()}
}

func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frogger.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML(frogger.IDFrogger), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	frogger.SetConfigPath(path)
	frogger.SetDifficultyPreset("")
	t.Cleanup(func() { frogger.SetConfigPath("") })
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyIdle, false},
		{"idle", PolicyIdle, false},
		{"up", PolicyUp, false},
		{"random", PolicyRandom, false},
		{"sideways", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownPolicy) {
			t.Errorf("ParsePolicy(%q) error = %v, expected ErrUnknownPolicy", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestRunFiresTimerOnVirtualClock(t *testing.T) {
	g := &countingGame{interval: time.Second}

	res, err := Run(g, Options{Ticks: 25, TickRate: 10})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// Once at start, then at 1s and 2s
	if res.Timers != 3 || g.timers != 3 {
		t.Errorf("Timers = %d (game saw %d), expected 3", res.Timers, g.timers)
	}
	if res.State.Ticks != 25 {
		t.Errorf("Ticks = %d, expected 25", res.State.Ticks)
	}
	if res.Elapsed != 2500*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 2.5s", res.Elapsed)
	}
}

func TestRunStopsTimerOnZeroInterval(t *testing.T) {
	g := &countingGame{}

	res, err := Run(g, Options{Ticks: 100})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Timers != 1 {
		t.Errorf("Timers = %d, expected only the initial callback", res.Timers)
	}
}

func TestRunPolicies(t *testing.T) {
	tests := []struct {
		policy Policy
		ups    int
	}{
		{PolicyIdle, 0},
		{PolicyUp, 50},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			res, err := Run(&countingGame{}, Options{Ticks: 50, Policy: tt.policy})
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if res.State.Wins != tt.ups {
				t.Errorf("up presses = %d, expected %d", res.State.Wins, tt.ups)
			}
		})
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	if _, err := Run(&countingGame{}, Options{Ticks: -1}); err == nil {
		t.Error("expected error for negative ticks")
	}
	if _, err := Run(&countingGame{}, Options{Ticks: 1, Policy: "sideways"}); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestRunFroggerIdleNeverScores(t *testing.T) {
	useDefaultConfig(t)

	res, err := Run(frogger.New(), Options{Ticks: 600, Seed: 7, Policy: PolicyIdle})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.State.Wins != 0 || res.State.Losses != 0 {
		t.Errorf("idle run = %+v, expected no crossings or collisions", res.State)
	}
	if res.Timers < 5 {
		t.Errorf("Timers = %d, expected enemies to keep spawning", res.Timers)
	}
}

func TestRunFroggerUpCrosses(t *testing.T) {
	useDefaultConfig(t)

	res, err := Run(frogger.New(), Options{Ticks: 600, Seed: 7, Policy: PolicyUp})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.State.Wins == 0 {
		t.Errorf("up run = %+v, expected crossings", res.State)
	}
	if res.State.Score != res.State.Wins*100 {
		t.Errorf("Score = %d, expected 100 per crossing", res.State.Score)
	}
}

func TestRunFroggerIsDeterministic(t *testing.T) {
	useDefaultConfig(t)

	opts := Options{Ticks: 1200, Seed: 99, Policy: PolicyRandom}
	a, err := Run(frogger.New(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	b, err := Run(frogger.New(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if a != b {
		t.Errorf("runs differ for the same seed: %+v vs %+v", a, b)
	}
}
