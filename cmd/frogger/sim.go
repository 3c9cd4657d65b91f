package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/headless"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagTicks  int
	flagPolicy string
	flagRuns   int
)

var simCmd = &cobra.Command{
	Use:   "sim [revision]",
	Short: "Run a headless simulation",
	Long: `Run a revision without a terminal on a virtual clock and print a
summary. Runs are reproducible for a given --seed.

Policies:
  idle   - The player never moves
  up     - The player presses up every tick
  random - The player picks a random direction (or none) every tick

Examples:
  frogger sim
  frogger sim --ticks 3600 --policy up
  frogger sim frogger_classic --policy random --seed 42 --runs 5
  frogger sim --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of simulation ticks per run")
	simCmd.Flags().StringVar(&flagPolicy, "policy", "up", "Input policy: idle, up, random")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs; each uses seed+i")
}

var (
	simHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	simCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runSim(cmd *cobra.Command, args []string) {
	if err := simulate(args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulate runs the headless simulation and writes the summary to out.
// Errors are returned so the store and log file are always closed.
func simulate(args []string, out io.Writer) error {
	gameID := frogger.IDFrogger
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown revision %q", gameID)
	}

	policy, err := headless.ParsePolicy(flagPolicy)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	setupGames()

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	runs := max(flagRuns, 1)
	rows := make([][]string, 0, runs)

	for i := range runs {
		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		seed := flagSeed + int64(i)
		res, err := headless.Run(game, headless.Options{
			Ticks:    flagTicks,
			TickRate: flagFPS,
			Seed:     seed,
			Policy:   policy,
		})
		if err != nil {
			return err
		}

		st := res.State
		if _, err := store.SaveRun(storage.Run{
			GameID: gameID,
			Score:  st.Score,
			Wins:   st.Wins,
			Losses: st.Losses,
			Ticks:  st.Ticks,
		}); err != nil {
			logger.Warn("run not recorded", "err", err)
		}

		spawned, active := 0, 0
		if fg, ok := game.(*frogger.Game); ok && fg.Session() != nil {
			stats := fg.Session().Stats()
			spawned, active = stats.Spawned, stats.Active
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(seed, 10),
			strconv.Itoa(st.Ticks),
			res.Elapsed.String(),
			strconv.Itoa(spawned),
			strconv.Itoa(active),
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Losses),
			strconv.Itoa(st.Score),
		})
		logger.Info("run finished", "run", i+1, "seed", seed, "score", st.Score, "crossings", st.Wins, "collisions", st.Losses)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Run", "Seed", "Ticks", "Time", "Spawned", "Active", "Crossed", "Hit", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return simHeaderStyle
			}
			return simCellStyle
		})

	fmt.Fprintf(out, "%s, policy %s\n", gameID, policy)
	fmt.Fprintln(out, t.Render())

	stats, err := store.Stats(gameID)
	if err != nil {
		logger.Warn("summary unavailable", "err", err)
		return nil
	}
	fmt.Fprintf(out, "Runs: %d  Best: %d  Crossings: %d  Collisions: %d\n",
		stats.Runs, stats.HighScore, stats.Wins, stats.Losses)
	return nil
}
