// Command routinesim runs the daily-routine state machine for a number of
// simulated days and prints what the agent does each hour.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/talgya/daily-routine/internal/engine"
	"github.com/talgya/daily-routine/internal/entropy"
	"github.com/talgya/daily-routine/internal/journal"
	"github.com/talgya/daily-routine/internal/persistence"
	"github.com/talgya/daily-routine/internal/routine"
)

// tailEvents is how many stored events are echoed after a persisted run.
const tailEvents = 3

// config is read from the environment.
type config struct {
	Days           int
	Seed           int64
	DBPath         string // empty = transcript is not persisted
	TranscriptPath string // empty = stdout only
	LogLevel       slog.Level

	// Warnings are logged once the configured logger is installed.
	Warnings []string
}

func loadConfig() (config, error) {
	cfg := config{
		DBPath:         os.Getenv("ROUTINE_DB_PATH"),
		TranscriptPath: os.Getenv("ROUTINE_TRANSCRIPT_PATH"),
	}

	days, err := envIntOrDefault("ROUTINE_DAYS", 1)
	if err != nil {
		cfg.Warnings = append(cfg.Warnings, err.Error())
	}
	seed, err := envIntOrDefault("ROUTINE_SEED", 0)
	if err != nil {
		cfg.Warnings = append(cfg.Warnings, err.Error())
	}
	cfg.Days = days
	cfg.Seed = int64(seed)

	if cfg.Days < 0 {
		return cfg, fmt.Errorf("ROUTINE_DAYS must not be negative, got %d", cfg.Days)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("ROUTINE_LOG_LEVEL", "info"))); err != nil {
		return cfg, fmt.Errorf("ROUTINE_LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	for _, w := range cfg.Warnings {
		slog.Warn("config", "warning", w)
	}

	if err := run(cfg); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	rng := entropy.NewSource(cfg.Seed)
	slog.Info("daily routine simulation", "days", cfg.Days, "seed", rng.Seed(), "reproducible", rng.Seeded())

	// ── Transcript sinks ─────────────────────────────────────────────
	printers := []*journal.Printer{journal.NewPrinter(os.Stdout)}
	if cfg.TranscriptPath != "" {
		f, err := os.Create(cfg.TranscriptPath)
		if err != nil {
			return fmt.Errorf("create transcript: %w", err)
		}
		defer f.Close()
		printers = append(printers, journal.NewPrinter(f))
	}
	var out journal.Tee
	for _, p := range printers {
		out = append(out, p)
	}

	sim := engine.NewSimulation(rng, out)
	defer sim.Agent.Shutdown()

	eng := engine.NewEngine()
	eng.OnDay = sim.TickDay

	// ── Journal database (optional) ──────────────────────────────────
	var db *persistence.DB
	var runRec persistence.Run
	if cfg.DBPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return fmt.Errorf("create db dir: %w", err)
		}
		var err error
		db, err = persistence.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		runRec = persistence.NewRun(rng.Seed(), cfg.Days)
		if err := db.SaveRun(runRec); err != nil {
			return err
		}
		slog.Info("database opened", "path", cfg.DBPath, "run", runRec.ID)

		sim.Journaling = true
		eng.OnDay = func(tick uint64) {
			sim.TickDay(tick)
			if err := db.SaveDay(runRec.ID, sim); err != nil {
				slog.Error("daily save failed, retrying at next save", "error", err, "queued", len(sim.Pending()))
			}
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// Ctrl+C ends the run at the next hour boundary.
	eng.OnHour = func(tick uint64, hour int) error {
		select {
		case sig := <-sigCh:
			slog.Info("received signal, stopping", "signal", sig)
			eng.Stop()
			return nil
		default:
		}
		return sim.TickHour(tick, hour)
	}

	runErr := eng.RunDays(cfg.Days)

	if db != nil {
		// Partial days and earlier failed saves are flushed too.
		if err := db.SaveDay(runRec.ID, sim); err != nil {
			slog.Error("final save failed", "error", err, "lost", len(sim.Pending()))
		}
		if err := db.FinishRun(runRec.ID, eng.Tick, sim.Agent.Status()); err != nil {
			slog.Error("finish run failed", "error", err)
		}
		if err := reportStoredRun(db, runRec.ID); err != nil {
			slog.Error("read back run failed", "error", err)
		}
	}

	if runErr != nil {
		return runErr
	}
	for _, p := range printers {
		if err := p.Err(); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
	}

	slog.Info("simulation finished", "summary", sim.Summary())
	return nil
}

// reportStoredRun reads the persisted run back and logs what was kept.
func reportStoredRun(db *persistence.DB, runID string) error {
	stored, err := db.LoadRun(runID)
	if err != nil {
		return err
	}
	count, err := db.CountEvents(runID)
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	lastTick, err := db.GetMeta(runID, "last_tick")
	if err != nil {
		lastTick = "none"
	}

	slog.Info("run stored",
		"run", stored.ID,
		"hours", stored.Hours,
		"events", count,
		"last_tick", lastTick,
		"final_state", stored.FinalState,
		"final_energy", stored.FinalEnergy,
		"final_hunger", stored.FinalHunger,
	)

	tail, err := db.RecentEvents(runID, tailEvents)
	if err != nil {
		return fmt.Errorf("recent events: %w", err)
	}
	for _, e := range tail {
		slog.Debug("stored event", "time", engine.SimTime(e.Tick), "from", e.From, "to", e.To,
			"line", routine.FormatEntry(e.Hour, e.Message))
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envIntOrDefault returns def, plus an error describing why, when the
// variable is set but not an integer.
func envIntOrDefault(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s=%q is not an integer, using %d", key, v, def)
	}
	return n, nil
}
