// Bridgemaster decodes LIN files into validated board records and analyzes
// them: final contract, rule-based bidding advice, and (when a solver is
// configured) double-dummy ground truth. Results land in a SQLite database
// and as per-source JSON files.
//
// Usage:
//
//	bridgemaster analyze <file-or-directory>
//	bridgemaster watch
//	bridgemaster backup
//	bridgemaster version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/bridgelab/bridgemaster/internal/bridge/solver"
	"github.com/bridgelab/bridgemaster/internal/config"
	"github.com/bridgelab/bridgemaster/internal/engine"
	"github.com/bridgelab/bridgemaster/internal/report"
	"github.com/bridgelab/bridgemaster/internal/storage"
	"github.com/bridgelab/bridgemaster/internal/watcher"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: ~/.bridgemaster/config.toml)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := newLogger(*debug)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.App.DebugMode {
		log = newLogger(true)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "analyze":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "analyze requires a file or directory argument")
			os.Exit(2)
		}
		err = runAnalyze(ctx, cfg, log, args[1])
	case "watch":
		err = runWatch(ctx, cfg, log)
	case "backup":
		err = runBackup(cfg, log)
	case "version":
		fmt.Printf("bridgemaster %s (%s)\n", version, gitCommit)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  bridgemaster [flags] analyze <file-or-directory>
  bridgemaster [flags] watch
  bridgemaster [flags] backup
  bridgemaster version

Flags:
  -config path   config file (default ~/.bridgemaster/config.toml)
  -debug         enable debug logging`)
}

// newLogger builds a console logger at the requested level.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newService opens the database and wires the pipeline service.
func newService(cfg *config.Config, log zerolog.Logger) (*engine.Service, *storage.DB, error) {
	db, err := storage.Open(storage.DefaultConfig(cfg.Database.Path))
	if err != nil {
		return nil, nil, fmt.Errorf("open results database: %w", err)
	}

	var dd solver.Solver
	if cfg.Solver.URL != "" {
		dd = solver.NewClient(cfg.Solver.URL)
		log.Debug().Str("url", cfg.Solver.URL).Msg("double-dummy solver enabled")
	}

	return engine.NewService(db, dd, log), db, nil
}

// runAnalyze processes one file or every .lin file in a directory and
// writes JSON session results.
func runAnalyze(ctx context.Context, cfg *config.Config, log zerolog.Logger, target string) error {
	svc, db, err := newService(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := report.Clean(cfg.Data.ResultsDir); err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	results := make(map[string][]*engine.Analysis)
	if info.IsDir() {
		results, err = svc.ProcessDir(ctx, target)
		if err != nil {
			return err
		}
	} else {
		analyses, err := svc.ProcessFile(ctx, target)
		if err != nil {
			return err
		}
		results[info.Name()] = analyses
	}

	for source, analyses := range results {
		path, err := report.Write(cfg.Data.ResultsDir, source, analyses)
		if err != nil {
			return err
		}
		log.Info().Str("source", source).Int("boards", len(analyses)).Str("report", path).Msg("session result written")

		for _, a := range analyses {
			evt := log.Info().
				Str("board", a.Board.ID).
				Str("contract", a.Contract.String()).
				Str("opening", a.Opening.Bid)
			if !a.Contract.Passed {
				evt = evt.Str("declarer", a.Board.PlayerName(a.Contract.Declarer))
			}
			evt.Msg("board analyzed")
		}
	}

	return nil
}

// runWatch processes new LIN files as they appear in the data directory.
func runWatch(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	svc, db, err := newService(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	settle, err := cfg.GetWatchSettle()
	if err != nil {
		return err
	}

	w, err := watcher.New(watcher.Config{Dir: cfg.Data.Dir, Settle: settle},
		func(ctx context.Context, path string) error {
			analyses, err := svc.ProcessFile(ctx, path)
			if err != nil {
				return err
			}
			_, err = report.Write(cfg.Data.ResultsDir, filepath.Base(path), analyses)
			return err
		}, log)
	if err != nil {
		return err
	}

	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runBackup snapshots the results database.
func runBackup(cfg *config.Config, log zerolog.Logger) error {
	db, err := storage.Open(storage.DefaultConfig(cfg.Database.Path))
	if err != nil {
		return fmt.Errorf("open results database: %w", err)
	}
	defer db.Close()

	path, err := db.Backup(storage.BackupOptions{
		Dir:      cfg.Database.BackupDir,
		Password: cfg.Database.BackupPassword,
	})
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("backup written")
	return nil
}
