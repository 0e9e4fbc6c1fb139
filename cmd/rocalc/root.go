package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/udisondev/rocalc/internal/config"
	"github.com/udisondev/rocalc/internal/db"
	"github.com/udisondev/rocalc/internal/engine"
	"github.com/udisondev/rocalc/internal/logger"
)

// app is the state shared by every subcommand after config is loaded.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var cfgPath string

	root := &cobra.Command{
		Use:           "rocalc",
		Short:         "Ragnarok Online equipment damage calculator",
		Long:          `rocalc aggregates equipment bonuses of a build file and evaluates the physical damage formula against a target.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.ResolvePath(cfgPath))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			a.cfg = cfg
			a.log, a.closer = logger.New(cfg.Log, cmd.ErrOrStderr())
			slog.SetDefault(a.log)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "path to rocalc.yaml (env "+config.EnvConfigPath+")")

	root.AddCommand(
		newDamageCmd(a),
		newModsCmd(a),
		newSkillCmd(a),
		newSkillsCmd(a),
		newMigrateCmd(a),
		newImportCmd(a),
	)
	return root
}

// openCatalog opens the configured catalog. Returns nil, nil for driver "none".
func (a *app) openCatalog(ctx context.Context) (db.Catalog, error) {
	switch a.cfg.Catalog.Driver {
	case config.DriverPostgres:
		d, err := db.New(ctx, a.cfg.Catalog.Database.DSN())
		if err != nil {
			return nil, err
		}
		return d, nil
	case config.DriverSQLite:
		s, err := db.OpenSQLite(a.cfg.Catalog.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, a.cfg.Catalog.Driver)
	}
}

// requireCatalog is openCatalog for commands that cannot run without one.
func (a *app) requireCatalog(ctx context.Context) (db.Catalog, error) {
	c, err := a.openCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("catalog driver is %q; set catalog.driver in config", config.DriverNone)
	}
	return c, nil
}

// loadInput reads a build file, completes it from the catalog when one is
// configured and converts it into engine input.
func (a *app) loadInput(ctx context.Context, path string) (engine.Input, error) {
	b, err := config.LoadBuild(path)
	if err != nil {
		return engine.Input{}, err
	}

	c, err := a.openCatalog(ctx)
	if err != nil {
		return engine.Input{}, fmt.Errorf("opening catalog: %w", err)
	}
	if c != nil {
		defer c.Close()
		if err := config.Resolve(ctx, c, b); err != nil {
			return engine.Input{}, fmt.Errorf("resolving build from catalog: %w", err)
		}
	}

	gear, extra, err := b.GearSets()
	if err != nil {
		return engine.Input{}, fmt.Errorf("build %s: %w", path, err)
	}
	return engine.Input{
		Gear:   gear,
		Extra:  extra,
		Stats:  b.Stats,
		Weapon: b.Weapon,
		Target: b.Target,
		Skill:  b.Skill,
	}, nil
}

func (a *app) compute(ctx context.Context, path string) (engine.Input, engine.Result, error) {
	in, err := a.loadInput(ctx, path)
	if err != nil {
		return in, engine.Result{}, err
	}
	var calc engine.Calculator = engine.New(a.log)
	return in, calc.Compute(in), nil
}
