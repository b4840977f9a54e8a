// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/umpd-yara/yara-records/cliparse"
	"github.com/umpd-yara/yara-records/db"
	"github.com/umpd-yara/yara-records/seed"
)

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "yaraseed",
		Short: "Fill the YARA tables with synthetic records",
		Long: `yaraseed inserts randomized incidents, officers, persons, evidence,
arrests, officer assignments and incident links, parents first.

Rows whose key already exists are skipped. Any other failure stops the run.
Every flag can also be set through a YARA_ environment variable
(YARA_DATABASE_URL, YARA_INCIDENTS, ...) or a yaraseed.yaml file.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	d := seed.DefaultCounts
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file (default: ./yaraseed.yaml)")
	f.String(keyDatabaseURL, "", "Database URL or SQLite file path")
	f.String(keyDatabaseType, cliparse.DefaultType, "Database type (sqlite or postgres)")
	f.String(keySchema, cliparse.DefaultSchema, "Schema holding the YARA tables (postgres only)")
	f.Uint64(keySeed, 0, "Random seed; 0 picks one")
	f.Bool(keyInitSchema, false, "Create the YARA tables if they do not exist")
	f.Int(keyIncidents, d.Incidents, "Incidents to insert")
	f.Int(keyOfficers, d.Officers, "Officers to insert")
	f.Int(keyPersons, d.Persons, "Persons to insert")
	f.Int(keyEvidence, d.Evidence, "Evidence items to insert")
	f.Int(keyArrests, d.Arrests, "Arrests to insert")
	f.Int(keyAssign, d.Assign, "Officer assignments to insert")
	f.Int(keyContain, d.Contain, "Incident links to insert")

	return cmd
}

func run(cmd *cobra.Command, cfg config) error {
	ctx := cmd.Context()

	gw, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL, cfg.Schema)
	if err != nil {
		return err
	}
	defer gw.Close()

	slog.Info("connected", "type", cfg.DatabaseType)

	if cfg.InitSchema {
		if err := db.CreateSchema(ctx, gw); err != nil {
			return err
		}
	}

	start := time.Now()
	loader := seed.NewLoader(gw, cfg.Counts, seed.NewGenerator(cfg.Seed, time.Now))

	report, err := loader.Run(ctx)
	if err != nil {
		return err
	}

	slog.Info("seeding completed",
		"inserted", report.Inserted(),
		"skipped", report.Skipped(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	fmt.Fprint(cmd.OutOrStdout(), report.String())
	return nil
}
