// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/umpd-yara/yara-records/seed"
)

const (
	envPrefix      = "YARA"
	configFileName = "yaraseed"
	configFileType = "yaml"

	keyDatabaseURL  = "database-url"
	keyDatabaseType = "database-type"
	keySchema       = "schema"
	keySeed         = "seed"
	keyInitSchema   = "init-schema"
	keyIncidents    = "incidents"
	keyOfficers     = "officers"
	keyPersons      = "persons"
	keyEvidence     = "evidence"
	keyArrests      = "arrests"
	keyAssign       = "assign"
	keyContain      = "contain"
)

type config struct {
	DatabaseURL  string
	DatabaseType string
	Schema       string
	Seed         uint64
	InitSchema   bool
	Counts       seed.Counts
}

// loadConfig layers flags over YARA_* env vars over yaraseed.yaml.
// A missing config file is not an error.
func loadConfig(flags *pflag.FlagSet, configFile string) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.BindPFlags(flags); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}

	cfg := config{
		DatabaseURL:  v.GetString(keyDatabaseURL),
		DatabaseType: v.GetString(keyDatabaseType),
		Schema:       v.GetString(keySchema),
		Seed:         v.GetUint64(keySeed),
		InitSchema:   v.GetBool(keyInitSchema),
		Counts: seed.Counts{
			Incidents: v.GetInt(keyIncidents),
			Officers:  v.GetInt(keyOfficers),
			Persons:   v.GetInt(keyPersons),
			Evidence:  v.GetInt(keyEvidence),
			Arrests:   v.GetInt(keyArrests),
			Assign:    v.GetInt(keyAssign),
			Contain:   v.GetInt(keyContain),
		},
	}

	if cfg.DatabaseURL == "" {
		return cfg, errors.New("database URL required (--database-url or YARA_DATABASE_URL)")
	}
	for name, n := range map[string]int{
		keyIncidents: cfg.Counts.Incidents,
		keyOfficers:  cfg.Counts.Officers,
		keyPersons:   cfg.Counts.Persons,
		keyEvidence:  cfg.Counts.Evidence,
		keyArrests:   cfg.Counts.Arrests,
		keyAssign:    cfg.Counts.Assign,
		keyContain:   cfg.Counts.Contain,
	} {
		if n < 0 {
			return cfg, fmt.Errorf("--%s must not be negative", name)
		}
	}

	return cfg, nil
}
