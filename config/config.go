// Package config parses the settings an extract run needs before it starts:
// a TOML config file, a local .env file, and command line arguments.
//
// TOML and .env values are published through the process environment so that
// the extractor subprocess inherits them without any extra plumbing.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables published by ParseTOML.
const (
	EnvName     = "ETL_NAME"
	EnvTimezone = "ETL_TIMEZONE"
)

// Valid values for the db_environment and staging_table arguments.
var (
	ValidDBEnvironments = []string{"development", "production"}
	ValidStagingTables  = []string{"stg_data1", "stg_data2"}
)

// Config mirrors the [etl] table of the TOML config file.
type Config struct {
	ETL struct {
		Name     string `toml:"name"`
		Timezone string `toml:"timezone"`
	} `toml:"etl"`
}

// ParseTOML reads the [etl] table from the config file at path and publishes
// its values as ETL_NAME and ETL_TIMEZONE. A missing, empty, or malformed
// file is logged and reported as false rather than returned as an error.
func ParseTOML(path string, logger *slog.Logger) bool {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		logger.Error("config file unusable", "path", path, "err", err)
		return false
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		logger.Error("config file unusable", "path", path, "err", err)
		return false
	}
	if cfg.ETL.Name == "" || cfg.ETL.Timezone == "" {
		logger.Error("config file incomplete", "path", path)
		return false
	}

	os.Setenv(EnvName, cfg.ETL.Name)
	os.Setenv(EnvTimezone, cfg.ETL.Timezone)
	logger.Info("config file parsed", "path", path, "name", cfg.ETL.Name, "timezone", cfg.ETL.Timezone)
	return true
}

// LoadEnv loads variables from the named .env files into the process
// environment. With no arguments it loads ".env" from the working directory.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("config: load env: %w", err)
	}
	return nil
}

// Args holds the parsed command line arguments for an extract run.
type Args struct {
	// DaysAgo is how many days back the extract window starts. Always
	// non-negative.
	DaysAgo int

	// DBEnvironment is one of ValidDBEnvironments.
	DBEnvironment string

	// StagingTable is one of ValidStagingTables.
	StagingTable string

	// IncludeAll selects processing every staging table instead of just
	// StagingTable.
	IncludeAll bool
}

// ParseArgs parses command line arguments into an Args. A negative days_ago
// is flipped positive with a notice; db_environment and staging_table values
// outside their valid sets are errors.
func ParseArgs(args []string, logger *slog.Logger) (Args, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fs := flag.NewFlagSet("etl", flag.ContinueOnError)
	daysAgo := fs.Int("days_ago", 1, "extract records starting with: n-days ago")
	dbEnv := fs.String("db_environment", "development", fmt.Sprintf("database environment, one of %v", ValidDBEnvironments))
	stagingTable := fs.String("staging_table", "stg_data1", "specific staging table to process")
	includeAll := fs.String("include_all", "true", "true: process all tables, false: process staging_table only")
	if err := fs.Parse(args); err != nil {
		return Args{}, fmt.Errorf("config: parse args: %w", err)
	}

	if *daysAgo < 0 {
		logger.Warn("days_ago cannot be negative, using positive", "days_ago", *daysAgo)
		*daysAgo = -*daysAgo
	}
	if !slices.Contains(ValidDBEnvironments, *dbEnv) {
		return Args{}, fmt.Errorf("config: db_environment %q not in %v", *dbEnv, ValidDBEnvironments)
	}
	if !slices.Contains(ValidStagingTables, *stagingTable) {
		return Args{}, fmt.Errorf("config: staging_table %q not in %v", *stagingTable, ValidStagingTables)
	}

	parsed := Args{
		DaysAgo:       *daysAgo,
		DBEnvironment: *dbEnv,
		StagingTable:  *stagingTable,
		IncludeAll:    truthy(*includeAll),
	}
	logger.Info("arguments parsed",
		"days_ago", parsed.DaysAgo,
		"db_environment", parsed.DBEnvironment,
		"staging_table", parsed.StagingTable,
		"include_all", parsed.IncludeAll,
	)
	return parsed, nil
}

// truthy reports whether s spells an affirmative value. Anything else,
// including the empty string, is false.
func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}

// RelevantEnvVars returns the environment variables an extract run cares
// about. By default only the ETL_* variables are included; includeAll returns
// the whole environment minus PATH.
func RelevantEnvVars(includeAll bool) map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if includeAll {
			if key != "PATH" {
				vars[key] = val
			}
			continue
		}
		if key == EnvName || key == EnvTimezone {
			vars[key] = val
		}
	}
	return vars
}
