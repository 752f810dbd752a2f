package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-t transport base URL
//	-d local database path (SQLite DSN)
//	-c/-config json file path with configs
//	-batch-size maximum entities per outbound sync message
//	-drain-interval job queue drain period (e.g., "30s", "1m")
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
func ParseFlags() *StructuredConfig {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	cfg := parseFlags(fs, os.Args[1:])
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var transportBaseURL string
	var databaseDSN string
	var jsonConfigPath string
	var batchSize int
	var drainInterval time.Duration
	var requestTimeout time.Duration

	fs.StringVar(&transportBaseURL, "t", "", "Transport base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&batchSize, "batch-size", 0, "Max entities per sync message")
	fs.DurationVar(&drainInterval, "drain-interval", 0, "Job queue drain period (e.g., 30s, 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s, 1m)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Transport: Transport{
			BaseURL:        transportBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			BatchSize:     batchSize,
			DrainInterval: drainInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
