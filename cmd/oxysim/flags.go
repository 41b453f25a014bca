// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2026 The OXYGEN SDK Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
)

// cliConfig holds the command-line configuration.
type cliConfig struct {
	ConfigPath string
	Database   string
	Cycles     int
	LogLevel   string
	LogFormat  string
	Validate   bool
}

func parseFlags(args []string, stderr io.Writer) (*cliConfig, error) {
	cfg := &cliConfig{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.ConfigPath, "config",
		getEnv("OXYSIM_CONFIG", ""),
		"Path to the YAML simulation file, built-in defaults if empty (env: OXYSIM_CONFIG)")
	fs.StringVar(&cfg.Database, "db",
		getEnv("OXYSIM_DB", ""),
		"SQLite database receiving the output, overrides the configuration (env: OXYSIM_DB)")
	fs.IntVar(&cfg.Cycles, "cycles",
		getEnvInt("OXYSIM_CYCLES", 0),
		"Number of processing windows, overrides the configuration (env: OXYSIM_CYCLES)")
	fs.StringVar(&cfg.LogLevel, "log-level",
		getEnv("OXYSIM_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: OXYSIM_LOG_LEVEL)")
	fs.StringVar(&cfg.LogFormat, "log-format",
		getEnv("OXYSIM_LOG_FORMAT", "text"),
		"Log format: json, text (env: OXYSIM_LOG_FORMAT)")
	fs.BoolVar(&cfg.Validate, "validate", false, "Validate the configuration and exit")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "%s - runs an OXYGEN plugin on simulated inputs\n\nUsage: %s [options]\n\nOptions:\n", appName, appName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, validateFlags(cfg)
}

func validateFlags(cfg *cliConfig) error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	if !slices.Contains([]string{"json", "text"}, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}
	if cfg.Cycles < 0 {
		return fmt.Errorf("invalid cycle count: %d", cfg.Cycles)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
