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

// Command oxysim runs an OXYGEN plugin in-process on simulated input
// channels, the way the host application would during a measurement, and
// records what the plugin emits to a SQLite database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dewetron/oxygen-sdk-go/examples/sum"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/plugins"
	"go.uber.org/zap"
)

const (
	Version = "0.1.0"
	appName = "oxysim"
)

// catalog lists the plugins oxysim can run.
var catalog = map[string]func() plugins.Plugin{
	"sum": func() plugins.Plugin { return sum.New() },
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", appName, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cli, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	cfg := DefaultConfig()
	if cli.ConfigPath != "" {
		if cfg, err = LoadConfig(cli.ConfigPath); err != nil {
			return err
		}
	}
	if cli.Database != "" {
		cfg.Database = cli.Database
	}
	if cli.Cycles > 0 {
		cfg.Acquisition.Cycles = cli.Cycles
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cli.Validate {
		fmt.Println("configuration is valid")
		return nil
	}

	logger, err := newLogger(cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := newSimulation(cfg, logger)
	report, err := sim.Run(ctx)
	if err != nil {
		logger.Error("simulation failed", zap.Error(err))
		return err
	}
	return report.Print(os.Stdout)
}
