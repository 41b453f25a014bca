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

// Package recorder stores the samples and telegrams a plugin emits during
// a simulated acquisition in a SQLite database.
//
// A database holds any number of runs; samples and telegrams are written to
// the current run, started with StartRun. Recorder implements loader.Sink.
package recorder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

var errNoRun = errors.New("no run started")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	plugin     TEXT NOT NULL,
	started_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS samples (
	run_id     INTEGER NOT NULL REFERENCES runs(id),
	channel_id INTEGER NOT NULL,
	tick       INTEGER NOT NULL,
	value      REAL
);
CREATE INDEX IF NOT EXISTS idx_samples_channel ON samples(run_id, channel_id, tick);
CREATE TABLE IF NOT EXISTS telegrams (
	run_id INTEGER NOT NULL REFERENCES runs(id),
	seq    INTEGER NOT NULL,
	root   TEXT NOT NULL,
	doc    TEXT NOT NULL
);
`

// Config configures a Recorder.
type Config struct {
	// Path of the database file. Its directory is created if needed.
	Path   string
	Logger *zap.Logger
}

// Recorder writes samples and telegrams to a SQLite database.
type Recorder struct {
	m      sync.Mutex
	db     *sql.DB
	logger *zap.Logger
	run    int64
	seq    int64
}

// Open opens or creates the database at cfg.Path.
func Open(cfg Config) (*Recorder, error) {
	if cfg.Path == "" {
		return nil, errors.New("recorder: empty database path")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("recorder: %w", err)
		}
	}
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("recorder: open %s: %w", cfg.Path, err)
	}
	// one connection serializes the writers
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("recorder: create tables: %w", err)
	}
	return &Recorder{db: db, logger: cfg.Logger}, nil
}

// StartRun starts a new run for the named plugin and returns its id.
func (r *Recorder) StartRun(ctx context.Context, plugin string) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (plugin, started_at) VALUES (?, ?)`,
		plugin, time.Now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("recorder: start run: %w", err)
	}
	if r.run, err = res.LastInsertId(); err != nil {
		return 0, err
	}
	r.seq = 0
	r.logger.Debug("run started", zap.Int64("run", r.run), zap.String("plugin", plugin))
	return r.run, nil
}

// Run returns the id of the current run, or 0.
func (r *Recorder) Run() int64 {
	r.m.Lock()
	defer r.m.Unlock()
	return r.run
}

// WriteSamples stores samples of an output channel in the current run.
// Ticks above math.MaxInt64 cannot be stored.
func (r *Recorder) WriteSamples(channel property.ChannelID, ticks []uint64, values []float64) error {
	if len(ticks) != len(values) {
		return fmt.Errorf("recorder: %d ticks for %d values", len(ticks), len(values))
	}
	r.m.Lock()
	defer r.m.Unlock()
	if r.run == 0 {
		return errNoRun
	}
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO samples (run_id, channel_id, tick, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for i, t := range ticks {
		if t > math.MaxInt64 {
			tx.Rollback()
			return fmt.Errorf("recorder: tick %d out of range", t)
		}
		if _, err := stmt.Exec(r.run, int64(channel), int64(t), nullable(values[i])); err != nil {
			tx.Rollback()
			return fmt.Errorf("recorder: insert sample: %w", err)
		}
	}
	return tx.Commit()
}

// nullable stores NaN as NULL, which SQLite cannot represent as REAL.
func nullable(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}

// WriteTelegram stores a telegram in the current run.
func (r *Recorder) WriteTelegram(root, doc string) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.run == 0 {
		return errNoRun
	}
	r.seq++
	if _, err := r.db.Exec(`INSERT INTO telegrams (run_id, seq, root, doc) VALUES (?, ?, ?, ?)`,
		r.run, r.seq, root, doc); err != nil {
		return fmt.Errorf("recorder: insert telegram: %w", err)
	}
	return nil
}

// Close closes the database.
func (r *Recorder) Close() error {
	return r.db.Close()
}
