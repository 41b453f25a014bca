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

package recorder

import (
	"context"
	"database/sql"
	"math"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
)

// Sample is a stored sample. Value is NaN for samples stored as NULL.
type Sample struct {
	Tick  uint64
	Value float64
}

// Telegram is a stored telegram.
type Telegram struct {
	Seq  int64
	Root string
	Doc  string
}

// ChannelSummary aggregates the samples of one channel of a run.
type ChannelSummary struct {
	Channel property.ChannelID
	Count   int64
	Min     float64
	Max     float64
	Mean    float64
}

// Samples returns the samples of a channel of run in tick order.
func (r *Recorder) Samples(ctx context.Context, run int64, channel property.ChannelID) ([]Sample, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tick, value FROM samples WHERE run_id = ? AND channel_id = ? ORDER BY tick`,
		run, int64(channel))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Sample
	for rows.Next() {
		var (
			tick  int64
			value sql.NullFloat64
		)
		if err := rows.Scan(&tick, &value); err != nil {
			return nil, err
		}
		s := Sample{Tick: uint64(tick), Value: math.NaN()}
		if value.Valid {
			s.Value = value.Float64
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// Telegrams returns the telegrams of run in the order they were sent.
func (r *Recorder) Telegrams(ctx context.Context, run int64) ([]Telegram, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, root, doc FROM telegrams WHERE run_id = ? ORDER BY seq`, run)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Telegram
	for rows.Next() {
		var t Telegram
		if err := rows.Scan(&t.Seq, &t.Root, &t.Doc); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// Summary returns per channel statistics of run, ordered by channel. NULL
// values are counted but not aggregated.
func (r *Recorder) Summary(ctx context.Context, run int64) ([]ChannelSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT channel_id, COUNT(*), MIN(value), MAX(value), AVG(value)
		FROM samples WHERE run_id = ?
		GROUP BY channel_id ORDER BY channel_id`, run)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []ChannelSummary
	for rows.Next() {
		var (
			channel        int64
			s              ChannelSummary
			minv, maxv, av sql.NullFloat64
		)
		if err := rows.Scan(&channel, &s.Count, &minv, &maxv, &av); err != nil {
			return nil, err
		}
		s.Channel = property.ChannelID(channel)
		s.Min, s.Max, s.Mean = orNaN(minv), orNaN(maxv), orNaN(av)
		res = append(res, s)
	}
	return res, rows.Err()
}

func orNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
