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
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dewetron/oxygen-sdk-go/pkg/loader"
	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/recorder"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// simulation runs one plugin instance against generated inputs.
type simulation struct {
	cfg     *Config
	logger  *zap.Logger
	metrics *prometheus.Registry
}

func newSimulation(cfg *Config, logger *zap.Logger) *simulation {
	return &simulation{cfg: cfg, logger: logger, metrics: prometheus.NewRegistry()}
}

// Report summarizes a simulation.
type Report struct {
	Plugin    string
	Database  string
	Run       int64
	Windows   int
	Messages  float64
	Telegrams int
	Channels  []ChannelReport
}

// ChannelReport summarizes the samples of one output channel.
type ChannelReport struct {
	LocalID telegram.LocalID
	Name    string
	recorder.ChannelSummary
}

func (s *simulation) Run(ctx context.Context) (*Report, error) {
	rec, err := recorder.Open(recorder.Config{Path: s.cfg.Database, Logger: s.logger})
	if err != nil {
		return nil, err
	}
	defer rec.Close()

	registry := loader.NewRegistry()
	defer registry.Close()
	p, err := loader.Load(catalog[s.cfg.Plugin](),
		loader.WithLogger(s.logger),
		loader.WithMetricFactory(sdk.NewPrometheusMetricFactory(s.metrics, appName, "plugin")))
	if err != nil {
		return nil, err
	}
	if err := registry.Add(p); err != nil {
		return nil, err
	}
	if err := p.Init(s.cfg.Init); err != nil {
		return nil, err
	}

	run, err := rec.StartRun(ctx, p.Info().Name)
	if err != nil {
		return nil, err
	}
	host := loader.NewMemoryHost(loader.WithHostLogger(s.logger), loader.WithSink(rec))
	gens := make(map[property.ChannelID]*generator, len(s.cfg.Inputs))
	for _, in := range s.cfg.Inputs {
		format, err := telegram.ParseSampleFormat(in.Format)
		if err != nil {
			return nil, err
		}
		id := property.ChannelID(in.ID)
		if err := host.AddInput(sdk.ChannelInfo{
			ID:       id,
			Name:     in.Name,
			Format:   telegram.SyncScalar(format),
			Timebase: timebase.NewSimple(in.Rate),
		}); err != nil {
			return nil, err
		}
		gens[id] = newGenerator(in.Signal, in.Rate)
	}

	inst, err := p.CreateInstance(host)
	if err != nil {
		return nil, err
	}
	defer inst.Close()

	inputs := make([]property.ChannelID, 0, len(s.cfg.Create))
	for _, id := range s.cfg.Create {
		inputs = append(inputs, property.ChannelID(id))
	}
	if err := inst.Create(inputs...); err != nil {
		return nil, fmt.Errorf("create channels: %w", err)
	}
	if len(s.cfg.Settings) > 0 {
		update := &telegram.UpdateConfigTelegram{}
		for _, st := range s.cfg.Settings {
			cfg, ok := update.Channel(telegram.LocalID(st.Channel))
			if !ok {
				cfg = update.AddChannel(telegram.LocalID(st.Channel))
			}
			cfg.SetProperty(property.NewFloat(st.Name, st.Value))
		}
		if err := inst.Configure(update); err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
	}

	feed := func(h *loader.MemoryHost, start, end timebase.Timestamp) error {
		for id, g := range gens {
			from, to := start.Convert(g.rate).Ticks, end.Convert(g.rate).Ticks
			if to <= from {
				continue
			}
			if err := h.AppendInput(id, from, g.samples(from, int(to-from))); err != nil {
				return err
			}
		}
		return nil
	}
	acq := s.cfg.Acquisition
	s.logger.Info("acquisition started",
		zap.String("plugin", p.Info().Name),
		zap.Int64("run", run),
		zap.Float64("frequency", acq.Frequency),
		zap.Uint64("window", acq.Window),
		zap.Int("cycles", acq.Cycles))
	if err := inst.Acquire(ctx, acq.Frequency, acq.Window, acq.Cycles, feed); err != nil {
		return nil, err
	}
	return s.report(ctx, rec, run, host)
}

func (s *simulation) report(ctx context.Context, rec *recorder.Recorder, run int64, host *loader.MemoryHost) (*Report, error) {
	summaries, err := rec.Summary(ctx, run)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Plugin:    s.cfg.Plugin,
		Database:  s.cfg.Database,
		Run:       run,
		Windows:   s.cfg.Acquisition.Cycles,
		Telegrams: len(host.Telegrams()),
		Messages:  s.counter("oxysim_plugin_messages_total"),
	}
	channels := host.Channels()
	for _, sum := range summaries {
		local, ok := host.LocalID(sum.Channel)
		if !ok {
			s.logger.Warn("samples of an unannounced channel", zap.Uint64("channel_id", uint64(sum.Channel)))
			continue
		}
		c := ChannelReport{LocalID: local, ChannelSummary: sum}
		if info, ok := channels.Channel(local); ok {
			c.Name = info.DefaultName
		}
		report.Channels = append(report.Channels, c)
	}
	return report, nil
}

// counter returns the total of a counter over all its labels.
func (s *simulation) counter(name string) float64 {
	families, err := s.metrics.Gather()
	if err != nil {
		s.logger.Warn("metrics unavailable", zap.Error(err))
		return 0
	}
	total := 0.0
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

// Print writes the report as a table.
func (r *Report) Print(w io.Writer) error {
	fmt.Fprintf(w, "plugin %s, run %d in %s: %d windows, %g messages, %d telegrams\n",
		r.Plugin, r.Run, r.Database, r.Windows, r.Messages, r.Telegrams)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHANNEL\tNAME\tSAMPLES\tMIN\tMAX\tMEAN")
	for _, c := range r.Channels {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.6g\t%.6g\t%.6g\n", c.LocalID, c.Name, c.Count, c.Min, c.Max, c.Mean)
	}
	return tw.Flush()
}
