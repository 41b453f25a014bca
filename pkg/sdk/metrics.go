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

package sdk

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Labels are the label values of a single series of a metric vector.
type Labels map[string]string

// Counter is a monotonically increasing metric.
type Counter interface {
	// Add adds the given value to the counter. It panics if the value is < 0.
	Add(float64)
}

// CounterVec is a family of counters partitioned by labels.
type CounterVec interface {
	Add(Labels, float64)
}

// Gauge is a metric that can go up and down.
type Gauge interface {
	// Set sets the Gauge to an arbitrary value.
	Set(float64)
	// Add adds the given value to the Gauge. (The value can be negative,
	// resulting in a decrease of the Gauge.)
	Add(float64)
}

// GaugeVec is a family of gauges partitioned by labels.
type GaugeVec interface {
	Set(Labels, float64)
	Add(Labels, float64)
}

// MetricFactory creates the metrics a plugin reports. Creating twice a
// metric with the same name returns the same underlying series.
type MetricFactory interface {
	NewCounter(name string) Counter
	NewCounterVec(name string, labelNames []string) CounterVec
	NewGauge(name string) Gauge
	NewGaugeVec(name string, labelNames []string) GaugeVec
}

type discardMetric struct{}

type discardMetricVec struct{}

func (d *discardMetric) Set(float64) {}

func (d *discardMetric) Add(float64) {}

func (d *discardMetricVec) Set(Labels, float64) {}

func (d *discardMetricVec) Add(Labels, float64) {}

// DiscardMetricFactory is a MetricFactory whose metrics drop every update.
// It is the default factory of plugins that have not been given one.
type DiscardMetricFactory struct {
	m    discardMetric
	mVec discardMetricVec
}

func (d *DiscardMetricFactory) NewCounter(name string) Counter {
	return &d.m
}

func (d *DiscardMetricFactory) NewCounterVec(name string, labelNames []string) CounterVec {
	return &d.mVec
}

func (d *DiscardMetricFactory) NewGauge(name string) Gauge {
	return &d.m
}

func (d *DiscardMetricFactory) NewGaugeVec(name string, labelNames []string) GaugeVec {
	return &d.mVec
}

type counterVec struct{ v *prometheus.CounterVec }

func (c *counterVec) Add(l Labels, v float64) {
	c.v.With(prometheus.Labels(l)).Add(v)
}

type gaugeVec struct{ v *prometheus.GaugeVec }

func (g *gaugeVec) Set(l Labels, v float64) {
	g.v.With(prometheus.Labels(l)).Set(v)
}

func (g *gaugeVec) Add(l Labels, v float64) {
	g.v.With(prometheus.Labels(l)).Add(v)
}

type prometheusMetricFactory struct {
	reg       prometheus.Registerer
	namespace string
	subsystem string
}

// NewPrometheusMetricFactory returns a MetricFactory registering its metrics
// in reg, under the given namespace and subsystem.
//
// Metric creation panics if a metric with the same name but a different
// kind or label set has already been registered.
func NewPrometheusMetricFactory(reg prometheus.Registerer, namespace, subsystem string) MetricFactory {
	if reg == nil {
		panic("oxygen-sdk-go/sdk.NewPrometheusMetricFactory: reg must not be nil")
	}
	return &prometheusMetricFactory{reg: reg, namespace: namespace, subsystem: subsystem}
}

func (p *prometheusMetricFactory) opts(name string) prometheus.Opts {
	return prometheus.Opts{
		Namespace: p.namespace,
		Subsystem: p.subsystem,
		Name:      name,
		Help:      fmt.Sprintf("Plugin metric %s.", name),
	}
}

// register registers c, or returns the collector already registered
// under the same descriptor.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(fmt.Sprintf("oxygen-sdk-go/sdk.MetricFactory: %s", err.Error()))
	}
	return c
}

func (p *prometheusMetricFactory) NewCounter(name string) Counter {
	return register(p.reg, prometheus.NewCounter(prometheus.CounterOpts(p.opts(name))))
}

func (p *prometheusMetricFactory) NewCounterVec(name string, labelNames []string) CounterVec {
	v := register(p.reg, prometheus.NewCounterVec(prometheus.CounterOpts(p.opts(name)), labelNames))
	return &counterVec{v: v}
}

func (p *prometheusMetricFactory) NewGauge(name string) Gauge {
	return register(p.reg, prometheus.NewGauge(prometheus.GaugeOpts(p.opts(name))))
}

func (p *prometheusMetricFactory) NewGaugeVec(name string, labelNames []string) GaugeVec {
	v := register(p.reg, prometheus.NewGaugeVec(prometheus.GaugeOpts(p.opts(name)), labelNames))
	return &gaugeVec{v: v}
}
