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

// Package plugins defines the contract between an OXYGEN plugin written in
// Go and the SDK: the static plugin information, the Plugin and Instance
// interfaces, and base types that plugin authors embed to get default
// implementations of the optional facilities.
package plugins

import (
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"go.uber.org/zap"
)

// Plugin is the interface every plugin must implement. A plugin is a
// factory of instances: the host creates one instance per software channel
// group the user adds.
type Plugin interface {
	sdk.LastError
	Info() *Info
	//
	// Init initializes the plugin with a JSON configuration. If Info
	// returns an init schema, the configuration has been validated against
	// it before Init is invoked.
	Init(config string) error
	//
	// CreateInstance returns a new instance bound to the given host.
	CreateInstance(host sdk.Host) (Instance, error)
	//
	// (optional): sdk.Destroyer
}

// Instance is the interface of a plugin instance. The host invokes
// HandleMessage serially: no two messages are ever dispatched concurrently
// to the same instance.
type Instance interface {
	sdk.LastError
	//
	// HandleMessage processes a message of the host. The data and the
	// returned reply are XML telegrams, and either may be empty. Returning
	// an error wrapping sdk.ErrNotImplemented tells the host that the
	// message is not handled by this instance.
	HandleMessage(id sdk.MessageID, data string) (reply string, err error)
	//
	// (optional): sdk.Destroyer
}

// BaseLastError is a base implementation of sdk.LastError.
type BaseLastError struct {
	lastErr error
}

func (b *BaseLastError) LastError() error {
	return b.lastErr
}

func (b *BaseLastError) SetLastError(err error) {
	b.lastErr = err
}

// BaseLogger holds the logger of a plugin or instance. The zero value
// logs nothing.
type BaseLogger struct {
	logger *zap.Logger
}

// Logger returns the logger set with SetLogger, or a no-op logger.
func (b *BaseLogger) Logger() *zap.Logger {
	if b.logger == nil {
		return zap.NewNop()
	}
	return b.logger
}

func (b *BaseLogger) SetLogger(l *zap.Logger) {
	b.logger = l
}

// BaseMetrics holds the metric factory of a plugin or instance. The zero
// value discards every metric.
type BaseMetrics struct {
	factory sdk.MetricFactory
}

// MetricFactory returns the factory set with SetMetricFactory, or a
// sdk.DiscardMetricFactory.
func (b *BaseMetrics) MetricFactory() sdk.MetricFactory {
	if b.factory == nil {
		b.factory = &sdk.DiscardMetricFactory{}
	}
	return b.factory
}

func (b *BaseMetrics) SetMetricFactory(f sdk.MetricFactory) {
	b.factory = f
}

// BasePlugin is meant to be embedded by plugin implementations.
type BasePlugin struct {
	BaseLastError
	BaseLogger
	BaseMetrics
}

// Logged is implemented by plugins accepting a logger from the loader.
type Logged interface {
	Logger() *zap.Logger
	SetLogger(l *zap.Logger)
}

// Measured is implemented by plugins accepting a metric factory from the
// loader.
type Measured interface {
	MetricFactory() sdk.MetricFactory
	SetMetricFactory(f sdk.MetricFactory)
}
