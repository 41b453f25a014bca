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

// Package loader runs a plugin in-process, the way the host application
// would: it validates the plugin information, initializes the plugin with a
// configuration checked against its init schema, and creates instances
// bound to a MemoryHost through the same lifecycle entry points the
// exported C symbols use.
package loader

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dewetron/oxygen-sdk-go/pkg/handle"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/plugins"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/symbols/lifecycle"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

var (
	errNotInitialized     = errors.New("plugin is not initialized")
	errAlreadyInitialized = errors.New("plugin is already initialized")
	errUnloaded           = errors.New("plugin is unloaded")
)

// Plugin is a plugin loaded in-process.
type Plugin struct {
	m           sync.Mutex
	plugin      plugins.Plugin
	entry       *lifecycle.Entry
	info        plugins.Info
	manifest    string
	logger      *zap.Logger
	validated   bool
	validErr    error
	initialized bool
	unloaded    bool
	instances   map[handle.Handle]*Instance
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger hands l to the loader and, if it accepts one, to the plugin.
func WithLogger(l *zap.Logger) Option {
	return func(p *Plugin) {
		p.logger = l
		if lp, ok := p.plugin.(plugins.Logged); ok {
			lp.SetLogger(l.Named(p.info.Name))
		}
	}
}

// WithMetricFactory hands f to the plugin if it accepts one.
func WithMetricFactory(f sdk.MetricFactory) Option {
	return func(p *Plugin) {
		if mp, ok := p.plugin.(plugins.Measured); ok {
			mp.SetMetricFactory(f)
		}
	}
}

// Load is the same as NewPlugin, but returns an error if the plugin is not
// valid.
func Load(p plugins.Plugin, options ...Option) (*Plugin, error) {
	lp, err := NewPlugin(p, options...)
	if err != nil {
		return nil, err
	}
	if err := lp.Validate(); err != nil {
		lp.Unload()
		return nil, err
	}
	return lp, nil
}

// NewPlugin wraps p without validating it, so that the static information
// of an invalid plugin can still be inspected. Refer to Validate and Init.
func NewPlugin(p plugins.Plugin, options ...Option) (*Plugin, error) {
	if p == nil {
		return nil, errors.New("nil plugin")
	}
	info := p.Info()
	if info == nil {
		return nil, errors.New("plugin has no info")
	}
	lp := &Plugin{
		plugin:    p,
		entry:     plugins.NewEntry(p),
		info:      *info,
		logger:    zap.NewNop(),
		instances: make(map[handle.Handle]*Instance),
	}
	for _, opt := range options {
		opt(lp)
	}
	return lp, nil
}

func (p *Plugin) validate() error {
	if p.validated {
		return p.validErr
	}
	p.validated = true
	if err := p.info.Validate(); err != nil {
		p.validErr = err
		return err
	}
	manifest, err := p.info.Manifest()
	if err != nil {
		p.validErr = err
		return err
	}
	back, err := plugins.ParseManifest(manifest)
	if err != nil {
		p.validErr = fmt.Errorf("manifest: %w", err)
		return p.validErr
	}
	if back.Name != p.info.Name || back.UUID != p.info.UUID {
		p.validErr = errors.New("manifest does not describe the plugin")
		return p.validErr
	}
	if p.info.InitSchema != "" {
		if _, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(p.info.InitSchema)); err != nil {
			p.validErr = fmt.Errorf("init schema: %w", err)
			return p.validErr
		}
	}
	p.manifest = manifest
	return nil
}

// Validate returns nil if the plugin information is complete, its manifest
// is well-formed and its init schema, if any, is a valid JSON schema.
func (p *Plugin) Validate() error {
	p.m.Lock()
	defer p.m.Unlock()
	return p.validate()
}

// Info returns the static information of the plugin.
func (p *Plugin) Info() *plugins.Info {
	return &p.info
}

// Manifest returns the manifest of a validated plugin.
func (p *Plugin) Manifest() string {
	p.m.Lock()
	defer p.m.Unlock()
	return p.manifest
}

// Init initializes the plugin with a given config string.
//
// If the plugin has an init schema, the config string is validated with the
// schema and an error is returned for validation failures. An empty config
// is read as "{}". Invoking Init multiple times returns an error.
func (p *Plugin) Init(config string) error {
	p.m.Lock()
	defer p.m.Unlock()
	if p.unloaded {
		return errUnloaded
	}
	if p.initialized {
		return errAlreadyInitialized
	}
	if err := p.validate(); err != nil {
		return fmt.Errorf("plugin is not valid: %w", err)
	}
	config, err := p.validateInitConfig(config)
	if err != nil {
		return fmt.Errorf("invalid plugin config: %w", err)
	}
	if err := p.entry.Init(config); err != nil {
		return fmt.Errorf("plugin init: %w", err)
	}
	p.initialized = true
	p.logger.Info("plugin initialized",
		zap.String("name", p.info.Name),
		zap.Stringer("uuid", p.info.UUID),
		zap.String("version", p.info.Version))
	return nil
}

func (p *Plugin) validateInitConfig(config string) (string, error) {
	if p.info.InitSchema == "" {
		return config, nil
	}
	if len(config) == 0 {
		config = "{}"
	}
	schema := gojsonschema.NewStringLoader(p.info.InitSchema)
	document := gojsonschema.NewStringLoader(config)
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return "", err
	}
	if !result.Valid() {
		// first error only
		return "", errors.New(result.Errors()[0].String())
	}
	return config, nil
}

// CreateInstance creates an instance bound to host. The plugin must be
// initialized.
func (p *Plugin) CreateInstance(host *MemoryHost) (*Instance, error) {
	p.m.Lock()
	defer p.m.Unlock()
	if p.unloaded {
		return nil, errUnloaded
	}
	if !p.initialized {
		return nil, errNotInitialized
	}
	h, err := p.entry.Create(host)
	if h == 0 {
		return nil, err
	}
	if err != nil {
		last := p.entry.LastError(h)
		_ = p.entry.Delete(h)
		return nil, fmt.Errorf("create instance: %w", last)
	}
	inst := &Instance{p: p, h: h, host: host, logger: p.logger.With(zap.Uint64("handle", uint64(h)))}
	p.instances[h] = inst
	inst.logger.Debug("instance created")
	return inst, nil
}

// Instances returns the number of live instances.
func (p *Plugin) Instances() int {
	p.m.Lock()
	defer p.m.Unlock()
	return len(p.instances)
}

func (p *Plugin) release(h handle.Handle) error {
	p.m.Lock()
	defer p.m.Unlock()
	if _, ok := p.instances[h]; !ok {
		return fmt.Errorf("%w: %d", sdk.ErrInvalidHandle, h)
	}
	delete(p.instances, h)
	return p.entry.Delete(h)
}

// Unload deletes every instance and destroys the plugin. Later calls have
// no effect.
func (p *Plugin) Unload() {
	p.m.Lock()
	defer p.m.Unlock()
	if p.unloaded {
		return
	}
	p.unloaded = true
	p.entry.Close()
	clear(p.instances)
	if d, ok := p.plugin.(sdk.Destroyer); ok {
		d.Destroy()
	}
	p.logger.Debug("plugin unloaded", zap.String("name", p.info.Name))
}
