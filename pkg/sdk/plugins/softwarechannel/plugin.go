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

package softwarechannel

import (
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/plugins"
)

// Factory returns the Software of a new instance. config is the plugin
// configuration passed to Init.
type Factory func(config string) (Software, error)

// Plugin is a plugins.Plugin whose instances run a Software.
type Plugin struct {
	plugins.BasePlugin
	info    plugins.Info
	factory Factory
	config  string
}

// NewPlugin returns a plugin described by info, creating a Software with
// factory for every instance.
func NewPlugin(info plugins.Info, factory Factory) *Plugin {
	if factory == nil {
		panic("oxygen-sdk-go/sdk/plugins/softwarechannel.NewPlugin: factory must not be nil")
	}
	return &Plugin{info: info, factory: factory}
}

func (p *Plugin) Info() *plugins.Info { return &p.info }

// Init stores the configuration handed to the factory.
func (p *Plugin) Init(config string) error {
	p.config = config
	return nil
}

func (p *Plugin) CreateInstance(host sdk.Host) (plugins.Instance, error) {
	sw, err := p.factory(p.config)
	if err != nil {
		return nil, err
	}
	return NewInstance(host, sw,
		WithLogger(p.Logger()),
		WithMetricFactory(p.MetricFactory())), nil
}
