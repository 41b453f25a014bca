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

package plugins

import (
	"fmt"

	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/symbols/info"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/symbols/lifecycle"
)

var registered = false

// NewEntry returns a lifecycle.Entry dispatching the lifecycle calls of
// the host to p.
func NewEntry(p Plugin) *lifecycle.Entry {
	return lifecycle.NewEntry(p.Init, func(host sdk.Host) (lifecycle.Instance, error) {
		inst, err := p.CreateInstance(host)
		if inst == nil {
			return nil, err
		}
		return inst, err
	})
}

// Register binds p to the entry points of the plugin library. It must be
// invoked exactly once, typically in the init function of the main package.
// It panics if the plugin info is not valid.
func Register(p Plugin) {
	if registered {
		panic("oxygen-sdk-go/sdk/plugins: register can be called only once")
	}

	i := p.Info()
	manifest, err := i.Manifest()
	if err != nil {
		panic(fmt.Sprintf("oxygen-sdk-go/sdk/plugins: invalid plugin info: %s", err.Error()))
	}
	info.SetName(i.Name)
	info.SetManifest(manifest)
	lifecycle.SetEntry(NewEntry(p))

	registered = true
}
