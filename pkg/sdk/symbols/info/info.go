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

// Package info holds the static information returned by the
// dwGetPluginName and dwGetPluginManifest entry points.
package info

import "sync"

var (
	m         sync.RWMutex
	pName     string
	pManifest string
)

// SetName sets the value returned by dwGetPluginName.
func SetName(name string) {
	m.Lock()
	defer m.Unlock()
	pName = name
	setCName(name)
}

// Name returns the value set with SetName.
func Name() string {
	m.RLock()
	defer m.RUnlock()
	return pName
}

// SetManifest sets the value returned by dwGetPluginManifest.
func SetManifest(manifest string) {
	m.Lock()
	defer m.Unlock()
	pManifest = manifest
	setCManifest(manifest)
}

// Manifest returns the value set with SetManifest.
func Manifest() string {
	m.RLock()
	defer m.RUnlock()
	return pManifest
}
