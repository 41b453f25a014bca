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

// Package symbols provides prebuilt implementations for the C entry points
// an OXYGEN plugin library exports to the host application.
//
// This package defines low-level constructs for plugin development meant
// for advanced users that wish to use only a portion of the SDK internals.
// The sdk/plugins package should normally be used instead, as it registers
// a plugin with all of the entry points at once.
//
// The entry points are divided in two sub-packages. Importing one of them
// includes its prebuilt symbols in the plugin library; a plugin that
// imports a sub-package cannot define the same symbols again without a
// linking failure.
//
// The mapping between the exported symbols and their sub-package is:
//   - info:      dwGetPluginName, dwGetPluginManifest
//   - lifecycle: dwCreatePlugin, dwDeletePlugin, dwPluginMessage,
//     dwPluginLastError, dwFreeString
//
// The sub-packages only depend on the base-level sdk package and on the
// handle package.
package symbols
