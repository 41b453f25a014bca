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

// Package sdk provides the definitions shared by every OXYGEN plugin written
// in Go: the identifiers of the messages the host sends to a plugin
// instance, the result codes returned across the plugin boundary, the
// client side of the host interface, and the metric and error reporting
// facilities plugins can use.
//
// Plugin authors normally do not use this package alone. The
// pkg/sdk/plugins package defines the plugin contract, and
// pkg/sdk/plugins/softwarechannel provides the framework for plugins that
// compute software channels from acquired data.
package sdk
