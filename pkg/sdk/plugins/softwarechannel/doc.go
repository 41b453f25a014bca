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

// Package softwarechannel is a framework for plugins that compute software
// channels: output channels whose samples are derived from the input
// channels of the host during an acquisition.
//
// A plugin author implements the Software interface, and optionally the
// ConfigListener, AcquisitionPreparer, AcquisitionStarter,
// AcquisitionStopper, ExportValidator and Exporter interfaces. The
// framework Instance decodes the messages of the host, keeps the output
// channels (PluginChannels) and their editable configuration items in
// sync with it, saves and restores setups, and fetches the input data of
// each processing window.
//
// A typical plugin registers itself with:
//
//	func init() {
//		plugins.Register(softwarechannel.NewPlugin(info, func(string) (softwarechannel.Software, error) {
//			return &mySoftware{}, nil
//		}))
//	}
package softwarechannel
