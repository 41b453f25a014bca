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

// Package stream turns the raw sample blocks a host delivers for an input
// channel into per-sample cursors, and resamples irregular input onto an
// exact output rate.
//
// Iterator walks the samples of one Channel. Reader walks several channels
// in lockstep with the first one. Resampler reconstructs a constant rate
// output channel from blocks whose only timing information is the
// timestamp at the end of each block.
package stream
