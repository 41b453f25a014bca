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

import "github.com/dewetron/oxygen-sdk-go/pkg/sdk"

type instanceMetrics struct {
	messages sdk.CounterVec
	failures sdk.CounterVec
	samples  sdk.Counter
	windows  sdk.Counter
	channels sdk.Gauge
}

func newInstanceMetrics(f sdk.MetricFactory) *instanceMetrics {
	return &instanceMetrics{
		messages: f.NewCounterVec("messages_total", []string{"msg"}),
		failures: f.NewCounterVec("message_failures_total", []string{"msg"}),
		samples:  f.NewCounter("samples_written_total"),
		windows:  f.NewCounter("process_windows_total"),
		channels: f.NewGauge("output_channels"),
	}
}
