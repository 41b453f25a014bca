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

package sdk

import "errors"

// Result codes returned to the host by the plugin entry points.
const (
	ResultOK             int32 = 0
	ResultFailure        int32 = -1
	ResultNotImplemented int32 = -2
	ResultInvalidHandle  int32 = -3
)

// LastError is a compact interface wrapping the basic methods for getting and
// setting the last error that occurred in a plugin or plugin instance.
// The last error is what the host reads back after an entry point returned
// ResultFailure.
type LastError interface {
	// LastError returns the last error occurred in the plugin.
	LastError() error
	//
	// SetLastError sets the last error occurred in the plugin.
	SetLastError(err error)
}

// Destroyer is an interface wrapping the basic Destroy method for releasing
// the resources of a plugin instance. Destroy is invoked exactly once, when
// the host deletes the instance.
type Destroyer interface {
	Destroy()
}

// ResultOf maps an error returned by plugin code to the result code reported
// to the host.
func ResultOf(err error) int32 {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrNotImplemented):
		return ResultNotImplemented
	case errors.Is(err, ErrInvalidHandle):
		return ResultInvalidHandle
	}
	return ResultFailure
}
