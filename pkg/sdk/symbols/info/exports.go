//go:build cgo

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

package info

/*
#include <stdlib.h>
*/
import "C"
import "unsafe"

// The host keeps the returned pointers without taking ownership, so the
// C copies live until the next Set call.
var (
	cName     *C.char
	cManifest *C.char
)

func setCName(s string) {
	if cName != nil {
		C.free(unsafe.Pointer(cName))
	}
	cName = C.CString(s)
}

func setCManifest(s string) {
	if cManifest != nil {
		C.free(unsafe.Pointer(cManifest))
	}
	cManifest = C.CString(s)
}

//export dwGetPluginName
func dwGetPluginName() *C.char {
	m.RLock()
	defer m.RUnlock()
	return cName
}

//export dwGetPluginManifest
func dwGetPluginManifest() *C.char {
	m.RLock()
	defer m.RUnlock()
	return cManifest
}
