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

package lifecycle

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"
import (
	"unsafe"

	"github.com/dewetron/oxygen-sdk-go/pkg/handle"
)

//export dwCreatePlugin
func dwCreatePlugin(host C.uintptr_t, rc *int32) C.uintptr_t {
	h, res := create(uintptr(host))
	*rc = res
	return C.uintptr_t(h)
}

//export dwDeletePlugin
func dwDeletePlugin(h C.uintptr_t) int32 {
	return destroy(handle.Handle(h))
}

// The reply, if any, is allocated with malloc and must be released with
// dwFreeString.
//
//export dwPluginMessage
func dwPluginMessage(h C.uintptr_t, id uint32, data *C.char, reply **C.char) int32 {
	var in string
	if data != nil {
		in = C.GoString(data)
	}
	out, res := message(handle.Handle(h), id, in)
	if reply != nil {
		*reply = nil
		if out != "" {
			*reply = C.CString(out)
		}
	}
	return res
}

// The returned string must be released with dwFreeString.
//
//export dwPluginLastError
func dwPluginLastError(h C.uintptr_t) *C.char {
	return C.CString(lastError(handle.Handle(h)))
}

//export dwFreeString
func dwFreeString(p *C.char) {
	C.free(unsafe.Pointer(p))
}
