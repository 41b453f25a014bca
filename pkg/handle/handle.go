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

// Package handle maps Go values to small integers that can be handed to the
// host application as opaque plugin instance pointers, and back.
//
// The zero Handle is never issued, so the host can use it as a null value.
// The table is bounded by MaxHandle, which is far above the number of
// plugin instances a host creates in one process.
package handle

import (
	"errors"
	"fmt"
	"sync"
)

// MaxHandle is the largest value a Handle can hold.
const MaxHandle = 1024 - 1

// ErrExhausted is returned by New when every handle is in use.
var ErrExhausted = errors.New("no free handle")

// Handle identifies a value registered with New.
type Handle uintptr

var (
	mu     sync.Mutex
	values [MaxHandle + 1]interface{}
	used   [MaxHandle + 1]bool
	// next is where the search for a free slot starts, so released
	// handles are not reused immediately.
	next uintptr = 1
)

// New registers v and returns its handle. The handle stays valid until
// Delete is called on it.
func New(v interface{}) (Handle, error) {
	mu.Lock()
	defer mu.Unlock()
	for i := uintptr(0); i < MaxHandle; i++ {
		h := (next+i-1)%MaxHandle + 1
		if !used[h] {
			used[h] = true
			values[h] = v
			next = h%MaxHandle + 1
			return Handle(h), nil
		}
	}
	return 0, fmt.Errorf("%w: %d handles in use", ErrExhausted, MaxHandle)
}

// Lookup returns the value of h, or false if h is not a valid handle.
func (h Handle) Lookup() (interface{}, bool) {
	mu.Lock()
	defer mu.Unlock()
	if h == 0 || h > MaxHandle || !used[h] {
		return nil, false
	}
	return values[h], true
}

// Value returns the value of h. It panics if h is not a valid handle.
func (h Handle) Value() interface{} {
	v, ok := h.Lookup()
	if !ok {
		panic(fmt.Sprintf("oxygen-sdk-go/handle: misuse (value) of an invalid Handle %d", h))
	}
	return v
}

// Delete releases h. It panics if h is not a valid handle.
func (h Handle) Delete() {
	mu.Lock()
	defer mu.Unlock()
	if h == 0 || h > MaxHandle || !used[h] {
		panic(fmt.Sprintf("oxygen-sdk-go/handle: misuse (delete) of an invalid Handle %d", h))
	}
	used[h] = false
	values[h] = nil
}

// Len returns the number of handles in use.
func Len() int {
	mu.Lock()
	defer mu.Unlock()
	n := 0
	for _, u := range used {
		if u {
			n++
		}
	}
	return n
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	for i := range used {
		used[i] = false
		values[i] = nil
	}
	next = 1
}
