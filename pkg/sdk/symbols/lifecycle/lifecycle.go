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

// Package lifecycle implements the entry points through which the host
// creates plugin instances, dispatches messages to them and deletes them:
// dwCreatePlugin, dwPluginMessage, dwPluginLastError and dwDeletePlugin.
//
// Instances are handed to the host as opaque handles from the handle
// package. An Entry groups the instances of one plugin; the exported C
// symbols use the Entry set with SetEntry.
package lifecycle

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dewetron/oxygen-sdk-go/pkg/handle"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
)

var errNoEntry = errors.New("no plugin registered")

// Instance is the state behind a handle.
type Instance interface {
	sdk.LastError
	HandleMessage(id sdk.MessageID, data string) (string, error)
}

// OnInitFn initializes the plugin with its configuration.
type OnInitFn func(config string) error

// OnCreateFn creates a new instance bound to host.
type OnCreateFn func(host sdk.Host) (Instance, error)

// failedInstance holds the error of an instance that could not be created,
// so that the host can read it back before deleting the handle.
type failedInstance struct {
	err error
}

func (f *failedInstance) LastError() error { return f.err }

func (f *failedInstance) SetLastError(err error) { f.err = err }

func (f *failedInstance) HandleMessage(sdk.MessageID, string) (string, error) {
	return "", f.err
}

// Entry dispatches the lifecycle calls of the host to one plugin.
type Entry struct {
	m           sync.Mutex
	onInit      OnInitFn
	onCreate    OnCreateFn
	initialized bool
	initErr     error
	handles     map[handle.Handle]struct{}
}

// NewEntry returns an Entry using the given callbacks. onInit may be nil.
func NewEntry(onInit OnInitFn, onCreate OnCreateFn) *Entry {
	if onCreate == nil {
		panic("oxygen-sdk-go/sdk/symbols/lifecycle.NewEntry: onCreate must not be nil")
	}
	return &Entry{
		onInit:   onInit,
		onCreate: onCreate,
		handles:  make(map[handle.Handle]struct{}),
	}
}

func (e *Entry) init(config string) error {
	if e.initialized {
		return e.initErr
	}
	e.initialized = true
	if e.onInit != nil {
		e.initErr = e.onInit(config)
	}
	return e.initErr
}

// Init initializes the plugin. Only the first call has an effect; later
// calls return the result of the first one.
func (e *Entry) Init(config string) error {
	e.m.Lock()
	defer e.m.Unlock()
	return e.init(config)
}

// Create creates a new instance. The plugin is initialized with an empty
// configuration if Init has not been called before.
//
// If the instance cannot be created, Create returns the error along with a
// valid handle whose last error is set, so that the host can query it.
// That handle must still be deleted.
func (e *Entry) Create(host sdk.Host) (handle.Handle, error) {
	e.m.Lock()
	defer e.m.Unlock()

	var inst Instance
	err := e.init("")
	if err == nil {
		inst, err = e.onCreate(host)
		if err == nil && inst == nil {
			err = errors.New("plugin returned a nil instance")
		}
	}
	if err != nil {
		inst = &failedInstance{err: err}
	}

	h, herr := handle.New(inst)
	if herr != nil {
		if d, ok := inst.(sdk.Destroyer); ok {
			d.Destroy()
		}
		return 0, herr
	}
	e.handles[h] = struct{}{}
	return h, err
}

func (e *Entry) lookup(h handle.Handle) (Instance, error) {
	e.m.Lock()
	defer e.m.Unlock()
	if _, ok := e.handles[h]; !ok {
		return nil, fmt.Errorf("%w: %d", sdk.ErrInvalidHandle, h)
	}
	return h.Value().(Instance), nil
}

// Message dispatches a message to the instance behind h. A failure other
// than sdk.ErrNotImplemented is also stored as the last error of the
// instance. A panic in the instance is recovered and reported as an error.
func (e *Entry) Message(h handle.Handle, id sdk.MessageID, data string) (reply string, err error) {
	inst, err := e.lookup(h)
	if err != nil {
		return "", err
	}
	defer func() {
		if r := recover(); r != nil {
			reply, err = "", fmt.Errorf("%s: %v", id, r)
		}
		if err != nil && !errors.Is(err, sdk.ErrNotImplemented) {
			inst.SetLastError(err)
		}
	}()
	return inst.HandleMessage(id, data)
}

// LastError returns the last error of the instance behind h.
func (e *Entry) LastError(h handle.Handle) error {
	inst, err := e.lookup(h)
	if err != nil {
		return err
	}
	return inst.LastError()
}

// Delete destroys the instance behind h and releases the handle.
func (e *Entry) Delete(h handle.Handle) error {
	e.m.Lock()
	defer e.m.Unlock()
	if _, ok := e.handles[h]; !ok {
		return fmt.Errorf("%w: %d", sdk.ErrInvalidHandle, h)
	}
	if d, ok := h.Value().(sdk.Destroyer); ok {
		d.Destroy()
	}
	delete(e.handles, h)
	h.Delete()
	return nil
}

// Len returns the number of live instances.
func (e *Entry) Len() int {
	e.m.Lock()
	defer e.m.Unlock()
	return len(e.handles)
}

// Close deletes every live instance.
func (e *Entry) Close() {
	e.m.Lock()
	hs := make([]handle.Handle, 0, len(e.handles))
	for h := range e.handles {
		hs = append(hs, h)
	}
	e.m.Unlock()
	for _, h := range hs {
		_ = e.Delete(h)
	}
}

var (
	registered   *Entry
	hostBridgeFn func(ptr uintptr) sdk.Host
)

// SetEntry sets the Entry used by the exported entry points.
func SetEntry(e *Entry) {
	if e == nil {
		panic("oxygen-sdk-go/sdk/symbols/lifecycle.SetEntry: e must not be nil")
	}
	registered = e
}

// SetHostBridge sets the function wrapping the host pointer received by
// dwCreatePlugin into a sdk.Host.
func SetHostBridge(fn func(ptr uintptr) sdk.Host) {
	if fn == nil {
		panic("oxygen-sdk-go/sdk/symbols/lifecycle.SetHostBridge: fn must not be nil")
	}
	hostBridgeFn = fn
}

func create(hostPtr uintptr) (handle.Handle, int32) {
	if registered == nil {
		return 0, sdk.ResultFailure
	}
	var host sdk.Host
	if hostBridgeFn != nil {
		host = hostBridgeFn(hostPtr)
	}
	h, err := registered.Create(host)
	if h == 0 {
		return 0, sdk.ResultFailure
	}
	return h, sdk.ResultOf(err)
}

func message(h handle.Handle, id uint32, data string) (string, int32) {
	if registered == nil {
		return "", sdk.ResultFailure
	}
	reply, err := registered.Message(h, sdk.MessageID(id), data)
	return reply, sdk.ResultOf(err)
}

func lastError(h handle.Handle) string {
	if registered == nil {
		return errNoEntry.Error()
	}
	if err := registered.LastError(h); err != nil {
		return err.Error()
	}
	return ""
}

func destroy(h handle.Handle) int32 {
	if registered == nil {
		return sdk.ResultFailure
	}
	return sdk.ResultOf(registered.Delete(h))
}
