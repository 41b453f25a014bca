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

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dewetron/oxygen-sdk-go/pkg/handle"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("errTest")

type sampleInstance struct {
	lastErr       error
	destroyCalled bool
	messages      []sdk.MessageID
}

func (s *sampleInstance) LastError() error { return s.lastErr }

func (s *sampleInstance) SetLastError(err error) { s.lastErr = err }

func (s *sampleInstance) Destroy() { s.destroyCalled = true }

func (s *sampleInstance) HandleMessage(id sdk.MessageID, data string) (string, error) {
	s.messages = append(s.messages, id)
	switch id {
	case sdk.ConfigCreateNew:
		return "reply:" + data, nil
	case sdk.SetupSave:
		return "", fmt.Errorf("setup: %w", sdk.ErrNotImplemented)
	case sdk.AcquisitionStop:
		panic("stop")
	}
	return "", errTest
}

func assertPanic(t *testing.T, fun func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	fun()
}

func TestEntryLifecycle(t *testing.T) {
	var config string
	inst := &sampleInstance{}
	e := NewEntry(
		func(c string) error { config = c; return nil },
		func(sdk.Host) (Instance, error) { return inst, nil },
	)
	require.NoError(t, e.Init(`{"rate":10}`))
	require.NoError(t, e.Init(`ignored`))
	assert.Equal(t, `{"rate":10}`, config)

	h, err := e.Create(nil)
	require.NoError(t, err)
	assert.NotZero(t, h)
	assert.Equal(t, 1, e.Len())

	reply, err := e.Message(h, sdk.ConfigCreateNew, "x")
	require.NoError(t, err)
	assert.Equal(t, "reply:x", reply)

	_, err = e.Message(h, sdk.SetupSave, "")
	assert.ErrorIs(t, err, sdk.ErrNotImplemented)
	assert.NoError(t, e.LastError(h))

	_, err = e.Message(h, sdk.ConfigUpdate, "")
	assert.ErrorIs(t, err, errTest)
	assert.ErrorIs(t, e.LastError(h), errTest)

	_, err = e.Message(h, sdk.AcquisitionStop, "")
	assert.ErrorContains(t, err, "ACQUISITION_STOP: stop")

	require.NoError(t, e.Delete(h))
	assert.True(t, inst.destroyCalled)
	assert.Equal(t, 0, e.Len())
	assert.ErrorIs(t, e.Delete(h), sdk.ErrInvalidHandle)
	_, err = e.Message(h, sdk.ConfigCreateNew, "")
	assert.ErrorIs(t, err, sdk.ErrInvalidHandle)
}

func TestEntryCreateFailure(t *testing.T) {
	e := NewEntry(nil, func(sdk.Host) (Instance, error) { return nil, errTest })
	h, err := e.Create(nil)
	assert.ErrorIs(t, err, errTest)
	require.NotZero(t, h)
	assert.ErrorIs(t, e.LastError(h), errTest)
	require.NoError(t, e.Delete(h))

	e = NewEntry(nil, func(sdk.Host) (Instance, error) { return nil, nil })
	h, err = e.Create(nil)
	assert.Error(t, err)
	e.Close()
	assert.Equal(t, 0, e.Len())
	_, ok := h.Lookup()
	assert.False(t, ok)
}

func TestEntryInitFailure(t *testing.T) {
	created := false
	e := NewEntry(
		func(string) error { return errTest },
		func(sdk.Host) (Instance, error) { created = true; return &sampleInstance{}, nil },
	)
	h, err := e.Create(nil)
	assert.ErrorIs(t, err, errTest)
	assert.False(t, created)
	e.Close()
	_, ok := h.Lookup()
	assert.False(t, ok)
}

func TestEntryIsolation(t *testing.T) {
	a := NewEntry(nil, func(sdk.Host) (Instance, error) { return &sampleInstance{}, nil })
	b := NewEntry(nil, func(sdk.Host) (Instance, error) { return &sampleInstance{}, nil })
	h, err := a.Create(nil)
	require.NoError(t, err)
	_, err = b.Message(h, sdk.ConfigCreateNew, "")
	assert.ErrorIs(t, err, sdk.ErrInvalidHandle)
	assert.ErrorIs(t, b.Delete(h), sdk.ErrInvalidHandle)
	a.Close()
}

func TestRegisteredEntry(t *testing.T) {
	assertPanic(t, func() { SetEntry(nil) })
	assertPanic(t, func() { SetHostBridge(nil) })
	assertPanic(t, func() { NewEntry(nil, nil) })

	inst := &sampleInstance{}
	SetEntry(NewEntry(nil, func(sdk.Host) (Instance, error) { return inst, nil }))
	bridged := uintptr(0)
	SetHostBridge(func(ptr uintptr) sdk.Host { bridged = ptr; return nil })

	h, rc := create(0xbeef)
	assert.Equal(t, sdk.ResultOK, rc)
	assert.Equal(t, uintptr(0xbeef), bridged)

	reply, rc := message(h, uint32(sdk.ConfigCreateNew), "a")
	assert.Equal(t, sdk.ResultOK, rc)
	assert.Equal(t, "reply:a", reply)

	_, rc = message(h, uint32(sdk.SetupSave), "")
	assert.Equal(t, sdk.ResultNotImplemented, rc)
	_, rc = message(h, uint32(sdk.ConfigUpdate), "")
	assert.Equal(t, sdk.ResultFailure, rc)
	assert.Equal(t, errTest.Error(), lastError(h))

	assert.Equal(t, sdk.ResultOK, destroy(h))
	assert.Equal(t, sdk.ResultInvalidHandle, destroy(h))
	assert.Equal(t, sdk.ResultInvalidHandle, destroy(handle.Handle(0)))
}
