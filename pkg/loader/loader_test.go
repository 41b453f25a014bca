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

package loader

import (
	"errors"
	"testing"

	"github.com/dewetron/oxygen-sdk-go/pkg/handle"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/plugins"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testSchema = `{
	"type": "object",
	"properties": {
		"gain": {"type": "number"}
	},
	"required": ["gain"]
}`

type testPlugin struct {
	plugins.BasePlugin
	info      plugins.Info
	config    string
	initErr   error
	createErr error
	created   int
	destroyed bool
}

func newTestPlugin(name string) *testPlugin {
	return &testPlugin{info: plugins.Info{
		Name:    name,
		UUID:    uuid.New(),
		Version: "1.2.3",
		Vendor:  "Test",
	}}
}

func (p *testPlugin) Info() *plugins.Info { return &p.info }

func (p *testPlugin) Init(config string) error {
	p.config = config
	return p.initErr
}

func (p *testPlugin) CreateInstance(host sdk.Host) (plugins.Instance, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.created++
	return &echoInstance{}, nil
}

func (p *testPlugin) Destroy() { p.destroyed = true }

// echoInstance replies to SETUP_SAVE with the last data it received and
// fails on ACQUISITION_PROCESS.
type echoInstance struct {
	plugins.BaseLastError
	last      string
	destroyed bool
}

func (e *echoInstance) HandleMessage(id sdk.MessageID, data string) (string, error) {
	switch id {
	case sdk.SetupLoad:
		e.last = data
		return "", nil
	case sdk.SetupSave:
		return e.last, nil
	case sdk.AcquisitionProcess:
		return "", errors.New("boom")
	}
	return "", sdk.ErrNotImplemented
}

func (e *echoInstance) Destroy() { e.destroyed = true }

func TestLoadValidation(t *testing.T) {
	p := newTestPlugin("")
	_, err := Load(p)
	assert.Error(t, err)

	lp, err := NewPlugin(p)
	require.NoError(t, err)
	assert.Error(t, lp.Validate())
	assert.Equal(t, "", lp.Info().Name)
	assert.Error(t, lp.Init(""))

	p = newTestPlugin("schema")
	p.info.InitSchema = `{"type": 5}`
	_, err = Load(p)
	assert.Error(t, err)

	_, err = NewPlugin(nil)
	assert.Error(t, err)

	lp, err = Load(newTestPlugin("ok"))
	require.NoError(t, err)
	assert.Contains(t, lp.Manifest(), "<Name>ok</Name>")
}

func TestInitSchema(t *testing.T) {
	p := newTestPlugin("gain")
	p.info.InitSchema = testSchema
	lp, err := Load(p)
	require.NoError(t, err)

	assert.Error(t, lp.Init(""))
	assert.Error(t, lp.Init(`{"gain": "high"}`))
	assert.Error(t, lp.Init(`not json`))
	require.NoError(t, lp.Init(`{"gain": 2}`))
	assert.Equal(t, `{"gain": 2}`, p.config)
	assert.ErrorIs(t, lp.Init(`{"gain": 3}`), errAlreadyInitialized)

	// without a schema the config is passed as is
	p = newTestPlugin("free")
	lp, err = Load(p)
	require.NoError(t, err)
	require.NoError(t, lp.Init("anything"))
	assert.Equal(t, "anything", p.config)
}

func TestInitFailure(t *testing.T) {
	p := newTestPlugin("fail")
	p.initErr = errors.New("no license")
	lp, err := Load(p)
	require.NoError(t, err)
	err = lp.Init("")
	assert.ErrorContains(t, err, "no license")
	_, err = lp.CreateInstance(NewMemoryHost())
	assert.ErrorIs(t, err, errNotInitialized)
}

func TestInstances(t *testing.T) {
	p := newTestPlugin("echo")
	lp, err := Load(p)
	require.NoError(t, err)
	_, err = lp.CreateInstance(NewMemoryHost())
	assert.ErrorIs(t, err, errNotInitialized)
	require.NoError(t, lp.Init(""))

	before := handle.Len()
	inst, err := lp.CreateInstance(NewMemoryHost())
	require.NoError(t, err)
	assert.Equal(t, 1, lp.Instances())
	assert.Equal(t, before+1, handle.Len())
	assert.NotZero(t, inst.Handle())
	assert.NotNil(t, inst.Host())

	require.NoError(t, inst.LoadSetup("<Setup/>"))
	setup, err := inst.SaveSetup()
	require.NoError(t, err)
	assert.Equal(t, "<Setup/>", setup)

	_, err = inst.Send(sdk.ConfigUpdate, "")
	assert.ErrorIs(t, err, sdk.ErrNotImplemented)
	assert.NoError(t, inst.LastError())

	// init and start are optional
	require.NoError(t, inst.Start())
	require.NoError(t, inst.Stop())

	err = inst.Process(zeroTS(), zeroTS())
	assert.EqualError(t, err, "boom")
	assert.EqualError(t, inst.LastError(), "boom")

	require.NoError(t, inst.Close())
	assert.ErrorIs(t, inst.Close(), sdk.ErrInvalidHandle)
	assert.Equal(t, 0, lp.Instances())
	assert.Equal(t, before, handle.Len())
}

func TestCreateFailure(t *testing.T) {
	p := newTestPlugin("broken")
	p.createErr = errors.New("out of licenses")
	lp, err := Load(p)
	require.NoError(t, err)
	require.NoError(t, lp.Init(""))

	before := handle.Len()
	_, err = lp.CreateInstance(NewMemoryHost())
	assert.ErrorContains(t, err, "out of licenses")
	assert.Equal(t, 0, lp.Instances())
	assert.Equal(t, before, handle.Len())
}

func TestUnload(t *testing.T) {
	p := newTestPlugin("unload")
	lp, err := Load(p)
	require.NoError(t, err)
	require.NoError(t, lp.Init(""))
	a, err := lp.CreateInstance(NewMemoryHost())
	require.NoError(t, err)
	_, err = lp.CreateInstance(NewMemoryHost())
	require.NoError(t, err)
	assert.Equal(t, 2, p.created)

	lp.Unload()
	assert.True(t, p.destroyed)
	assert.Equal(t, 0, lp.Instances())
	_, err = a.Send(sdk.SetupSave, "")
	assert.ErrorIs(t, err, sdk.ErrInvalidHandle)
	_, err = lp.CreateInstance(NewMemoryHost())
	assert.ErrorIs(t, err, errUnloaded)
	assert.ErrorIs(t, lp.Init(""), errUnloaded)
	lp.Unload()
}

func TestOptions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := newTestPlugin("observed")
	f := sdk.NewPrometheusMetricFactory(prometheus.NewRegistry(), "test", "observed")
	lp, err := Load(p, WithLogger(zap.New(core)), WithMetricFactory(f))
	require.NoError(t, err)
	require.NoError(t, lp.Init(""))

	assert.Equal(t, f, p.MetricFactory())
	p.Logger().Info("hello")
	assert.Equal(t, 1, logs.FilterMessage("plugin initialized").Len())
	entries := logs.FilterMessage("hello").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "observed", entries[0].LoggerName)
}
