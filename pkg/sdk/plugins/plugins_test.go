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

package plugins

import (
	"errors"
	"testing"

	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/symbols/info"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testUUID = uuid.MustParse("3b7a4c52-8f1e-4d1a-9d7e-55a1c0b9e001")

type testInstance struct {
	BaseLastError
}

func (t *testInstance) HandleMessage(id sdk.MessageID, data string) (string, error) {
	return id.String(), nil
}

type testPlugin struct {
	BasePlugin
	info   Info
	config string
}

func (p *testPlugin) Info() *Info { return &p.info }

func (p *testPlugin) Init(config string) error {
	p.config = config
	return nil
}

func (p *testPlugin) CreateInstance(sdk.Host) (Instance, error) {
	if p.config == "fail" {
		return nil, errors.New("cannot create")
	}
	return &testInstance{}, nil
}

func newTestPlugin() *testPlugin {
	return &testPlugin{info: Info{
		Name:        "test",
		UUID:        testUUID,
		Version:     "1.2.0",
		Description: "test <plugin>",
		Vendor:      "ACME",
		Service: &telegram.RegisterSoftwareChannelTelegram{
			ServiceName:        "test.service",
			DisplayName:        "Test",
			AcquisitionCapable: true,
		},
	}}
}

func TestBaseLastError(t *testing.T) {
	b := BaseLastError{}
	value := errors.New("test error")
	b.SetLastError(value)
	if b.LastError() != value {
		t.Errorf("LastError: value does not match")
	}
}

func TestBaseLoggerAndMetrics(t *testing.T) {
	p := &BasePlugin{}
	require.NotNil(t, p.Logger())
	assert.IsType(t, &sdk.DiscardMetricFactory{}, p.MetricFactory())

	l := zap.NewExample()
	p.SetLogger(l)
	assert.Same(t, l, p.Logger())

	var _ Logged = p
	var _ Measured = p
}

func TestInfoValidate(t *testing.T) {
	assert.NoError(t, newTestPlugin().Info().Validate())

	err := (&Info{}).Validate()
	assert.ErrorIs(t, err, errNoName)
	assert.ErrorIs(t, err, errNoUUID)
	assert.ErrorIs(t, err, errNoVersion)

	i := newTestPlugin().info
	i.Service.ServiceName = ""
	assert.Error(t, i.Validate())
}

func TestManifest(t *testing.T) {
	i := newTestPlugin().Info()
	m, err := i.Manifest()
	require.NoError(t, err)
	assert.Contains(t, m, `uuid="3b7a4c52-8f1e-4d1a-9d7e-55a1c0b9e001"`)
	assert.Contains(t, m, `test &lt;plugin`)

	back, err := ParseManifest(m)
	require.NoError(t, err)
	assert.Equal(t, i, back)

	_, err = (&Info{Name: "x"}).Manifest()
	assert.Error(t, err)

	_, err = ParseManifest(`<PluginManifest uuid="nope"><Name>a</Name><Version>1</Version></PluginManifest>`)
	assert.ErrorIs(t, err, xmlcodec.ErrInvalidValue)
	_, err = ParseManifest(`<PluginManifest uuid="3b7a4c52-8f1e-4d1a-9d7e-55a1c0b9e001"><Version>1</Version></PluginManifest>`)
	assert.ErrorIs(t, err, xmlcodec.ErrMissingElement)
}

func TestEntry(t *testing.T) {
	p := newTestPlugin()
	e := NewEntry(p)
	require.NoError(t, e.Init("cfg"))
	assert.Equal(t, "cfg", p.config)

	h, err := e.Create(nil)
	require.NoError(t, err)
	reply, err := e.Message(h, sdk.AcquisitionInit, "")
	require.NoError(t, err)
	assert.Equal(t, "ACQUISITION_INIT", reply)
	e.Close()

	p = newTestPlugin()
	e = NewEntry(p)
	require.NoError(t, e.Init("fail"))
	h, err = e.Create(nil)
	assert.EqualError(t, err, "cannot create")
	assert.EqualError(t, e.LastError(h), "cannot create")
	e.Close()
}

func TestRegister(t *testing.T) {
	p := newTestPlugin()
	Register(p)
	assert.Equal(t, "test", info.Name())
	back, err := ParseManifest(info.Manifest())
	require.NoError(t, err)
	assert.Equal(t, testUUID, back.UUID)

	assert.Panics(t, func() { Register(p) })
}
