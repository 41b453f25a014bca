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

import (
	"errors"
	"fmt"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/plugins"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"go.uber.org/zap"
)

var (
	errNotRunning = errors.New("acquisition not started")
	errNoHost     = errors.New("instance has no host")

	errNoExportResponse = errors.New("export validation returned no response")
)

// Software is implemented by plugin authors to define the behavior of a
// software channel.
type Software interface {
	// Create creates the output channels for a creation request of the
	// host, with inst.Channels() empty on entry. It is invoked again with
	// the saved request when a setup is loaded.
	Create(inst *Instance, req *telegram.CreateChannelsTelegram) error
	//
	// Process computes the output samples for one window of input data.
	Process(ctx *ProcessContext) error
}

// ConfigListener is optionally implemented by Software to react to
// configuration changes, for instance by updating the data format of a
// channel or by adding or removing channels.
type ConfigListener interface {
	ConfigChanged(inst *Instance, ch *PluginChannel, names []string) error
}

// AcquisitionPreparer is optionally implemented by Software to allocate
// processing state before an acquisition.
type AcquisitionPreparer interface {
	PrepareAcquisition(inst *Instance) error
}

// AcquisitionStarter is optionally implemented by Software.
type AcquisitionStarter interface {
	StartAcquisition(inst *Instance) error
}

// AcquisitionStopper is optionally implemented by Software.
type AcquisitionStopper interface {
	StopAcquisition(inst *Instance) error
}

// ExportValidator is optionally implemented by export plugins.
type ExportValidator interface {
	ValidateExport(inst *Instance, export *telegram.ExportProperties) (*telegram.ValidateExportSettingsResponse, error)
}

// Exporter is optionally implemented by export plugins.
type Exporter interface {
	Export(inst *Instance, req *telegram.StartExportTelegram) error
}

type acquisitionState int

const (
	stateIdle acquisitionState = iota
	statePrepared
	stateRunning
)

// Instance is the plugins.Instance of a software channel. It decodes the
// host messages, maintains the output channels and their configuration,
// and calls the Software at each step.
type Instance struct {
	plugins.BaseLastError
	host     sdk.Host
	sw       Software
	logger   *zap.Logger
	metrics  *instanceMetrics
	channels *PluginChannels
	created  *telegram.CreateChannelsTelegram
	state    acquisitionState
}

// Option configures an Instance.
type Option func(*Instance)

// WithLogger sets the logger of the instance.
func WithLogger(l *zap.Logger) Option {
	return func(i *Instance) {
		i.logger = l
	}
}

// WithMetricFactory sets the factory of the instance metrics.
func WithMetricFactory(f sdk.MetricFactory) Option {
	return func(i *Instance) {
		i.metrics = newInstanceMetrics(f)
	}
}

// NewInstance returns an instance running sw against host.
func NewInstance(host sdk.Host, sw Software, options ...Option) *Instance {
	if sw == nil {
		panic("oxygen-sdk-go/sdk/plugins/softwarechannel.NewInstance: sw must not be nil")
	}
	i := &Instance{
		host:    host,
		sw:      sw,
		logger:  zap.NewNop(),
		created: &telegram.CreateChannelsTelegram{},
	}
	for _, opt := range options {
		opt(i)
	}
	if i.metrics == nil {
		i.metrics = newInstanceMetrics(&sdk.DiscardMetricFactory{})
	}
	i.channels = newPluginChannels(&countingWriter{host: host, samples: i.metrics.samples})
	return i
}

func (i *Instance) Host() sdk.Host { return i.host }

func (i *Instance) Logger() *zap.Logger { return i.logger }

func (i *Instance) Channels() *PluginChannels { return i.channels }

func (i *Instance) Software() Software { return i.sw }

// Running returns true between ACQUISITION_START and ACQUISITION_STOP.
func (i *Instance) Running() bool { return i.state == stateRunning }

// AddMarkers asks the host to place markers.
func (i *Instance) AddMarkers(markers ...telegram.Marker) error {
	if i.host == nil {
		return errNoHost
	}
	return i.host.Send(&telegram.AddMarkersTelegram{Markers: markers})
}

// Synchronize publishes the output channels and their configuration to
// the host. The framework calls it after every configuration message.
func (i *Instance) Synchronize() error {
	if i.host == nil {
		return errNoHost
	}
	i.metrics.channels.Set(float64(i.channels.Len()))
	return i.channels.Synchronize(i.host)
}

// Destroy forwards to the Software if it implements sdk.Destroyer.
func (i *Instance) Destroy() {
	if d, ok := i.sw.(sdk.Destroyer); ok {
		d.Destroy()
	}
}

// HandleMessage implements plugins.Instance.
func (i *Instance) HandleMessage(id sdk.MessageID, data string) (reply string, err error) {
	labels := sdk.Labels{"msg": id.String()}
	i.metrics.messages.Add(labels, 1)
	defer func() {
		if err != nil && !errors.Is(err, sdk.ErrNotImplemented) {
			i.metrics.failures.Add(labels, 1)
			i.logger.Warn("message failed", zap.Stringer("msg", id), zap.Error(err))
		}
	}()
	i.logger.Debug("message", zap.Stringer("msg", id), zap.Int("len", len(data)))

	switch id {
	case sdk.ConfigCreateNew:
		return "", i.createNew(data)
	case sdk.ConfigItemChanged:
		return "", i.itemChanged(data)
	case sdk.ConfigUpdate:
		return "", i.configUpdate(data)
	case sdk.SetupSave:
		return generateSetup(i.created, i.channels)
	case sdk.SetupLoad:
		return "", i.loadSetup(data)
	case sdk.AcquisitionInit:
		return "", i.prepare()
	case sdk.AcquisitionStart:
		return "", i.start()
	case sdk.AcquisitionProcess:
		return "", i.process(data)
	case sdk.AcquisitionStop:
		return "", i.stop()
	case sdk.ValidateExportSettings:
		return i.validateExport(data)
	case sdk.StartExport:
		return "", i.startExport(data)
	}
	return "", fmt.Errorf("%s: %w", id, sdk.ErrNotImplemented)
}

func (i *Instance) createNew(data string) error {
	req := &telegram.CreateChannelsTelegram{}
	if data != "" {
		if err := req.Parse(data); err != nil {
			return err
		}
	}
	if err := i.create(req); err != nil {
		return err
	}
	return i.Synchronize()
}

func (i *Instance) create(req *telegram.CreateChannelsTelegram) error {
	i.channels.Clear()
	if err := i.sw.Create(i, req); err != nil {
		i.channels.Clear()
		return err
	}
	i.created = req
	i.logger.Info("channels created",
		zap.Int("inputs", len(req.Inputs)),
		zap.Int("outputs", i.channels.Len()))
	return nil
}

func (i *Instance) itemChanged(data string) error {
	var t telegram.ChannelConfigChangedTelegram
	if err := t.Parse(data); err != nil {
		return err
	}
	ch, ok := i.channels.Channel(t.LocalID)
	if !ok {
		return fmt.Errorf("%w: local id %d", sdk.ErrUnknownChannel, t.LocalID)
	}
	if err := i.applyChanges(ch, t.Changes); err != nil {
		return err
	}
	return i.Synchronize()
}

func (i *Instance) configUpdate(data string) error {
	var t telegram.UpdateConfigTelegram
	if err := t.Parse(data); err != nil {
		return err
	}
	if err := i.applyConfig(&t); err != nil {
		return err
	}
	return i.Synchronize()
}

func (i *Instance) applyConfig(t *telegram.UpdateConfigTelegram) error {
	for _, id := range t.ChannelIDs() {
		ch, ok := i.channels.Channel(id)
		if !ok {
			i.logger.Warn("configuration for unknown channel ignored", zap.Uint32("local_id", uint32(id)))
			continue
		}
		cfg, _ := t.Channel(id)
		if err := i.applyChanges(ch, cfg.Properties); err != nil {
			return err
		}
	}
	return nil
}

func (i *Instance) applyChanges(ch *PluginChannel, changes property.List) error {
	changed, unknown, err := ch.apply(changes)
	for _, name := range unknown {
		i.logger.Warn("unknown configuration item ignored",
			zap.Uint32("local_id", uint32(ch.LocalID())),
			zap.String("name", name))
	}
	if err != nil {
		return err
	}
	if l, ok := i.sw.(ConfigListener); ok && len(changed) > 0 {
		return l.ConfigChanged(i, ch, changed)
	}
	return nil
}

func (i *Instance) loadSetup(data string) error {
	create, configs, err := parseSetup(data)
	if err != nil {
		return err
	}
	if err := i.create(create); err != nil {
		return err
	}
	if err := i.applyConfig(configs); err != nil {
		return err
	}
	return i.Synchronize()
}

func (i *Instance) prepare() error {
	for _, ch := range i.channels.Channels() {
		if r := ch.Resampler(); r != nil {
			r.Reset()
		}
	}
	if p, ok := i.sw.(AcquisitionPreparer); ok {
		if err := p.PrepareAcquisition(i); err != nil {
			return err
		}
	}
	i.state = statePrepared
	return nil
}

func (i *Instance) start() error {
	if i.state == stateIdle {
		if err := i.prepare(); err != nil {
			return err
		}
	}
	if s, ok := i.sw.(AcquisitionStarter); ok {
		if err := s.StartAcquisition(i); err != nil {
			return err
		}
	}
	i.state = stateRunning
	return nil
}

func (i *Instance) process(data string) error {
	if i.state != stateRunning {
		return errNotRunning
	}
	var t telegram.AcquisitionTaskProcessTelegram
	if err := t.Parse(data); err != nil {
		return err
	}
	i.metrics.windows.Add(1)
	return i.sw.Process(newProcessContext(i, t.Start, t.End))
}

func (i *Instance) stop() error {
	if i.state == stateIdle {
		return nil
	}
	i.state = stateIdle
	if s, ok := i.sw.(AcquisitionStopper); ok {
		return s.StopAcquisition(i)
	}
	return nil
}

func (i *Instance) validateExport(data string) (string, error) {
	v, ok := i.sw.(ExportValidator)
	if !ok {
		return "", fmt.Errorf("%s: %w", sdk.ValidateExportSettings, sdk.ErrNotImplemented)
	}
	var t telegram.ValidateExportSettingsTelegram
	if err := t.Parse(data); err != nil {
		return "", err
	}
	res, err := v.ValidateExport(i, &t.Export)
	if err != nil {
		return "", err
	}
	if res == nil {
		return "", errNoExportResponse
	}
	return res.Generate()
}

func (i *Instance) startExport(data string) error {
	e, ok := i.sw.(Exporter)
	if !ok {
		return fmt.Errorf("%s: %w", sdk.StartExport, sdk.ErrNotImplemented)
	}
	var t telegram.StartExportTelegram
	if err := t.Parse(data); err != nil {
		return err
	}
	return e.Export(i, &t)
}
