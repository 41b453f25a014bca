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
	"context"
	"errors"
	"fmt"

	"github.com/dewetron/oxygen-sdk-go/pkg/handle"
	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
	"go.uber.org/zap"
)

// Instance is a plugin instance created by a loaded Plugin.
type Instance struct {
	p      *Plugin
	h      handle.Handle
	host   *MemoryHost
	logger *zap.Logger
}

func (i *Instance) Handle() handle.Handle { return i.h }

func (i *Instance) Host() *MemoryHost { return i.host }

// Send dispatches a message to the instance and returns its reply.
func (i *Instance) Send(id sdk.MessageID, data string) (string, error) {
	reply, err := i.p.entry.Message(i.h, id, data)
	if err != nil {
		if errors.Is(err, sdk.ErrNotImplemented) {
			i.logger.Debug("message not implemented", zap.Stringer("msg", id))
		} else {
			i.logger.Warn("message failed", zap.Stringer("msg", id), zap.Error(err))
		}
		return "", err
	}
	i.logger.Debug("message", zap.Stringer("msg", id), zap.Int("reply", len(reply)))
	return reply, nil
}

// SendTelegram generates t and dispatches it as message id.
func (i *Instance) SendTelegram(id sdk.MessageID, t telegram.Telegram) (string, error) {
	doc, err := t.Generate()
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.RootName(), err)
	}
	return i.Send(id, doc)
}

// LastError returns the last error of the instance.
func (i *Instance) LastError() error {
	return i.p.entry.LastError(i.h)
}

// Create asks the instance to create its output channels for inputs.
func (i *Instance) Create(inputs ...property.ChannelID) error {
	_, err := i.SendTelegram(sdk.ConfigCreateNew, &telegram.CreateChannelsTelegram{Inputs: inputs})
	return err
}

// Configure sends a configuration update.
func (i *Instance) Configure(update *telegram.UpdateConfigTelegram) error {
	_, err := i.SendTelegram(sdk.ConfigUpdate, update)
	return err
}

// SetItem changes one configuration item of output channel local.
func (i *Instance) SetItem(local telegram.LocalID, p property.Property) error {
	_, err := i.SendTelegram(sdk.ConfigItemChanged, &telegram.ChannelConfigChangedTelegram{
		LocalID: local,
		Changes: property.MakeList(p),
	})
	return err
}

func (i *Instance) SaveSetup() (string, error) {
	return i.Send(sdk.SetupSave, "")
}

func (i *Instance) LoadSetup(setup string) error {
	_, err := i.Send(sdk.SetupLoad, setup)
	return err
}

// Start prepares and starts an acquisition.
func (i *Instance) Start() error {
	if _, err := i.Send(sdk.AcquisitionInit, ""); err != nil && !errors.Is(err, sdk.ErrNotImplemented) {
		return err
	}
	if _, err := i.Send(sdk.AcquisitionStart, ""); err != nil && !errors.Is(err, sdk.ErrNotImplemented) {
		return err
	}
	return nil
}

// Process asks the instance to process the input data of [start, end).
func (i *Instance) Process(start, end timebase.Timestamp) error {
	_, err := i.SendTelegram(sdk.AcquisitionProcess, &telegram.AcquisitionTaskProcessTelegram{Start: start, End: end})
	return err
}

func (i *Instance) Stop() error {
	_, err := i.Send(sdk.AcquisitionStop, "")
	if errors.Is(err, sdk.ErrNotImplemented) {
		return nil
	}
	return err
}

// FeedFunc appends the input data of the window [start, end) to the host.
type FeedFunc func(host *MemoryHost, start, end timebase.Timestamp) error

// Acquire runs an acquisition of n consecutive windows of the given number
// of ticks at frequency freq, starting at tick 0. Before each window, feed
// is invoked to provide its input data. The acquisition is always stopped,
// even when ctx is cancelled or a window fails.
func (i *Instance) Acquire(ctx context.Context, freq float64, ticks uint64, n int, feed FeedFunc) (err error) {
	if freq <= 0 || ticks == 0 {
		return fmt.Errorf("invalid acquisition window: %d ticks at %g Hz", ticks, freq)
	}
	if err := i.Start(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, i.Stop())
	}()
	for w := 0; w < n; w++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := timebase.Timestamp{Ticks: uint64(w) * ticks, Frequency: freq}
		end := timebase.Timestamp{Ticks: uint64(w+1) * ticks, Frequency: freq}
		if feed != nil {
			if err := feed(i.host, start, end); err != nil {
				return fmt.Errorf("window %d: %w", w, err)
			}
		}
		if err := i.Process(start, end); err != nil {
			return fmt.Errorf("window %d: %w", w, err)
		}
	}
	i.logger.Info("acquisition done", zap.Int("windows", n))
	return nil
}

// Samples returns the samples written to output channel local.
func (i *Instance) Samples(local telegram.LocalID) (Samples, bool) {
	id, ok := i.host.OutputChannelID(local)
	if !ok {
		return Samples{}, false
	}
	return i.host.Samples(id)
}

// Close deletes the instance.
func (i *Instance) Close() error {
	return i.p.release(i.h)
}
