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

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageIDTable(t *testing.T) {
	ids := MessageIDs()
	require.Len(t, ids, 11)
	for _, id := range ids {
		back, err := ParseMessageID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}
	assert.Equal(t, "ACQUISITION_PROCESS", AcquisitionProcess.String())
	assert.Equal(t, "MESSAGE(0)", MessageID(0).String())
	assert.False(t, MessageID(100).IsValid())

	_, err := ParseMessageID("ACQUISITION_PAUSE")
	assert.ErrorIs(t, err, ErrUnknownMessage)
}

func TestResultOf(t *testing.T) {
	assert.Equal(t, ResultOK, ResultOf(nil))
	assert.Equal(t, ResultFailure, ResultOf(errors.New("boom")))
	assert.Equal(t, ResultNotImplemented, ResultOf(fmt.Errorf("setup: %w", ErrNotImplemented)))
	assert.Equal(t, ResultInvalidHandle, ResultOf(ErrInvalidHandle))
}

func TestValue(t *testing.T) {
	released := 0
	v := NewValue("42", func() { released++ })
	s, err := v.Text()
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	assert.NoError(t, v.Close())
	assert.NoError(t, v.Close())
	assert.Equal(t, 1, released)

	_, err = v.Text()
	assert.ErrorIs(t, err, ErrClosed)

	assert.NoError(t, NewValue("x", nil).Close())
}
