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

import "errors"

var (
	// ErrNotImplemented is returned by plugins that do not handle a given
	// message. The host treats it as a benign answer.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidHandle is returned when the host refers to an instance
	// that does not exist.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrClosed is returned when using a host value after its release.
	ErrClosed = errors.New("host value already released")

	// ErrUnknownMessage is returned when parsing a message name that has no
	// identifier.
	ErrUnknownMessage = errors.New("unknown message")

	// ErrUnknownChannel is returned by hosts asked about a channel they
	// do not know.
	ErrUnknownChannel = errors.New("unknown channel")
)
