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

package telegram

import (
	"fmt"

	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// enumTable maps enumeration values to their wire spelling and back. Tables
// are built once at package initialization and never modified.
type enumTable[T comparable] struct {
	what   string
	names  map[T]string
	values map[string]T
}

func newEnumTable[T comparable](what string, names map[T]string) enumTable[T] {
	values := make(map[string]T, len(names))
	for v, n := range names {
		values[n] = v
	}
	return enumTable[T]{what: what, names: names, values: values}
}

func (e enumTable[T]) name(v T) string {
	return e.names[v]
}

func (e enumTable[T]) parse(s string) (T, error) {
	v, ok := e.values[s]
	if !ok {
		return v, fmt.Errorf("%w: %s %q", xmlcodec.ErrInvalidValue, e.what, s)
	}
	return v, nil
}

func (e enumTable[T]) lookup(s string, dflt T) T {
	if v, ok := e.values[s]; ok {
		return v
	}
	return dflt
}
