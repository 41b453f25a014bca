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

package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListSetMovesToEnd(t *testing.T) {
	l := MakeList(NewInt("A", 1), NewInt("B", 2), NewInt("C", 3))
	l.Set(NewInt("B", 20))

	assert.Equal(t, []string{"A", "C", "B"}, l.Names())
	b, ok := l.Get("B")
	assert.True(t, ok)
	assert.Equal(t, int32(20), b.IntValue())
}

func TestListReplaceKeepsPosition(t *testing.T) {
	l := MakeList(NewInt("A", 1), NewInt("B", 2), NewInt("C", 3))
	assert.True(t, l.Replace(NewInt("B", 20)))
	assert.False(t, l.Replace(NewInt("D", 4)))
	assert.Equal(t, []string{"A", "B", "C"}, l.Names())
	assert.Equal(t, int32(20), l.At(1).IntValue())
}

func TestListRemove(t *testing.T) {
	l := MakeList(NewInt("A", 1), NewInt("B", 2))
	assert.True(t, l.Remove("A"))
	assert.False(t, l.Remove("A"))
	assert.False(t, l.Has("A"))
	assert.Equal(t, 1, l.Len())
	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestListCopiesAreIndependent(t *testing.T) {
	a := MakeList(NewInt("A", 1), NewInt("B", 2))
	b := a
	b.Set(NewInt("C", 3))
	a.Set(NewInt("D", 4))
	b.Replace(NewInt("A", 10))

	assert.Equal(t, []string{"A", "B", "D"}, a.Names())
	assert.Equal(t, []string{"A", "B", "C"}, b.Names())
	v, _ := a.Get("A")
	assert.Equal(t, int32(1), v.IntValue())
}

func TestListEqualIsOrdered(t *testing.T) {
	a := MakeList(NewInt("A", 1), NewInt("B", 2))
	b := MakeList(NewInt("B", 2), NewInt("A", 1))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a.Clone()))
}

func TestListSetPanicsOnEmptyName(t *testing.T) {
	var l List
	assert.Panics(t, func() { l.Set(NewInt("", 1)) })
}
