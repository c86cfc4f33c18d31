// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	q.Init()
	assert.Nil(t, q.NextEvent())

	q.Send(NewFocus(true))
	q.Send(NewClose())
	q.Send(NewFocus(false))
	assert.Equal(t, uint64(3), q.Len())

	assert.Equal(t, Focus, q.NextEvent().Type())
	assert.Equal(t, WindowClose, q.NextEvent().Type())
	assert.Equal(t, FocusLost, q.NextEvent().Type())
	assert.Nil(t, q.NextEvent())
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueReuse(t *testing.T) {
	var q Queue
	q.Init()
	for i := 0; i < 100; i++ {
		q.Send(NewIdle())
		ev := q.NextEvent()
		require.NotNil(t, ev)
		assert.Equal(t, Idle, ev.Type())
	}
	assert.Nil(t, q.NextEvent())
}
