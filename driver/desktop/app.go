// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the window contract on desktop platforms
// using glfw.
package desktop

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw event processing must run on the main OS thread
	runtime.LockOSThread()
}

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes glfw. It is called automatically by [NewWindow];
// calling it again is a no-op. It must be called from the main thread.
func Init() error {
	initOnce.Do(func() {
		if err := glfw.Init(); err != nil {
			initErr = fmt.Errorf("desktop: failed to initialize glfw: %w", err)
		}
	})
	return initErr
}

// Terminate shuts down glfw. Call as the last thing before exiting,
// from the main thread.
func Terminate() {
	glfw.Terminate()
}

// SendEmptyEvent posts an empty, blank event to the platform loop,
// which has the effect of waking a blocking [window.Window.WaitEvent]
// pump when the event loop needs to be pinged to get things moving.
// It is safe to call from any thread.
func SendEmptyEvent() {
	glfw.PostEmptyEvent()
}
