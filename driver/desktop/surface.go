// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
)

// CreateSurface creates a WebGPU rendering surface for the window,
// using the platform-appropriate native handle.
func (w *Window) CreateSurface(inst *wgpu.Instance) *wgpu.Surface {
	return inst.CreateSurface(wgpuglfw.GetSurfaceDescriptor(w.Handle()))
}
