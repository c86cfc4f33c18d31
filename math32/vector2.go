// Copyright (c) 2024, The winit-window Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the small amount of float32 vector math
// needed for window coordinates and cursor deltas, as wrappers around
// github.com/chewxy/math32 optimized scalar implementations.
package math32

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector2 is a 2D vector or point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetZero sets all components of this vector to zero.
func (v *Vector2) SetZero() {
	v.Set(0, 0)
}

// Add adds the other given vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// DivScalar divides each component of this vector by the given scalar
// and returns the result.
func (v Vector2) DivScalar(s float32) Vector2 {
	return Vector2{v.X / s, v.Y / s}
}

// Floor returns this vector with [math32.Floor] applied to each component.
func (v Vector2) Floor() Vector2 {
	return Vector2{math32.Floor(v.X), math32.Floor(v.Y)}
}

// Round returns this vector with [math32.Round] applied to each component.
func (v Vector2) Round() Vector2 {
	return Vector2{math32.Round(v.X), math32.Round(v.Y)}
}
