// Copyright 2025 go-packed Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package packed

import "github.com/ajroetker/go-packed/lanes"

// Mapped is an Iterator that applies a vector transform to every chunk an
// inner iterator yields. It has no cursor of its own; length and position
// delegate to the inner iterator, since the transform never changes the
// element count.
type Mapped[In, Out lanes.Lane] struct {
	inner Iterator[In]
	fn    func(lanes.Vec[In]) lanes.Vec[Out]
}

// Map wraps it with a per-vector transform. Nothing is evaluated until the
// result is stepped; Map calls compose without limit.
//
// For the drains to reproduce the sequence exactly, In and Out must have
// the same lane count (the same scalar size); with differing sizes the
// stage widths disagree and only manual stepping is meaningful.
func Map[In, Out lanes.Lane](it Iterator[In], fn func(lanes.Vec[In]) lanes.Vec[Out]) *Mapped[In, Out] {
	return &Mapped[In, Out]{inner: it, fn: fn}
}

// Width returns the vector width of the transform's output type.
func (m *Mapped[In, Out]) Width() int {
	return lanes.MaxLanes[Out]()
}

// ScalarLen reports the inner iterator's length unchanged.
func (m *Mapped[In, Out]) ScalarLen() int {
	return m.inner.ScalarLen()
}

// ScalarPosition reports the inner iterator's position unchanged.
func (m *Mapped[In, Out]) ScalarPosition() int {
	return m.inner.ScalarPosition()
}

// NextVector pulls a full vector from the inner iterator and transforms it.
func (m *Mapped[In, Out]) NextVector() (lanes.Vec[Out], bool) {
	v, ok := m.inner.NextVector()
	if !ok {
		return lanes.Vec[Out]{}, false
	}
	return m.fn(v), true
}

// NextPartial pulls the inner tail and transforms it. The inner iterator is
// handed its own zero vector as padding, not the caller's def: def has the
// output scalar type and cannot be translated back across the transform.
// Padding lanes of the result are therefore the transform of zero lanes.
func (m *Mapped[In, Out]) NextPartial(def lanes.Vec[Out]) (lanes.Vec[Out], bool) {
	v, ok := m.inner.NextPartial(lanes.Zero[In]())
	if !ok {
		return lanes.Vec[Out]{}, false
	}
	return m.fn(v), true
}

// Next consumes one inner scalar and runs it through the same vector
// transform: the scalar is broadcast to a full vector, transformed, and the
// result coalesced back down to one scalar. This lets leftover elements and
// element-at-a-time consumers share the kernel written for vectors.
func (m *Mapped[In, Out]) Next() (Out, bool) {
	s, ok := m.inner.Next()
	if !ok {
		var zero Out
		return zero, false
	}
	return lanes.Coalesce(m.fn(lanes.Splat(s))), true
}
