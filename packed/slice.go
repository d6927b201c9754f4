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

import (
	"fmt"

	"github.com/ajroetker/go-packed/lanes"
)

// Slice is an Iterator over a contiguous scalar buffer. It borrows the
// buffer; it never copies or owns the underlying memory.
type Slice[T lanes.Lane] struct {
	data []T
	pos  int
}

// From wraps an existing slice in a packed iterator without copying.
// The iterator reads the slice; mutating the slice mid-pass is the
// caller's concern.
func From[T lanes.Lane](s []T) *Slice[T] {
	return &Slice[T]{data: s}
}

// Of builds a packed iterator that owns the given values.
func Of[T lanes.Lane](vals ...T) *Slice[T] {
	return &Slice[T]{data: vals}
}

// Width returns the vector width for T at the current lane width.
func (s *Slice[T]) Width() int {
	return lanes.MaxLanes[T]()
}

// ScalarLen returns the length of the underlying buffer.
func (s *Slice[T]) ScalarLen() int {
	return len(s.data)
}

// ScalarPosition returns the number of scalars consumed so far.
func (s *Slice[T]) ScalarPosition() int {
	return s.pos
}

// NextVector loads the next full vector from the buffer, or returns false
// if fewer than Width() elements remain.
func (s *Slice[T]) NextVector() (lanes.Vec[T], bool) {
	w := lanes.MaxLanes[T]()
	if s.pos+w > len(s.data) {
		return lanes.Vec[T]{}, false
	}
	v := lanes.LoadAt(s.data, s.pos)
	s.pos += w
	return v, true
}

// NextPartial packs the remaining tail elements into lanes 0..remaining
// and fills the rest of the vector from the corresponding lanes of def,
// then moves the cursor to the end.
//
// It must only be reached with less than a full vector remaining; callers
// drain NextVector first. More leftover than Width() cannot be represented
// in one vector, and silently dropping elements is worse than stopping, so
// that case panics.
func (s *Slice[T]) NextPartial(def lanes.Vec[T]) (lanes.Vec[T], bool) {
	remaining := len(s.data) - s.pos
	if remaining <= 0 {
		return lanes.Vec[T]{}, false
	}
	w := lanes.MaxLanes[T]()
	if remaining >= w {
		panic(fmt.Sprintf("packed: NextPartial with %d scalars remaining at width %d; drain NextVector first", remaining, w))
	}
	ret := lanes.Load(def.Data())
	for i := 0; i < remaining; i++ {
		ret = lanes.InsertLane(ret, i, s.data[s.pos+i])
	}
	s.pos = len(s.data)
	return ret, true
}

// Next returns the next single scalar, sharing the cursor with the vector
// operations.
func (s *Slice[T]) Next() (T, bool) {
	if s.pos >= len(s.data) {
		var zero T
		return zero, false
	}
	v := s.data[s.pos]
	s.pos++
	return v, true
}
