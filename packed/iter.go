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

// Iterator is a cursor over a scalar sequence that yields the elements
// grouped into fixed-width vectors.
//
// The cursor position is measured in scalars, never rewinds, and advances
// by exactly Width() on a successful NextVector, by one on a successful
// Next, and jumps to ScalarLen() on a productive NextPartial.
//
// This is the minimal surface a producer must implement; Map, Reduce,
// Collect, and Fill are built from it alone.
type Iterator[T lanes.Lane] interface {
	// Width returns the vector width of this stage in scalars. It is
	// derived from the lane type, not stored state.
	Width() int

	// ScalarLen returns the total number of scalars this iterator will
	// ever yield, fixed for its lifetime.
	ScalarLen() int

	// ScalarPosition returns the number of scalars already consumed,
	// between 0 and ScalarLen().
	ScalarPosition() int

	// NextVector returns the next Width() elements packed into a vector,
	// advancing the cursor, but only if that many elements remain.
	// Otherwise it returns false and leaves the cursor unchanged.
	NextVector() (lanes.Vec[T], bool)

	// NextPartial returns the remaining tail elements in lanes
	// 0..remaining, with the higher lanes taken from the corresponding
	// lanes of def, and moves the cursor to the end. Once the cursor is
	// at the end it returns false, so at most one call per pass is
	// productive and repeated calls are harmless.
	NextPartial(def lanes.Vec[T]) (lanes.Vec[T], bool)

	// Next returns one scalar and advances the cursor by one. It shares
	// the cursor with the vector operations, so it can drain whatever a
	// NextVector loop left behind.
	Next() (T, bool)
}
