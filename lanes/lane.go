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

package lanes

// GetLane extracts a single lane value from the vector.
// Returns zero value if index is out of bounds.
func GetLane[T Lane](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// InsertLane returns a new vector with the value inserted at the given lane.
// Returns the original vector if index is out of bounds.
func InsertLane[T Lane](v Vec[T], idx int, val T) Vec[T] {
	n := len(v.data)
	if idx < 0 || idx >= n {
		return v
	}
	result := make([]T, n)
	copy(result, v.data)
	result[idx] = val
	return Vec[T]{data: result}
}

// Coalesce projects a vector down to a single scalar, defined as lane 0.
//
// Its purpose is the scalar access mode of a mapped iterator: a single
// element is broadcast with Splat, transformed at vector width, and
// Coalesce recovers the one meaningful result. For any lane-wise transform
// applied to a splat input, every lane carries the same value, so lane 0
// is the deterministic projection.
func Coalesce[T Lane](v Vec[T]) T {
	return GetLane(v, 0)
}
