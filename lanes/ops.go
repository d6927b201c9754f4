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

import "fmt"

// This file provides the portable implementations of all vector operations.
// They operate on the slice-backed Vec representation and work with any
// Lane type.

// Load creates a vector by loading data from a slice.
// If the slice holds fewer than MaxLanes[T]() elements, the remaining lanes
// are zero.
func Load[T Lane](src []T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	copy(data, src)
	return Vec[T]{data: data}
}

// LoadAt loads exactly MaxLanes[T]() contiguous scalars starting at offset.
// The caller guarantees offset+MaxLanes[T]() <= len(src); LoadAt panics
// otherwise.
func LoadAt[T Lane](src []T, offset int) Vec[T] {
	w := MaxLanes[T]()
	if offset < 0 || offset+w > len(src) {
		panic(fmt.Sprintf("lanes: LoadAt out of range: offset %d + width %d exceeds len %d", offset, w, len(src)))
	}
	data := make([]T, w)
	copy(data, src[offset:offset+w])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice, clamped to the shorter of the two.
func Store[T Lane](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// StoreAt writes all lanes of v to dst starting at offset.
// The caller guarantees offset+v.NumLanes() <= len(dst); StoreAt panics
// otherwise.
func StoreAt[T Lane](v Vec[T], dst []T, offset int) {
	if offset < 0 || offset+len(v.data) > len(dst) {
		panic(fmt.Sprintf("lanes: StoreAt out of range: offset %d + width %d exceeds len %d", offset, len(v.data), len(dst)))
	}
	copy(dst[offset:], v.data)
}

// Splat creates a vector with all lanes set to the same value.
func Splat[T Lane](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero. This is the neutral
// default used to pad partial vectors.
func Zero[T Lane]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Add performs element-wise addition.
func Add[T Lane](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lane](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lane](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs element-wise division.
func Div[T Lane](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// Min performs element-wise minimum.
func Min[T Lane](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if b.data[i] < a.data[i] {
			result[i] = b.data[i]
		} else {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max performs element-wise maximum.
func Max[T Lane](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if b.data[i] > a.data[i] {
			result[i] = b.data[i]
		} else {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lane](v Vec[T]) T {
	var sum T
	for i := 0; i < len(v.data); i++ {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lane](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < len(v.data); i++ {
		if v.data[i] < m {
			m = v.data[i]
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lane](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < len(v.data); i++ {
		if v.data[i] > m {
			m = v.data[i]
		}
	}
	return m
}
