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

// Reduce folds fn left-to-right over start and every vector the iterator
// yields: all full vectors in order, then the padded tail from NextPartial
// with def filling the unused lanes. An empty sequence returns start.
//
// The per-lane contents of the result are width-dependent whenever the tail
// is non-empty: hosts with different lane widths split the same sequence
// differently. Interpret the accumulator through a lane-independent
// horizontal reduction (lanes.ReduceSum and friends) rather than by lane
// position.
func Reduce[T lanes.Lane, A any](it Iterator[T], start A, def lanes.Vec[T], fn func(A, lanes.Vec[T]) A) A {
	acc := start
	for {
		v, ok := it.NextVector()
		if !ok {
			break
		}
		acc = fn(acc, v)
	}
	if v, ok := it.NextPartial(def); ok {
		acc = fn(acc, v)
		// A productive partial pins the cursor at the end, so a second one
		// means the iterator broke the one-partial-per-pass contract.
		if _, again := it.NextPartial(def); again {
			panic("packed: iterator yielded a second partial vector in one pass")
		}
	}
	return acc
}
