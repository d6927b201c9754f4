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

// Collect drains the iterator into a freshly allocated slice of exactly
// ScalarLen() elements, in order: full vectors are stored at vector width,
// then the leftover elements one scalar at a time over the same cursor.
//
// The destination starts zeroed and every slot is overwritten before the
// slice is returned; no position is ever readable before it is written.
func Collect[T lanes.Lane](it Iterator[T]) []T {
	out := make([]T, it.ScalarLen())
	drain(it, out)
	return out
}

// Fill drains the iterator into dst with the same loop as Collect and
// returns dst. The destination must hold at least ScalarLen() scalars;
// a shorter one is a caller bug and panics immediately rather than
// truncating the sequence.
func Fill[T lanes.Lane](it Iterator[T], dst []T) []T {
	if len(dst) < it.ScalarLen() {
		panic(fmt.Sprintf("packed: Fill destination holds %d scalars, iterator yields %d", len(dst), it.ScalarLen()))
	}
	drain(it, dst)
	return dst
}

func drain[T lanes.Lane](it Iterator[T], dst []T) {
	offset := 0
	w := it.Width()
	for {
		v, ok := it.NextVector()
		if !ok {
			break
		}
		lanes.StoreAt(v, dst, offset)
		offset += w
	}
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		dst[offset] = s
		offset++
	}
}
