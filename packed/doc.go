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

// Package packed turns a contiguous scalar sequence into a sequence of
// vector-sized chunks plus at most one ragged remainder chunk, so numeric
// kernels can be written once against lanes.Vec and run at whatever lane
// width the host dispatches.
//
// An Iterator is a cursor measured in scalars. NextVector yields only
// fully-populated vectors and is the fast path; NextPartial yields the
// remainder, padded from a caller-supplied default, at most once per pass.
// Next yields one scalar at a time over the same cursor for interop with
// element-wise consumers.
//
// Producers and combinators compose lazily:
//
//	import (
//		"github.com/ajroetker/go-packed/lanes"
//		"github.com/ajroetker/go-packed/packed"
//	)
//
//	doubled := packed.Collect(packed.Map(packed.From(data),
//		func(v lanes.Vec[float32]) lanes.Vec[float32] {
//			return lanes.Add(v, v)
//		}))
//
//	sum := lanes.ReduceSum(packed.Reduce(packed.From(data),
//		lanes.Zero[float32](), lanes.Zero[float32](), lanes.Add[float32]))
//
// Exhaustion is signaled by a false second return value and is never an
// error. Contract violations (a Fill destination shorter than the sequence,
// a second productive partial in one pass) panic with a "packed:" diagnostic;
// they indicate incorrect use, not recoverable conditions.
//
// Iterators are single-pass, single-goroutine state. Independent iterators
// over disjoint or read-only data need no coordination.
package packed
