// Package lanes provides the scalar/vector binding the packed iteration
// engine runs on: a portable fixed-width vector handle with load, store,
// splat, per-lane access, and horizontal reductions.
//
// The vector width is chosen once at startup from the CPU's register width
// (see CurrentWidth) and is uniform for the life of the process. All
// operations are pure Go over a slice-backed representation; the width only
// controls how many scalars travel together.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-packed/lanes"
//
//	v := lanes.LoadAt(data, 0)
//	v = lanes.Add(v, lanes.Splat(float32(1)))
//	lanes.StoreAt(v, out, 0)
package lanes

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lane is a constraint for all types that can occupy a vector lane.
type Lane interface {
	Floats | Integers
}

// Vec is a portable vector of MaxLanes[T]() scalars.
//
// Vec instances should not be created directly; use LoadAt, Load, Splat,
// or Zero instead. The zero Vec has no lanes and is only valid as the
// "absent" result of an exhausted step.
type Vec[T Lane] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice, clamped to the shorter of the two.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}
