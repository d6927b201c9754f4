package lanes

import (
	"os"
	"strconv"
	"unsafe"
)

// Level represents the vector register class the width was derived from.
type Level int

const (
	// LevelScalar indicates no SIMD registers were detected; the portable
	// 16-byte grouping width is used.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 registers (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 registers (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 registers (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON registers (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected register class for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the register class the lane width was derived from.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current width source.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the LANES_NO_SIMD environment variable is set.
// When set, the portable scalar width is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // 16-byte grouping even in scalar mode for consistency
}

// MaxLanes returns the number of lanes a Vec[T] holds at the current width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lane]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
