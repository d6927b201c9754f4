//go:build !amd64 && !arm64

package lanes

func init() {
	// Other architectures use the portable 16-byte grouping width.
	// Future implementations can add:
	// - wasm: SIMD128 sizing
	// - riscv64: Vector extension sizing
	setScalarMode()
}
