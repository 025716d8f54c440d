package utils

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	return (T(1) << bits) - T(1)
}

// Returns the number of bits set in a value
func PopCount[T constraints.Unsigned](value T) int {
	return bits.OnesCount64(uint64(value))
}

// Returns the positions of all the bits set in a value, from least to most significant
func SetBits[T constraints.Unsigned](value T) []int {
	positions := make([]int, 0, PopCount(value))

	for v := uint64(value); v != 0; v &= v - 1 {
		positions = append(positions, bits.TrailingZeros64(v))
	}

	return positions
}

// Interprets the lower n bits of a value as a two's complement integer
func SignExtend(value uint64, width int) int64 {
	if width <= 0 || width >= 64 {
		return int64(value)
	}

	shift := 64 - width
	return int64(value<<shift) >> shift
}

// Read/write access to bit ranges of an unsigned integer
type BitView[T constraints.Unsigned] struct {
	Bits *T
}

// Returns the viewed value
func (v BitView[T]) Value() T {
	return *v.Bits
}

// Returns the width bits starting at bit, shifted down to bit 0
func (v BitView[T]) Read(bit int, width int) T {
	return (*v.Bits >> bit) & AllOnes[T](width)
}

// Replaces the width bits starting at bit with the lowest bits of value. Higher bits of value are ignored
func (v BitView[T]) Write(value T, bit int, width int) {
	mask := AllOnes[T](width)
	*v.Bits = (*v.Bits &^ (mask << bit)) | ((value & mask) << bit)
}

// Creates a bit view over an unsigned integer
func CreateBitView[T constraints.Unsigned](value *T) BitView[T] {
	return BitView[T]{Bits: value}
}
