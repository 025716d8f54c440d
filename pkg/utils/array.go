package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Generates a sequence of n elements given a generation function
func Iota[T any](n int, gen func(int) T) []T {
	values := make([]T, n)

	for i := range values {
		values[i] = gen(i)
	}

	return values
}

// Returns a sequence of n indices
func Indices(n int) []int {
	return Iota(n, func(i int) int { return i })
}

// Returns the items of a sequence that satisfy a predicate
func Filter[T any](input []T, predicate func(T) bool) []T {
	output := make([]T, 0, len(input))

	for _, value := range input {
		if predicate(value) {
			output = append(output, value)
		}
	}

	return output
}

// Returns true if any item of the sequence satisfies the predicate
func Any[T any](input []T, predicate func(T) bool) bool {
	for _, value := range input {
		if predicate(value) {
			return true
		}
	}

	return false
}

// Reduces a sequence to a value given an accumulation function
func Reduce[T any, U any](input []T, foldFunc func(T, U) U) U {
	var result U

	for _, value := range input {
		result = foldFunc(value, result)
	}

	return result
}

// Returns a sorted copy of a sequence
func Sorted[T constraints.Ordered](input []T) []T {
	output := append([]T(nil), input...)
	sort.Slice(output, func(i, j int) bool { return output[i] < output[j] })
	return output
}
