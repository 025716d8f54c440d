package utils

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Generates a sequence constructed by applying a function to all elements of a given input sequence
func Map[T any, U any](input []T, mapFunction func(T) U) []U {
	output := make([]U, len(input))

	for i := range input {
		output[i] = mapFunction(input[i])
	}

	return output
}

// Returns an array with all the keys of a map
func Keys[Key comparable, Value any](input map[Key]Value) []Key {
	keys := make([]Key, 0, len(input))

	for key := range input {
		keys = append(keys, key)
	}

	return keys
}

// Returns the keys of a map in ascending order
func SortedKeys[Key constraints.Ordered, Value any](input map[Key]Value) []Key {
	return Sorted(Keys(input))
}

// Iterates the entries of a map in ascending key order
func SortedEntries[Key constraints.Ordered, Value any](input map[Key]Value) iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		for _, key := range SortedKeys(input) {
			if !yield(key, input[key]) {
				return
			}
		}
	}
}
