package internal

import (
	"iter"
	"slices"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterKeysLookup yields each key in order, paired with its value from lookup.
// Keys missing from lookup are skipped.
func IterKeysLookup[K comparable, V any](keys []K, lookup map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key := range slices.Values(keys) {
			val, ok := lookup[key]
			if !ok {
				continue
			}
			if !yield(key, val) {
				return
			}
		}
	}
}
