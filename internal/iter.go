// Package internal holds helpers shared by the bfvm packages.
package internal

import (
	"iter"
)

// IterSeqConcat yields every value of each sequence in turn, stopping
// early if the consumer stops.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}
