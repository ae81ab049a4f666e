package tease

// Pair is a positional 2-tuple, the element type produced by seq.Zip and
// consumed by seq.Unzip.
type Pair[A, B any] struct {
	First  A
	Second B
}

func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}
