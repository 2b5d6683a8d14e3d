// Package freq holds the frequency map and the three operations applied to
// it: counting one source, merging independently produced maps, and ranking
// the aggregate.
//
// Count touches no shared state, so per-source counting can run on any number
// of goroutines. Merge sums per key and is associative and commutative, so
// the order in which sources finish never changes the result. Rank breaks
// count ties by ascending byte-wise token order, which makes output
// reproducible across runs.
package freq
