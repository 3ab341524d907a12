// Package enumerator generates the lexicographically-next distinct-value
// tuple over {0, …, M}, used by package pattern to enumerate candidate
// state-maps and symbol-maps during embedding search.
//
// What
//
//   - A tuple v[0..k) with 0 <= v[i] <= M is treated as a k-digit
//     base-(M+1) counter. Next increments it in place with carry and
//     skips (by repeated increment) any tuple containing a duplicate
//     entry, since embeddings require injective maps.
//   - Exhausted is reported when the next attempted increment carries off
//     the most-significant position.
//
// Determinism
//
//	The first Next() call after New returns the lexicographically
//	smallest distinct tuple (the all-zero tuple when k <= 1, since it has
//	no duplicates there, or the first distinct permutation otherwise).
//	The seed tuple is not treated as already emitted, so the first call
//	never skips it outright — it only advances past it when it contains
//	a duplicate.
//
// Complexity
//
//	Acceptable because k (pattern size) is much smaller than M (host
//	size) in practice; a single Next() call costs O(k) amortized, worst
//	case O(k·M) before finding a distinct tuple.
package enumerator
