package ports

// LookupCache is a keyed, time-bounded store for assembled lookup results.
// Keys are compared by exact value; no normalization is applied. Get reports
// ok=false for both absent and stale entries; values that leave the store are
// copies, never a reference to the live cached entry. Implementations must be
// safe for concurrent Get/Put and must not perform I/O.
type LookupCache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
}
