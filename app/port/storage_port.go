package port

// KeyValueStore is durable client-side storage: a small namespaced
// key-value surface over a local file that survives process restarts, the
// storefront's analog of browser localStorage. Writes are synchronous; the
// session and cart stores use disjoint key namespaces and never share a
// key.
type KeyValueStore interface {
	// Get returns the stored payload and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Set writes the payload for a key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}
