package bank

// ReadOnlyKVStore is a simple interface to read data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	// CONTRACT: No writes may happen within a domain while an iterator
	// exists over it.
	Iterator(start, end []byte) (Iterator, error)
}

// KVStore is a simple interface to get/set data.
//
// For simplicity, we require all backing stores to implement this
// interface. They *may* implement other methods as well, but
// at least these are required.
type KVStore interface {
	ReadOnlyKVStore

	// Set sets the key. Panics on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte) error
}

// SetDeleter is a minimal interface for writing,
// used by batches to apply changes.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Batch groups writes to be applied to a store together.
type Batch interface {
	SetDeleter
	// Write applies all stored operations.
	Write() error
}

// Iterator allows us to access a set of items within a range of keys.
//
//   var itr Iterator = ...
//   defer itr.Release()
//
//   for k, v, err := itr.Next(); err == nil; k, v, err = itr.Next() {
//     // ...
//   }
type Iterator interface {
	// Next fetches the next key/value pair, or returns
	// errors.ErrIteratorDone when the domain is exhausted.
	Next() (key, value []byte, err error)

	// Release frees all resources held by the iterator.
	Release()
}

// CacheableKVStore is a KVStore that supports CacheWrap.
//
// CacheWrap() should not return a Committer, since Commit() on
// cache-wraps make no sense.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap maintains a scratch-pad of uncommitted data that is
// visible to all reads through it.
//
// At the end, call Write to flush the cached data down, or Discard to
// drop it.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data
	Discard()
}
