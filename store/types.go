package store

import (
	"github.com/iov-one/bank"
)

// Store interfaces are declared on the root package. Aliases are
// provided here so store implementations and their tests do not need
// to import the root package under a different name.
type (
	ReadOnlyKVStore  = bank.ReadOnlyKVStore
	KVStore          = bank.KVStore
	SetDeleter       = bank.SetDeleter
	Batch            = bank.Batch
	Iterator         = bank.Iterator
	CacheableKVStore = bank.CacheableKVStore
	KVCacheWrap      = bank.KVCacheWrap
)

// Model groups a key/value pair, used when materializing iterators.
type Model struct {
	Key   []byte
	Value []byte
}
