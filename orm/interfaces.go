package orm

import (
	"github.com/iov-one/bank"
)

// Model is implemented by any value that can be validated and stored
// in a bucket.
type Model interface {
	bank.Persistent
	// Validate returns an error if the value is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error
	// Copy returns an independent copy of this value.
	Copy() Model
}

// Object is what is stored in the bucket.
// Key is joined with the bucket prefix to form the full db key.
//
// This is usually a light wrapper around a protobuf-defined type.
type Object interface {
	Keyed
	Cloneable
	// Validate returns an error if the object is not in a valid
	// state to save to the db.
	Validate() error
	Value() bank.Persistent
}

// Keyed is anything that can identify itself
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable will create a new object that can be loaded into
type Cloneable interface {
	Clone() Object
}
