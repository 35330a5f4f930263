package bank

// Persistent objects can be serialized to and deserialized from
// a byte slice. Stored models implement this via their protobuf
// generated code.
type Persistent interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}
