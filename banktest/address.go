package banktest

import (
	"crypto/rand"
	"fmt"

	"github.com/iov-one/bank"
)

// NewCondition returns a new, unique test condition.
func NewCondition() bank.Condition {
	data := make([]byte, 8)
	if _, err := rand.Read(data); err != nil {
		panic(fmt.Sprintf("cannot read random data: %s", err))
	}
	return bank.NewCondition("test", "rnd", data)
}

// NewAddress returns a new, unique test address.
func NewAddress() bank.Address {
	return NewCondition().Address()
}
