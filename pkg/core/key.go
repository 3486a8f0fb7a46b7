package core

import (
	"strconv"
	"sync/atomic"
)

// Key is a process-unique identity token. The zero Key means "none".
type Key uint64

var nextKey uint64

// NewKey allocates a fresh Key.
func NewKey() Key {
	return Key(atomic.AddUint64(&nextKey, 1))
}

// IsZero reports whether k is the "none" key.
func (k Key) IsZero() bool {
	return k == 0
}

func (k Key) String() string {
	if k == 0 {
		return "Key(none)"
	}
	return "Key(" + strconv.FormatUint(uint64(k), 10) + ")"
}
