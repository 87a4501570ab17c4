// Package memzero overwrites secret material in place.
package memzero

import "runtime"

// Zero clears b. The KeepAlive stops the compiler from treating the writes
// as dead stores when b is not read again.
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}

// Zero32 clears a fixed-size key.
func Zero32(a *[32]byte) {
	if a == nil {
		return
	}
	Zero(a[:])
}
