// Package memzero wipes buffers that held passphrases, keys or plaintext.
package memzero

import "github.com/awnumar/memguard"

// Zero overwrites b with zeros. Nil and empty buffers are ignored.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	memguard.WipeBytes(b)
}
