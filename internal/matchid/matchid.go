// Package matchid generates short sortable identifiers for correlating match
// logs and serialized snapshots.
package matchid

import (
	"crypto/rand"
	"time"
)

// Crockford's base32 alphabet, lowercased.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New returns a 16-character id: a millisecond timestamp prefix so ids sort
// by creation time, followed by random entropy.
func New() string {
	var id [16]byte

	ms := uint64(time.Now().UnixMilli())
	for i := 8; i >= 0; i-- {
		id[i] = alphabet[ms&0x1f]
		ms >>= 5
	}

	var entropy [7]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		panic("matchid: read entropy: " + err.Error())
	}
	for i, b := range entropy {
		id[9+i] = alphabet[int(b)&0x1f]
	}
	return string(id[:])
}
