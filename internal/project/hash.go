package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest - фиксированный 256 битный хеш.
type Digest [32]byte

// HashBytes hashes raw content.
func HashBytes(b []byte) Digest { return sha256.Sum256(b) }

// HashString hashes s, used for option fingerprints.
func HashString(s string) Digest { return sha256.Sum256([]byte(s)) }

// Combine строит составной хеш: H( content || part1 || part2 ... ).
// Порядок parts важен.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Hex returns the lowercase hex form of d.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

// IsZero reports whether d is the zero digest.
func (d Digest) IsZero() bool { return d == Digest{} }
