// Package substrate implements the small part of the Substrate node interface the
// dashboard needs: storage key construction, SCALE decoding, SS58 addresses and
// an instrumented JSON-RPC client.
package substrate

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// Hasher names a storage map key hasher.
type Hasher int

const (
	// Blake2_128Concat prefixes the encoded key with its 16-byte blake2b hash.
	Blake2_128Concat Hasher = iota
	// Twox64Concat prefixes the encoded key with its 8-byte xxhash64.
	Twox64Concat
	// Identity uses the encoded key as is.
	Identity
)

// KeyPart is one SCALE encoded map key together with its hasher.
type KeyPart struct {
	Hasher  Hasher
	Encoded []byte
}

// Twox128 returns the 16-byte xxhash used for pallet and item prefixes.
func Twox128(data []byte) []byte {
	out := make([]byte, 16)
	for seed := uint64(0); seed < 2; seed++ {
		d := xxhash.NewWithSeed(seed)
		_, _ = d.Write(data)
		binary.LittleEndian.PutUint64(out[seed*8:], d.Sum64())
	}
	return out
}

// Twox64 returns the 8-byte xxhash64 with seed zero.
func Twox64(data []byte) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, xxhash.Sum64(data))
	return out
}

// Blake2b128 returns the 16-byte blake2b digest of data.
func Blake2b128(data []byte) []byte {
	h, _ := blake2b.New(16, nil)
	_, _ = h.Write(data)
	return h.Sum(nil)
}

// StoragePrefix returns twox128(pallet) ++ twox128(item).
func StoragePrefix(pallet, item string) []byte {
	prefix := make([]byte, 0, 32)
	prefix = append(prefix, Twox128([]byte(pallet))...)
	return append(prefix, Twox128([]byte(item))...)
}

// StorageKey builds the full key of a storage item, hashing each map key part.
func StorageKey(pallet, item string, parts ...KeyPart) []byte {
	key := StoragePrefix(pallet, item)
	for _, part := range parts {
		key = append(key, part.hash()...)
	}
	return key
}

// hashedLength is the number of hash bytes the hasher prepends to the key.
func (h Hasher) hashedLength() int {
	switch h {
	case Blake2_128Concat:
		return 16
	case Twox64Concat:
		return 8
	default:
		return 0
	}
}

func (p KeyPart) hash() []byte {
	var out []byte
	switch p.Hasher {
	case Blake2_128Concat:
		out = Blake2b128(p.Encoded)
	case Twox64Concat:
		out = Twox64(p.Encoded)
	}
	return append(out, p.Encoded...)
}

// KeySuffix strips the storage prefix and the hash of the given concat hasher
// from a full storage key, returning the raw encoded trailing key. prefixLen is
// the length of everything before the hashed part.
func KeySuffix(key []byte, prefixLen int, hasher Hasher) ([]byte, bool) {
	start := prefixLen + hasher.hashedLength()
	if len(key) < start {
		return nil, false
	}
	return key[start:], true
}

// Blake2Key is a convenience KeyPart for Blake2_128Concat hashed keys.
func Blake2Key(encoded []byte) KeyPart {
	return KeyPart{Hasher: Blake2_128Concat, Encoded: encoded}
}

// HashedKeyLength returns the number of bytes a key part occupies in a storage key.
func (p KeyPart) HashedKeyLength() int {
	return p.Hasher.hashedLength() + len(p.Encoded)
}
