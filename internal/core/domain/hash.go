// Package domain contains the core types for the dedup engine.
package domain

import "fmt"

// ContentHash is the uppercase hex encoding of the SHA-256 digest of a
// file's byte content. Equal hashes are treated as proof of identical
// content.
type ContentHash string

// EmptyContentHash is the digest of the empty byte sequence.
const EmptyContentHash ContentHash = "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"

// NewContentHash encodes a raw SHA-256 sum.
func NewContentHash(sum []byte) ContentHash {
	return ContentHash(fmt.Sprintf("%X", sum))
}

// String returns the hex form of the hash.
func (h ContentHash) String() string {
	return string(h)
}
