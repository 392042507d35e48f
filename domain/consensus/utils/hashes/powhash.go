// Package hashes provides the proof-of-work hash function: the digest that
// the mining and validation pipelines compute over serialized header bytes
// and that the difficulty engine interprets numerically.
package hashes

import (
	"hash"

	"github.com/4everaerial/chainweb-node/domain/consensus/utils/hashnum"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2s"
)

// DigestSize is the size in bytes of a proof-of-work digest.
const DigestSize = blake2s.Size

// PowHash returns the Blake2s-256 digest of the given serialized header
// bytes.
func PowHash(headerBytes []byte) [DigestSize]byte {
	return blake2s.Sum256(headerBytes)
}

// PowHashNum returns the numeric interpretation of the proof-of-work digest
// of the given serialized header bytes: the value checked against the
// block's target.
func PowHashNum(headerBytes []byte) hashnum.HashNum {
	return hashnum.FromBytes(PowHash(headerBytes))
}

// NewPowHashWriter returns a hash.Hash that computes the proof-of-work
// digest incrementally, for callers that serialize headers field by field.
func NewPowHashWriter() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		// blake2s.New256 fails only for invalid key lengths; nil is valid.
		panic(errors.Wrap(err, "failed creating pow hash writer"))
	}
	return h
}
