package sponge

import (
	"io"

	"github.com/pkg/errors"
)

// NewKeccak200 returns a Hasher for the Keccak200 configuration.
func NewKeccak200() Hasher { return newHasher(Keccak200) }

// NewKeccak1600 returns a Hasher for the Keccak1600 configuration.
func NewKeccak1600() Hasher { return newHasher(Keccak1600) }

// NewKeccak256 returns a legacy Keccak-256 Hasher.
func NewKeccak256() Hasher { return newHasher(Keccak256) }

// NewKeccak512 returns a legacy Keccak-512 Hasher.
func NewKeccak512() Hasher { return newHasher(Keccak512) }

func sum(h Hasher, data []byte, digest []byte) {
	// Fresh preset hashers cannot fail.
	h.Update(data)
	out, _ := h.Digest()
	copy(digest, out)
}

func Sum200(data []byte) (digest [4]byte) {
	sum(NewKeccak200(), data, digest[:])
	return
}

func Sum1600(data []byte) (digest [32]byte) {
	sum(NewKeccak1600(), data, digest[:])
	return
}

func Sum256(data []byte) (digest [32]byte) {
	sum(NewKeccak256(), data, digest[:])
	return
}

func Sum512(data []byte) (digest [64]byte) {
	sum(NewKeccak512(), data, digest[:])
	return
}

// SumReader hashes everything read from r until EOF.
func SumReader(cfg Config, r io.Reader) ([]byte, error) {
	h, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, errors.Wrap(err, "sponge: read input")
	}
	return h.Digest()
}
