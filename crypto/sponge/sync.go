package sponge

import "sync"

// synchronized serializes every call on the hasher it owns. It does not make
// hashing faster; it makes one stream safe to share.
type synchronized struct {
	mu sync.Mutex
	h  Hasher
}

// NewSynchronized returns a Hasher for cfg that may be used from several
// goroutines at once. Calls are applied one at a time in lock order, so
// callers that need a particular input order must coordinate it themselves.
func NewSynchronized(cfg Config) (Hasher, error) {
	h, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &synchronized{h: h}, nil
}

// NewKeccak200Synchronized returns a goroutine-safe Keccak200 Hasher.
func NewKeccak200Synchronized() Hasher {
	return &synchronized{h: NewKeccak200()}
}

func (s *synchronized) Update(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Update(p)
}

func (s *synchronized) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Write(p)
}

func (s *synchronized) Digest() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Digest()
}

func (s *synchronized) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Reset()
}

func (s *synchronized) Size() int { return s.h.Size() }

func (s *synchronized) BlockSize() int { return s.h.BlockSize() }
