package sponge

import (
	"io"
	"time"

	"github.com/Aurorachain/go-sponge/common"
	"github.com/Aurorachain/go-sponge/log"
	"github.com/Aurorachain/go-sponge/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var digestTimer = metrics.NewTimer("sponge/digest")

// Hasher is the width independent digest API. A Hasher produces exactly one
// digest; Reset starts a new computation on the same instance.
type Hasher interface {
	// Write is Update in io.Writer form, so a Hasher can be the target of
	// io.Copy.
	io.Writer

	// Update absorbs p. Input may be split across any number of calls.
	Update(p []byte) error

	// Digest finalizes the sponge and returns Size() bytes. A second call
	// without Reset fails with ErrInvalidState.
	Digest() ([]byte, error)

	// Reset discards all absorbed input and any produced digest.
	Reset()

	// Size returns the digest length in bytes.
	Size() int

	// BlockSize returns the sponge rate in bytes.
	BlockSize() int
}

type hasher struct {
	cfg       Config
	core      Core
	finalized bool
}

// New returns a Hasher for cfg.
func New(cfg Config) (Hasher, error) {
	if err := cfg.Validate(); err != nil {
		log.Warnf("Rejected sponge config %v: %v", cfg, err)
		return nil, err
	}
	return newHasher(cfg), nil
}

func newHasher(cfg Config) *hasher {
	log.LDebug("Created sponge hasher",
		zap.Int("width", cfg.StateWidth), zap.Int("rate", cfg.Rate()), zap.Int("output", cfg.OutputLength))
	return &hasher{cfg: cfg, core: newCore(cfg)}
}

func (h *hasher) Size() int { return h.cfg.OutputLength }

func (h *hasher) BlockSize() int { return h.core.Rate() }

func (h *hasher) Reset() {
	h.core.Reset()
	h.finalized = false
}

func (h *hasher) Update(p []byte) error {
	if h.finalized {
		return errors.Wrap(ErrInvalidState, "update after digest")
	}
	return h.core.Absorb(p)
}

func (h *hasher) Write(p []byte) (int, error) {
	if err := h.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (h *hasher) Digest() ([]byte, error) {
	if h.finalized {
		return nil, errors.Wrap(ErrInvalidState, "digest already produced")
	}
	defer digestTimer.UpdateSince(time.Now())

	if err := h.core.Finalize(); err != nil {
		return nil, err
	}
	out := make([]byte, h.cfg.OutputLength)
	if err := h.core.Squeeze(out); err != nil {
		return nil, err
	}
	h.finalized = true

	if log.Enabled("debug") {
		log.Debugf("Sponge digest %v = %s", h.cfg, common.ToHex(out))
	}
	return out, nil
}
