// Package sponge implements the Keccak sponge construction over the
// Keccak-f[200] and Keccak-f[1600] permutations, with a single-use digest
// API and a mutex-guarded variant for sharing one hasher between goroutines.
package sponge

import (
	"github.com/Aurorachain/go-sponge/crypto/keccak"
	"github.com/Aurorachain/go-sponge/metrics"
	"github.com/pkg/errors"
)

var (
	permutationCounter = metrics.NewCounter("sponge/permutations")
	absorbMeter        = metrics.NewMeter("sponge/absorbed")
	squeezeMeter       = metrics.NewMeter("sponge/squeezed")
)

// Core drives the absorb, pad and squeeze phases of one sponge. It is not
// safe for concurrent use.
type Core interface {
	// Absorb feeds p into the sponge. It fails with ErrInvalidState once
	// the sponge has been finalized.
	Absorb(p []byte) error

	// Finalize pads the buffered tail, absorbs it and switches to squeezing.
	Finalize() error

	// Squeeze fills out with output bytes, permuting as often as needed.
	Squeeze(out []byte) error

	// Rate is the block size in bytes.
	Rate() int

	// Reset returns the sponge to an empty absorbing state.
	Reset()
}

type spongeDirection int

const (
	spongeAbsorbing spongeDirection = iota
	spongeSqueezing
)

// maxRate bounds the rate of any supported configuration, in bytes.
const maxRate = Width1600 / 8

type core[L keccak.Lane] struct {
	a       [25]L
	permute func(*[25]L)
	lane    int // lane size in bytes
	rate    int

	// buf aliases storage. While absorbing it holds the pending input,
	// while squeezing it holds the unread part of the current output block.
	buf     []byte
	storage [maxRate]byte

	state spongeDirection
}

// NewCore returns the sponge core for cfg.
func NewCore(cfg Config) (Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newCore(cfg), nil
}

func newCore(cfg Config) Core {
	if cfg.StateWidth == Width200 {
		return newGenericCore(keccak.F200, cfg.Rate())
	}
	return newGenericCore(keccak.F1600, cfg.Rate())
}

func newGenericCore[L keccak.Lane](permute func(*[25]L), rate int) *core[L] {
	c := &core[L]{
		permute: permute,
		lane:    int(keccak.LaneBits[L]() / 8),
		rate:    rate,
	}
	c.buf = c.storage[:0]
	return c
}

func (c *core[L]) Rate() int { return c.rate }

func (c *core[L]) Reset() {
	for i := range c.a {
		c.a[i] = 0
	}
	c.state = spongeAbsorbing
	c.buf = c.storage[:0]
}

func (c *core[L]) permuteState() {
	c.permute(&c.a)
	permutationCounter.Inc(1)
}

func (c *core[L]) Absorb(p []byte) error {
	if c.state != spongeAbsorbing {
		return errors.Wrap(ErrInvalidState, "absorb after finalize")
	}
	absorbMeter.Mark(int64(len(p)))

	for len(p) > 0 {
		if len(c.buf) == 0 && len(p) >= c.rate {
			// Whole block with nothing pending: skip the copy.
			xorIn(&c.a, p[:c.rate], c.lane)
			p = p[c.rate:]
			c.permuteState()
		} else {
			todo := c.rate - len(c.buf)
			if todo > len(p) {
				todo = len(p)
			}
			c.buf = append(c.buf, p[:todo]...)
			p = p[todo:]

			if len(c.buf) == c.rate {
				xorIn(&c.a, c.buf, c.lane)
				c.buf = c.storage[:0]
				c.permuteState()
			}
		}
	}
	return nil
}

func (c *core[L]) Finalize() error {
	if c.state != spongeAbsorbing {
		return errors.Wrap(ErrInvalidState, "finalize called twice")
	}
	block := c.storage[:c.rate]
	pad(block, len(c.buf))
	xorIn(&c.a, block, c.lane)
	c.permuteState()

	c.state = spongeSqueezing
	c.buf = c.storage[:c.rate]
	copyOut(&c.a, c.buf, c.lane)
	return nil
}

func (c *core[L]) Squeeze(out []byte) error {
	if c.state != spongeSqueezing {
		return errors.Wrap(ErrInvalidState, "squeeze before finalize")
	}
	squeezeMeter.Mark(int64(len(out)))

	for len(out) > 0 {
		if len(c.buf) == 0 {
			c.permuteState()
			c.buf = c.storage[:c.rate]
			copyOut(&c.a, c.buf, c.lane)
		}
		n := copy(out, c.buf)
		c.buf = c.buf[n:]
		out = out[n:]
	}
	return nil
}
