package sponge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"unicode"

	"github.com/Aurorachain/go-sponge/log"
	"github.com/naoina/toml"
	"github.com/pkg/errors"
)

// Supported state widths, in bits.
const (
	Width200  = 200
	Width1600 = 1600
)

// Config selects a Keccak sponge instance.
type Config struct {
	StateWidth   int // permutation width b in bits
	Capacity     int // capacity c in bits
	OutputLength int // digest length in bytes
}

var (
	// Keccak200 is Keccak[r=32, c=168] over Keccak-f[200] with a 4 byte digest.
	Keccak200 = Config{StateWidth: Width200, Capacity: 168, OutputLength: 4}

	// Keccak1600 is Keccak[r=1344, c=256] over Keccak-f[1600] with a 32 byte
	// digest.
	Keccak1600 = Config{StateWidth: Width1600, Capacity: 256, OutputLength: 32}

	// Keccak256 is the legacy Keccak-256 used by Ethereum.
	Keccak256 = Config{StateWidth: Width1600, Capacity: 512, OutputLength: 32}

	// Keccak512 is the legacy Keccak-512.
	Keccak512 = Config{StateWidth: Width1600, Capacity: 1024, OutputLength: 64}
)

// Rate returns the number of bytes absorbed or squeezed per permutation.
func (c Config) Rate() int {
	return (c.StateWidth - c.Capacity) / 8
}

// Validate checks that c describes a byte-oriented sponge this package can
// build. The output length is not bounded by the capacity.
func (c Config) Validate() error {
	switch c.StateWidth {
	case Width200, Width1600:
	default:
		return errors.Wrapf(ErrInvalidConfiguration, "unsupported state width %d", c.StateWidth)
	}
	if c.Capacity <= 0 || c.Capacity >= c.StateWidth {
		return errors.Wrapf(ErrInvalidConfiguration, "capacity %d outside (0, %d)", c.Capacity, c.StateWidth)
	}
	if (c.StateWidth-c.Capacity)%8 != 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "rate of %d bits is not byte aligned", c.StateWidth-c.Capacity)
	}
	if c.OutputLength <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "output length %d", c.OutputLength)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("keccak[b=%d,c=%d,out=%d]", c.StateWidth, c.Capacity, c.OutputLength)
}

var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// DecodeConfig reads a TOML sponge configuration. Keys left out keep their
// Keccak1600 values.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := Keccak1600
	if err := tomlSettings.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "sponge: decode config")
	}
	if err := cfg.Validate(); err != nil {
		log.Warnf("Rejected sponge config %v: %v", cfg, err)
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML sponge configuration from file.
func LoadConfig(file string) (Config, error) {
	f, err := os.Open(file)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := DecodeConfig(bufio.NewReader(f))
	if err != nil {
		return Config{}, errors.Wrap(err, file)
	}
	log.Debugf("Loaded sponge config %v from %s", cfg, file)
	return cfg, nil
}
