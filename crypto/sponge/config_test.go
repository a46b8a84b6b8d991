package sponge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	for _, cfg := range []Config{Keccak200, Keccak1600, Keccak256, Keccak512} {
		assert.NoError(t, cfg.Validate(), "%v", cfg)
	}
	// The capacity/2 bound is deliberately not enforced.
	assert.NoError(t, Config{StateWidth: 200, Capacity: 168, OutputLength: 1000}.Validate())

	bad := []Config{
		{StateWidth: 800, Capacity: 256, OutputLength: 32},
		{StateWidth: 200, Capacity: 0, OutputLength: 4},
		{StateWidth: 200, Capacity: 200, OutputLength: 4},
		{StateWidth: 1600, Capacity: 1601, OutputLength: 4},
		{StateWidth: 200, Capacity: 164, OutputLength: 4},
		{StateWidth: 1600, Capacity: 256, OutputLength: 0},
	}
	for _, cfg := range bad {
		err := cfg.Validate()
		assert.Equal(t, ErrInvalidConfiguration, errors.Cause(err), "%v", cfg)

		_, err = New(cfg)
		assert.Equal(t, ErrInvalidConfiguration, errors.Cause(err), "%v", cfg)
		_, err = NewCore(cfg)
		assert.Equal(t, ErrInvalidConfiguration, errors.Cause(err), "%v", cfg)
	}
}

func TestConfigRate(t *testing.T) {
	assert.Equal(t, 4, Keccak200.Rate())
	assert.Equal(t, 168, Keccak1600.Rate())
	assert.Equal(t, "keccak[b=200,c=168,out=4]", Keccak200.String())
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader("StateWidth = 200\nCapacity = 168\nOutputLength = 4\n"))
	require.NoError(t, err)
	assert.Equal(t, Keccak200, cfg)

	cfg, err = DecodeConfig(strings.NewReader("OutputLength = 64\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{StateWidth: 1600, Capacity: 256, OutputLength: 64}, cfg)

	_, err = DecodeConfig(strings.NewReader("Rate = 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Rate' is not defined")

	_, err = DecodeConfig(strings.NewReader("StateWidth = 400\n"))
	assert.Equal(t, ErrInvalidConfiguration, errors.Cause(err))
}

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sponge.toml")
	require.NoError(t, os.WriteFile(file, []byte("Capacity = 512\n"), 0600))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, Keccak256, cfg)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, os.IsNotExist(err))
}
