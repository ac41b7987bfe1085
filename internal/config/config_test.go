package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-nixiechain/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		Name   string
		Mutate func(*config.Config)
	}{
		{"no tubes", func(c *config.Config) { c.Tubes = 0 }},
		{"negative baud", func(c *config.Config) { c.BaudRate = -1 }},
		{"negative settle", func(c *config.Config) { c.SettleMs = -1 }},
		{"brightness too high", func(c *config.Config) { c.Brightness = 256 }},
		{"red negative", func(c *config.Config) { c.Color.Red = -1 }},
		{"blue too high", func(c *config.Config) { c.Color.Blue = 999 }},
	}

	for _, v := range cases {
		t.Run(v.Name, func(t *testing.T) {
			c := config.Default()
			v.Mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := config.Default()
	want.Port = "/dev/ttyUSB0"
	want.Tubes = 6
	want.Brightness = 200
	want.Color = config.Color{Red: 1, Green: 2, Blue: 3}

	require.NoError(t, config.Save(path, want))
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
