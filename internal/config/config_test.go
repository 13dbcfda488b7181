package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("METALCALC_KEY_RATE", "")
		t.Setenv("METALCALC_LAYOUT", "")
		t.Setenv("METALCALC_LOG_LEVEL", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "", cfg.KeyRate)
		assert.Equal(t, "%r ref", cfg.Layout)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("METALCALC_KEY_RATE", " key=50-51ref ")
		t.Setenv("METALCALC_LAYOUT", "%R ref %C rec")
		t.Setenv("METALCALC_LOG_LEVEL", "DEBUG")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "key=50-51ref", cfg.KeyRate)
		assert.Equal(t, "%R ref %C rec", cfg.Layout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("error", func(t *testing.T) {
		t.Setenv("METALCALC_LOG_LEVEL", "loud")

		_, err := Load()
		assert.ErrorContains(t, err, "invalid log level")
	})
}

func TestConfig_LevelOption(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		opt, err := (&Config{LogLevel: lvl}).LevelOption()
		assert.NoError(t, err, lvl)
		assert.NotNil(t, opt, lvl)
	}
	_, err := (&Config{LogLevel: "trace"}).LevelOption()
	assert.Error(t, err)
}
