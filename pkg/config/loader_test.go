package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Redwolfer/satkit/pkg/config"
)

type testConfig struct {
	Name  string `env:"SATKIT_TEST_NAME" envDefault:"default-name"`
	Port  int    `env:"SATKIT_TEST_PORT" envDefault:"8080"`
	Debug bool   `env:"SATKIT_TEST_DEBUG" envDefault:"false"`
}

type requiredConfig struct {
	Secret string `env:"SATKIT_TEST_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "default-name", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.False(t, cfg.Debug)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("SATKIT_TEST_NAME", "from-env")
		t.Setenv("SATKIT_TEST_PORT", "9090")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer fails", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}
