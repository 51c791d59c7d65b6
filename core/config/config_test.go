package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commandhttp/core/config"
)

type dispatchConfig struct {
	DefaultStatus int           `env:"CONFIG_TEST_DEFAULT_STATUS" envDefault:"500"`
	Timeout       time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"5s"`
	Name          string        `env:"CONFIG_TEST_NAME"`
}

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED"`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_REQUIRED_SECRET,required"`
}

type mustConfig struct {
	Port int `env:"CONFIG_TEST_MUST_PORT" envDefault:"8080"`
}

// Tests in this file use t.Setenv and therefore do not run in parallel.

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_NAME", "commands")
	t.Setenv("CONFIG_TEST_TIMEOUT", "2s")

	var cfg dispatchConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 500, cfg.DefaultStatus)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "commands", cfg.Name)
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CONFIG_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first", first.Value)
	assert.Equal(t, first, second)
}

func TestLoadRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_TEST_REQUIRED_SECRET")
}

func TestLoadNilTarget(t *testing.T) {
	var cfg *dispatchConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilTarget)
}

func TestMustLoad(t *testing.T) {
	var cfg mustConfig
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.Equal(t, 8080, cfg.Port)

	assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })
}
