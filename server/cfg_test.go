package server

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setenv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestConfigFromEnvDefaults(t *testing.T) {
	setenv(t, ENV_PORT, "")
	setenv(t, ENV_MAX_VIEWERS, "")

	c := ConfigFromEnv()

	assert.False(t, c.Enabled())
	assert.Equal(t, DefaultConfig(), c)
}

func TestConfigFromEnv(t *testing.T) {
	setenv(t, ENV_PORT, "8081")
	setenv(t, ENV_MAX_VIEWERS, "3")

	c := ConfigFromEnv()

	assert.True(t, c.Enabled())
	assert.Equal(t, "8081", c.Port)
	assert.Equal(t, 3, c.MaxViewers)
}

func TestConfigFromEnvIgnoresBadNumbers(t *testing.T) {
	for _, raw := range []string{"many", "-2", "0"} {
		setenv(t, ENV_MAX_VIEWERS, raw)
		assert.Equal(t, DefaultConfig().MaxViewers, ConfigFromEnv().MaxViewers, raw)
	}
}
