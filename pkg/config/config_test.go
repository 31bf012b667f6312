package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "Asia/Manila", cfg.App.Timezone)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "dashboard", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.Timeout())
	assert.False(t, cfg.Redis.Enabled(), "sin REDIS_URL ni REDIS_ADDRESS no hay publicador")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_EnvSobrescribe(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("REDIS_ADDRESS", "localhost:6379")
	v.Set("MONGODB_TIMEOUT_SECONDS", "nope")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 10, cfg.Mongo.TimeoutSeconds, "un entero inválido cae al valor por defecto")
}

func TestFromViper_MongoURIVacio(t *testing.T) {
	v := viper.New()
	v.Set("MONGODB_URI", "")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestAppConfig_LocationInvalidaUsaUTC(t *testing.T) {
	assert.Equal(t, time.UTC, AppConfig{Timezone: "Marte/Olympus"}.Location())
}
