package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePort(t *testing.T) {
	assert.Equal(t, ":3000", normalizePort(""))
	assert.Equal(t, ":8080", normalizePort("8080"))
	assert.Equal(t, ":9090", normalizePort(":9090"))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("LS_TEST_STRING", "  value ")
	t.Setenv("LS_TEST_INT", "7")
	t.Setenv("LS_TEST_BAD_INT", "seven")
	t.Setenv("LS_TEST_FLOAT", "2.5")
	t.Setenv("LS_TEST_DURATION", "45s")
	t.Setenv("LS_TEST_BAD_DURATION", "soon")

	assert.Equal(t, "value", envString("LS_TEST_STRING", "def"))
	assert.Equal(t, "def", envString("LS_TEST_MISSING", "def"))
	assert.Equal(t, 7, envInt("LS_TEST_INT", 1))
	assert.Equal(t, 1, envInt("LS_TEST_BAD_INT", 1))
	assert.InDelta(t, 2.5, envFloat("LS_TEST_FLOAT", 0), 0.0001)
	assert.Equal(t, 45*time.Second, envDuration("LS_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, envDuration("LS_TEST_BAD_DURATION", time.Second))
}

func TestDBConfigDSN(t *testing.T) {
	cfg := &DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "leads", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=leads port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}

func TestInitLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	require.NoError(t, InitLogger(&AppConfig{Name: "test", Env: "development"}))

	t.Setenv("LOG_LEVEL", "loud")
	assert.Error(t, InitLogger(&AppConfig{Name: "test", Env: "production"}))
}
