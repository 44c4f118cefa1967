package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnvFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	orig := envFile
	envFile = path
	t.Cleanup(func() { envFile = orig })
}

func Test_parseEnv_FromEnvironment(t *testing.T) {
	clearEnv(t)
	withEnvFile(t, "")

	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("GRPC_ADDR", ":9001")
	t.Setenv("DATABASE_URL", "postgres://db")
	t.Setenv("BETTER_AUTH_SECRET", "fallback")
	t.Setenv("JWT_SECRET", "primary")
	t.Setenv("ACCESS_TOKEN_TTL", "45")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("CORS_ORIGINS", "https://a.example/, https://b.example ,")
	t.Setenv("LOG_FORMAT", "zerolog")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9000", cfg.EndpointAddrHTTP)
	assert.Equal(t, ":9001", cfg.EndpointAddrGRPC)
	assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
	assert.Equal(t, "primary", cfg.SecretKey, "JWT_SECRET wins over BETTER_AUTH_SECRET")
	assert.Equal(t, 45*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "zerolog", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func Test_parseEnv_SecretFallback(t *testing.T) {
	clearEnv(t)
	withEnvFile(t, "")
	t.Setenv("BETTER_AUTH_SECRET", "fallback")

	cfg := &Config{SecretKey: "default"}
	parseEnv(cfg)

	assert.Equal(t, "fallback", cfg.SecretKey)
}

func Test_parseEnv_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that already exist, and clearEnv
	// sets them to "", so unset the ones the file provides.
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	require.NoError(t, os.Unsetenv("ACCESS_TOKEN_TTL"))
	t.Cleanup(func() {
		_ = os.Unsetenv("DATABASE_URL")
		_ = os.Unsetenv("ACCESS_TOKEN_TTL")
	})
	withEnvFile(t, "DATABASE_URL=postgres://from-file\nACCESS_TOKEN_TTL=1h\n")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "postgres://from-file", cfg.DatabaseDSN)
	assert.Equal(t, time.Hour, cfg.AccessTokenValidityDuration)
}

func Test_parseEnv_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	orig := envFile
	envFile = filepath.Join(t.TempDir(), "nope.env")
	t.Cleanup(func() { envFile = orig })

	cfg := &Config{SecretKey: "keep"}
	require.NotPanics(t, func() { parseEnv(cfg) })
	assert.Equal(t, "keep", cfg.SecretKey)
}

func Test_parseEnv_BadValuesPanic(t *testing.T) {
	clearEnv(t)
	withEnvFile(t, "")

	t.Setenv("BCRYPT_COST", "lots")
	require.Panics(t, func() { parseEnv(&Config{}) })

	t.Setenv("BCRYPT_COST", "")
	t.Setenv("ACCESS_TOKEN_TTL", "forever")
	require.Panics(t, func() { parseEnv(&Config{}) })
}
