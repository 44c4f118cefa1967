package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envFile is the dotenv file read before environment variables are applied.
// Variables already present in the environment win over the file.
var envFile = ".env"

// parseEnv overlays Config with environment variables:
//
//	HTTP_ADDR          REST bind address
//	GRPC_ADDR          gRPC health bind address
//	DATABASE_URL       PostgreSQL DSN
//	JWT_SECRET         token signing secret (BETTER_AUTH_SECRET accepted as fallback)
//	ACCESS_TOKEN_TTL   token lifetime, Go duration ("30m") or minutes ("30")
//	BCRYPT_COST        bcrypt work factor
//	CORS_ORIGINS       comma separated origin allow-list
//	LOG_FORMAT         "slog" or "zerolog"
//	SHUTDOWN_TIMEOUT   Go duration
//
// A missing .env file is not an error; a malformed one panics, the same as
// a malformed JSON config.
func parseEnv(config *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, "HTTP_ADDR")
	setString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	setString(&config.DatabaseDSN, "DATABASE_URL")
	setString(&config.SecretKey, "BETTER_AUTH_SECRET")
	setString(&config.SecretKey, "JWT_SECRET")
	setString(&config.LogFormat, "LOG_FORMAT")

	if v, ok := lookup("ACCESS_TOKEN_TTL"); ok {
		config.AccessTokenValidityDuration = mustDuration(v, time.Minute)
	}
	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok {
		config.ShutdownTimeout = mustDuration(v, time.Second)
	}
	if v, ok := lookup("BCRYPT_COST"); ok {
		cost, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = cost
	}
	if v, ok := lookup("CORS_ORIGINS"); ok {
		config.CORSOrigins = splitOrigins(v)
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

// mustDuration accepts a Go duration string or a bare integer in unit.
func mustDuration(v string, unit time.Duration) time.Duration {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * unit
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	return d
}

// splitOrigins turns "a, b/ ,c" into ["a" "b" "c"].
func splitOrigins(v string) []string {
	var origins []string
	for _, p := range strings.Split(v, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
