package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// MemoryURI selects the in-process repositories instead of MongoDB.
const MemoryURI = "memory://"

// Config holds application configuration values.
type Config struct {
	Port                   string
	MongoURI               string
	MongoDBName            string
	RedisURL               string
	JWTSecret              string
	TokenExpiry            time.Duration
	VoteLockTTL            time.Duration
	VoteMaxConflictRetries int
	CacheTTL               time.Duration
	RateLimitPerSecond     float64
	LogLevel               string
	LogFormat              string
	CORSAllowOrigins       []string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		MongoURI:               getEnv("MONGODB_URI", ""),
		MongoDBName:            getEnv("MONGODB_DB_NAME", ""),
		RedisURL:               getEnv("REDIS_URL", ""),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		TokenExpiry:            time.Hour * time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 24)),
		VoteLockTTL:            time.Millisecond * time.Duration(getEnvAsInt("VOTE_LOCK_TTL_MS", 5000)),
		VoteMaxConflictRetries: getEnvAsInt("VOTE_MAX_CONFLICT_RETRIES", 3),
		CacheTTL:               time.Second * time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)),
		RateLimitPerSecond:     getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		CORSAllowOrigins:       getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// Validate reports the first required setting that is missing.
func (c *Config) Validate() error {
	switch {
	case c.MongoURI == "":
		return errMissing("MONGODB_URI")
	case c.MongoDBName == "" && c.MongoURI != MemoryURI:
		return errMissing("MONGODB_DB_NAME")
	case c.JWTSecret == "":
		return errMissing("JWT_SECRET")
	}
	return nil
}

// UsesMemoryStore reports whether MONGODB_URI selects the in-process repositories.
func (c *Config) UsesMemoryStore() bool { return c.MongoURI == MemoryURI }

func (c *Config) GetPort() string { return c.Port }
func (c *Config) GetMongoURI() string { return c.MongoURI }
func (c *Config) GetMongoDBName() string { return c.MongoDBName }
func (c *Config) GetRedisURL() string { return c.RedisURL }
func (c *Config) GetJWTSecret() string { return c.JWTSecret }
func (c *Config) GetTokenExpiry() time.Duration { return c.TokenExpiry }
func (c *Config) GetVoteLockTTL() time.Duration { return c.VoteLockTTL }
func (c *Config) GetVoteMaxConflictRetries() int { return c.VoteMaxConflictRetries }
func (c *Config) GetCacheTTL() time.Duration { return c.CacheTTL }
func (c *Config) GetRateLimitPerSecond() float64 { return c.RateLimitPerSecond }
func (c *Config) GetLogLevel() string { return c.LogLevel }
func (c *Config) GetLogFormat() string { return c.LogFormat }
func (c *Config) GetCORSAllowOrigins() []string { return c.CORSAllowOrigins }

type missingSettingError string

func (e missingSettingError) Error() string {
	return string(e) + " environment variable not set"
}

func errMissing(key string) error { return missingSettingError(key) }

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get a comma separated environment variable as a list.
func getEnvAsList(name string, fallback []string) []string {
	valueStr := strings.TrimSpace(getEnv(name, ""))
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
