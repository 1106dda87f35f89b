package usecasecontract

import "time"

// IConfigProvider exposes application settings to the inner layers.
type IConfigProvider interface {
	GetPort() string
	GetMongoURI() string
	GetMongoDBName() string
	GetRedisURL() string
	GetJWTSecret() string
	GetTokenExpiry() time.Duration
	GetVoteLockTTL() time.Duration
	GetVoteMaxConflictRetries() int
	GetCacheTTL() time.Duration
	GetRateLimitPerSecond() float64
	GetLogLevel() string
	GetLogFormat() string
	GetCORSAllowOrigins() []string
}
