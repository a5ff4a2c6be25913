package api

import "time"

type Config struct {
	HTTPAddr        string        `envconfig:"CHIMP_HTTP_ADDR" default:"0.0.0.0:8080"`
	DBDSN           string        `envconfig:"CHIMP_DB_DSN" required:"true"`
	DBMaxConns      int32         `envconfig:"CHIMP_DB_MAX_CONNS" default:"10"`
	RedisAddr       string        `envconfig:"CHIMP_REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPassword   string        `envconfig:"CHIMP_REDIS_PASSWORD"`
	RedisDB         int           `envconfig:"CHIMP_REDIS_DB" default:"0"`
	MetricsAddr     string        `envconfig:"CHIMP_METRICS_ADDR" default:"0.0.0.0:9090"`
	LogLevel        string        `envconfig:"CHIMP_LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"CHIMP_SHUTDOWN_TIMEOUT" default:"30s"`

	// Remote API calls
	UpstreamSecure    bool          `envconfig:"CHIMP_UPSTREAM_SECURE" default:"true"`
	UpstreamTimeout   time.Duration `envconfig:"CHIMP_UPSTREAM_TIMEOUT" default:"30s"`
	UpstreamRateLimit float64       `envconfig:"CHIMP_UPSTREAM_RATE_LIMIT" default:"10"`
	UpstreamBurst     int           `envconfig:"CHIMP_UPSTREAM_BURST" default:"10"`
	UpstreamProxy     string        `envconfig:"CHIMP_UPSTREAM_PROXY"`
	UserAgent         string        `envconfig:"CHIMP_USER_AGENT"`
	ClientCacheSize   int           `envconfig:"CHIMP_CLIENT_CACHE_SIZE" default:"256"`

	// OAuth; the routes are disabled when the client id is empty
	OAuthClientID     string        `envconfig:"CHIMP_OAUTH_CLIENT_ID"`
	OAuthClientSecret string        `envconfig:"CHIMP_OAUTH_CLIENT_SECRET"`
	OAuthRedirectURI  string        `envconfig:"CHIMP_OAUTH_REDIRECT_URI"`
	OAuthFinalURI     string        `envconfig:"CHIMP_OAUTH_FINAL_URI"`
	OAuthAllowedHosts []string      `envconfig:"CHIMP_OAUTH_ALLOWED_HOSTS"`
	OAuthStateTTL     time.Duration `envconfig:"CHIMP_OAUTH_STATE_TTL" default:"10m"`
}
