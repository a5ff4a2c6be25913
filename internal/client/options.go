package client

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Option func(*settings)

type settings struct {
	version    string
	secure     bool
	userAgent  string
	httpClient *http.Client
	baseURL    string
	proxy      string
	logger     *zap.Logger
	limit      rate.Limit
	burst      int
	timeout    time.Duration
}

func defaultSettings() settings {
	return settings{secure: true, logger: zap.NewNop()}
}

// WithVersion selects the remote API version; empty keeps the default.
func WithVersion(v string) Option {
	return func(s *settings) { s.version = strings.TrimSpace(v) }
}

// WithSecure switches between https on 443 and plain http on 80. The 2.0 API
// ignores it and always uses https.
func WithSecure(secure bool) Option {
	return func(s *settings) { s.secure = secure }
}

// WithUserAgent prefixes the library's own User-Agent token.
func WithUserAgent(ua string) Option {
	return func(s *settings) { s.userAgent = strings.TrimSpace(ua) }
}

func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithBaseURL replaces the host derived from the API key, e.g. for a test
// server or a recording proxy.
func WithBaseURL(u string) Option {
	return func(s *settings) { s.baseURL = strings.TrimRight(u, "/") }
}

// WithProxy routes requests through an HTTP proxy.
func WithProxy(proxyURL string) Option {
	return func(s *settings) { s.proxy = proxyURL }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRateLimit caps outgoing calls with a token bucket shared by every
// goroutine using the client.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(s *settings) {
		s.limit = r
		s.burst = burst
	}
}

// WithTimeout bounds each call, rate limiter wait included.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}
