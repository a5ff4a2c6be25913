package oauth

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPort         = 8100
	DefaultAuthorizeURL = "https://login.mailchimp.com/oauth2/authorize"
	DefaultTokenURL     = "https://login.mailchimp.com/oauth2/token"
	DefaultMetadataURL  = "https://login.mailchimp.com/oauth2/metadata"
)

type Config struct {
	ClientID     string
	ClientSecret string
	// RedirectURI is where MailChimp sends the user back to; it must be
	// reachable from the outside. AddPort appends ":<Port>" to it.
	RedirectURI string
	AddPort     bool
	Port        int

	// FinalURI is where the listener sends the browser once a code arrived.
	// Empty answers 204.
	FinalURI string

	// ValidateState, when set, is asked by the listener about the state of
	// every redirect before the code is exchanged. A non-nil error answers
	// 400 and leaves the flow waiting.
	ValidateState func(ctx context.Context, state string) error

	TLSCertFile string
	TLSKeyFile  string

	AuthorizeURL string
	TokenURL     string
	MetadataURL  string

	UserAgent       string
	HTTPClient      *http.Client
	ExchangeTimeout time.Duration
	Logger          *zap.Logger
}

func (c *Config) validate() error {
	switch {
	case c.ClientID == "":
		return errors.New("you have to specify the client id for this to work")
	case c.ClientSecret == "":
		return errors.New("you have to specify the client secret for this to work")
	case c.RedirectURI == "":
		return errors.New("you have to specify a uri for this server as MailChimp needs to reach it from the outside")
	case (c.TLSCertFile == "") != (c.TLSKeyFile == ""):
		return errors.New("you have to specify the complete TLS credentials, key and certificate, for this to work")
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.AuthorizeURL == "" {
		c.AuthorizeURL = DefaultAuthorizeURL
	}
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if c.MetadataURL == "" {
		c.MetadataURL = DefaultMetadataURL
	}
	if c.ExchangeTimeout == 0 {
		c.ExchangeTimeout = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

func (c *Config) redirectURI() string {
	if c.AddPort {
		return c.RedirectURI + ":" + strconv.Itoa(c.Port)
	}
	return c.RedirectURI
}
