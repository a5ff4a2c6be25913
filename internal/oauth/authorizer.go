// Package oauth runs the MailChimp OAuth2 authorization-code flow: the user
// is sent to the MailChimp login page, MailChimp redirects back with a code,
// the code is traded for an access token, the token for the account metadata,
// and token plus datacenter form the API key.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/lzjever/chimpgate/internal/observability"
)

type Authorizer struct {
	cfg    Config
	oauth2 *oauth2.Config
	http   *http.Client
	log    *zap.Logger

	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int

	settleOnce sync.Once
	settled    chan struct{}
	final      Result
	finalErr   error

	inflight sync.WaitGroup
}

func New(cfg Config) (*Authorizer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	base := cfg.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}
	ua := "chimpgate"
	if cfg.UserAgent != "" {
		ua = cfg.UserAgent
	}
	httpClient := &http.Client{
		Transport:     &userAgentTransport{base: transportOf(base), ua: ua},
		CheckRedirect: base.CheckRedirect,
		Jar:           base.Jar,
		Timeout:       base.Timeout,
	}

	a := &Authorizer{
		cfg:  cfg,
		http: httpClient,
		log:  cfg.Logger,
		oauth2: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.redirectURI(),
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthorizeURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		subs:    make(map[int]chan Event),
		settled: make(chan struct{}),
	}
	return a, nil
}

// RedirectURI is the callback address sent to MailChimp, port included when
// AddPort is set.
func (a *Authorizer) RedirectURI() string { return a.oauth2.RedirectURL }

// AuthorizeURL is the MailChimp login page the user has to visit. state is
// optional and echoed back on the redirect.
func (a *Authorizer) AuthorizeURL(state string) string {
	return a.oauth2.AuthCodeURL(state)
}

// Subscribe delivers every subsequent event to the returned channel until
// cancel is called. A subscriber that falls more than buffer events behind
// loses events.
func (a *Authorizer) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.subs[id] = ch
	a.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subs, id)
			a.mu.Unlock()
			close(ch)
		})
	}
}

func (a *Authorizer) emit(ev Event) {
	observability.OAuthEventsTotal.WithLabelValues(string(ev.Type)).Inc()
	if ev.Type == EventError {
		a.log.Warn("oauth flow error", zap.String("error", ev.Err.Error()))
	} else {
		a.log.Debug("oauth event", zap.String("event", string(ev.Type)))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, ch := range a.subs {
		select {
		case ch <- ev:
		default:
			a.log.Warn("oauth subscriber too slow, event dropped", zap.String("event", string(ev.Type)))
		}
	}
}

func (a *Authorizer) fail(res Result, msg string, cause error) *FlowError {
	ferr := &FlowError{Message: msg, Params: res.Params, Err: cause}
	a.emit(Event{Type: EventError, Result: res, Err: ferr})
	return ferr
}

func (a *Authorizer) settle(res Result, err error) {
	a.settleOnce.Do(func() {
		a.final, a.finalErr = res, err
		close(a.settled)
	})
}

// Wait blocks until the first flow that received a code either authed or
// failed. Requests rejected by the listener do not end the wait.
func (a *Authorizer) Wait(ctx context.Context) (Result, error) {
	select {
	case <-a.settled:
		return a.final, a.finalErr
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// HandleResponse is the entry point for callers serving the redirect URI
// themselves: params is the query of the redirect.
func (a *Authorizer) HandleResponse(ctx context.Context, params map[string]string) (Result, error) {
	res := Result{Params: params}
	if _, ok := params["code"]; !ok {
		return res, a.fail(res, msgNoCode, nil)
	}
	a.emit(Event{Type: EventReceivedCode, Result: res})
	return a.Exchange(ctx, params)
}

// Exchange trades the code in params for an access token, then the token for
// the account metadata, emitting an event after each step.
func (a *Authorizer) Exchange(ctx context.Context, params map[string]string) (res Result, err error) {
	start := time.Now()
	defer func() {
		observability.OAuthExchangeDuration.Observe(time.Since(start).Seconds())
		a.settle(res, err)
	}()

	res = Result{Params: params}
	if params["code"] == "" {
		return res, a.fail(res, msgCodeRequired, nil)
	}

	res.AccessToken, err = a.accessToken(ctx, res)
	if err != nil {
		return res, err
	}
	a.emit(Event{Type: EventReceivedAccessToken, Result: res})

	res.Metadata, err = a.metadata(ctx, res)
	if err != nil {
		return res, err
	}
	res.APIKey = res.AccessToken + "-" + res.Metadata.DC
	a.emit(Event{Type: EventReceivedMetadata, Result: res})
	a.emit(Event{Type: EventAuthed, Result: res})
	return res, nil
}

func (a *Authorizer) accessToken(ctx context.Context, res Result) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.http)
	tok, err := a.oauth2.Exchange(ctx, res.Params["code"])
	if err != nil {
		var urlErr *url.Error
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &urlErr):
			return "", a.fail(res, msgUnreachable, err)
		case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
			return "", a.fail(res, msgTokenJSON, err)
		}
		// a rejected exchange or an answer without access_token
		return "", a.fail(res, msgNoToken, err)
	}
	if tok.AccessToken == "" {
		return "", a.fail(res, msgNoToken, nil)
	}
	return tok.AccessToken, nil
}

func (a *Authorizer) metadata(ctx context.Context, res Result) (*Metadata, error) {
	if res.AccessToken == "" {
		return nil, a.fail(res, msgTokenRequired, nil)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.MetadataURL, nil)
	if err != nil {
		return nil, a.fail(res, msgUnreachable, err)
	}
	req.Header.Set("Authorization", "OAuth "+res.AccessToken)

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, a.fail(res, msgUnreachable, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, a.fail(res, msgUnreachable, err)
	}

	var md Metadata
	if err := json.Unmarshal(body, &md); err != nil {
		return nil, a.fail(res, msgMetadataJSON, fmt.Errorf("status %d: %w", resp.StatusCode, err))
	}
	if md.DC == "" {
		return nil, a.fail(res, msgNoDatacenter, nil)
	}
	md.Raw = body
	return &md, nil
}

type userAgentTransport struct {
	base http.RoundTripper
	ua   string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.ua)
	return t.base.RoundTrip(req)
}

func transportOf(c *http.Client) http.RoundTripper {
	if c.Transport != nil {
		return c.Transport
	}
	return http.DefaultTransport
}
