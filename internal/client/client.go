// Package client talks to the MailChimp, MailChimp Export, STS, Partner and
// Mandrill APIs. One Client covers one API version; every remote method goes
// through Execute, which whitelists the parameters against the version's
// catalog, attaches the key and normalizes the answer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lzjever/chimpgate/internal/catalog"
	"github.com/lzjever/chimpgate/internal/core"
	"github.com/lzjever/chimpgate/internal/observability"
)

// Version is reported in the User-Agent header.
var Version = "0.4.0"

type Client struct {
	api       catalog.API
	catalog   *catalog.Catalog
	profile   profile
	key       string
	dc        string
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	timeout   time.Duration
	log       *zap.Logger
}

// New builds a client for api. The datacenter is the part of the key after
// the first dash; Mandrill keys carry none.
func New(api catalog.API, key string, opts ...Option) (*Client, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, core.ErrMissingAPIKey
	}
	cat, err := catalog.Get(api, s.version)
	if err != nil {
		return nil, err
	}
	prof, err := profileFor(api, cat.Version())
	if err != nil {
		return nil, err
	}

	c := &Client{
		api:       api,
		catalog:   cat,
		profile:   prof,
		key:       key,
		dc:        Datacenter(key),
		userAgent: "chimpgate/" + Version,
		http:      s.httpClient,
		timeout:   s.timeout,
		log:       s.logger,
	}
	if s.userAgent != "" {
		c.userAgent = s.userAgent + " " + c.userAgent
	}
	if s.limit > 0 {
		c.limiter = rate.NewLimiter(s.limit, max(s.burst, 1))
	}

	c.baseURL = s.baseURL
	if c.baseURL == "" {
		host := prof.host
		if prof.perDC {
			if c.dc == "" {
				return nil, fmt.Errorf("%s needs a key of the form <key>-<dc>: %w", api.Title(), core.ErrNoDatacenter)
			}
			host = c.dc + "." + host
		}
		scheme := "http"
		if s.secure || prof.alwaysTLS {
			scheme = "https"
		}
		c.baseURL = scheme + "://" + host
	}

	if s.proxy != "" {
		if c.http != nil {
			return nil, errors.New("a proxy cannot be combined with a caller-supplied HTTP client")
		}
		proxyURL, err := url.Parse(s.proxy)
		if err != nil {
			return nil, fmt.Errorf("parse proxy URL: %w", err)
		}
		tr := http.DefaultTransport.(*http.Transport).Clone()
		tr.Proxy = http.ProxyURL(proxyURL)
		c.http = &http.Client{Transport: tr}
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	return c, nil
}

func NewMailChimp(key string, opts ...Option) (*Client, error) { return New(catalog.MailChimp, key, opts...) }
func NewExport(key string, opts ...Option) (*Client, error)    { return New(catalog.Export, key, opts...) }
func NewSTS(key string, opts ...Option) (*Client, error)       { return New(catalog.STS, key, opts...) }
func NewMandrill(key string, opts ...Option) (*Client, error)  { return New(catalog.Mandrill, key, opts...) }
func NewPartner(key string, opts ...Option) (*Client, error)   { return New(catalog.Partner, key, opts...) }

// Datacenter extracts the datacenter suffix of a MailChimp key, "" if none.
func Datacenter(key string) string {
	parts := strings.Split(key, "-")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func (c *Client) API() catalog.API              { return c.api }
func (c *Client) Version() string               { return c.catalog.Version() }
func (c *Client) Endpoints() []catalog.Endpoint { return c.catalog.Endpoints() }
func (c *Client) BaseURL() string               { return c.baseURL }

// Execute calls method with the whitelisted subset of params and decodes the
// answer into out. out may be nil, a *json.RawMessage or anything
// json.Unmarshal accepts.
func (c *Client) Execute(ctx context.Context, method string, params map[string]any, out any) error {
	ep, err := c.catalog.Lookup(method)
	if err != nil {
		return err
	}
	return c.execute(ctx, ep, params, out)
}

// Call addresses a method by section and name, e.g. ("lists", "subscribe")
// on 2.0 or ("messages", "send-template") on Mandrill.
func (c *Client) Call(ctx context.Context, section, method string, params map[string]any, out any) error {
	ep, err := c.catalog.Resolve(section, method)
	if err != nil {
		return err
	}
	return c.execute(ctx, ep, params, out)
}

func (c *Client) execute(ctx context.Context, ep catalog.Endpoint, params map[string]any, out any) (err error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	log := observability.CallLogger(c.log, string(c.api), c.Version(), ep.Method)
	start := time.Now()
	observability.UpstreamInflight.Inc()
	defer func() {
		observability.UpstreamInflight.Dec()
		observability.UpstreamCallsTotal.WithLabelValues(string(c.api), c.Version(), string(core.OutcomeOf(err))).Inc()
		observability.UpstreamCallDuration.WithLabelValues(string(c.api), c.Version()).Observe(time.Since(start).Seconds())
		if err != nil {
			log.Debug("remote call failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		} else {
			log.Debug("remote call", zap.Duration("duration", time.Since(start)))
		}
	}()

	fields := []field{{name: c.profile.keyParam, value: c.key}}
	for _, name := range ep.Params {
		if name == c.profile.keyParam {
			continue
		}
		if v, ok := params[name]; ok && v != nil {
			fields = append(fields, field{name: name, value: v})
		}
	}
	wr, err := c.profile.build(c.Version(), ep.Method, fields)
	if err != nil {
		return err
	}

	if c.limiter != nil {
		waitStart := time.Now()
		if err := c.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("rate limiter wait: %w", ctxErr)
			}
			// the limiter refuses up front when the wait would pass the deadline
			return fmt.Errorf("rate limiter wait: %w: %w", core.ErrRateLimited, err)
		}
		observability.RateLimitWaitSeconds.Observe(time.Since(waitStart).Seconds())
	}

	var body io.Reader
	if wr.body != nil {
		body = bytes.NewReader(wr.body)
	}
	req, err := http.NewRequestWithContext(ctx, wr.method, c.baseURL+wr.path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if wr.contentType != "" {
		req.Header.Set("Content-Type", wr.contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{API: c.api, Err: err}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{API: c.api, Err: err}
	}

	result, err := c.profile.decode(ep.Method, resp.StatusCode, raw)
	if err != nil {
		var apiErr *core.APIError
		if errors.As(err, &apiErr) {
			apiErr.Status = resp.StatusCode
			return apiErr
		}
		return &DecodeError{API: c.api, Status: resp.StatusCode, Body: raw, Err: err}
	}
	if err := deliver(result, out); err != nil {
		return &DecodeError{API: c.api, Status: resp.StatusCode, Body: raw, Err: err}
	}
	return nil
}

func deliver(raw json.RawMessage, out any) error {
	switch o := out.(type) {
	case nil:
		return nil
	case *json.RawMessage:
		*o = append((*o)[:0], raw...)
		return nil
	}
	return json.Unmarshal(raw, out)
}
