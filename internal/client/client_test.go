package client

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/lzjever/chimpgate/internal/catalog"
	"github.com/lzjever/chimpgate/internal/core"
)

type captured struct {
	method      string
	path        string
	query       string
	body        string
	contentType string
	userAgent   string
}

// fakeRemote answers every request with status and body and records the
// last request it saw.
func fakeRemote(t *testing.T, status int, body string) (*httptest.Server, *captured, *int32) {
	t.Helper()
	var last captured
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		b, _ := io.ReadAll(r.Body)
		last = captured{
			method:      r.Method,
			path:        r.URL.Path,
			query:       r.URL.RawQuery,
			body:        string(b),
			contentType: r.Header.Get("Content-Type"),
			userAgent:   r.Header.Get("User-Agent"),
		}
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &last, &hits
}

func TestNewValidation(t *testing.T) {
	_, err := NewMailChimp("")
	assert.True(t, errors.Is(err, core.ErrMissingAPIKey))

	_, err = NewMailChimp("abc-us1", WithVersion("0.9"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnsupportedVersion))
	assert.Contains(t, err.Error(), "version 0.9 of the MailChimp API is currently not supported")

	_, err = NewSTS("nodatacenter")
	assert.True(t, errors.Is(err, core.ErrNoDatacenter))

	m, err := NewMandrill("nodatacenter")
	require.NoError(t, err)
	assert.Equal(t, "https://mandrillapp.com", m.BaseURL())
}

func TestDefaultVersions(t *testing.T) {
	tests := []struct {
		newFn func(string, ...Option) (*Client, error)
		api   catalog.API
		want  string
	}{
		{NewMailChimp, catalog.MailChimp, "1.3"},
		{NewExport, catalog.Export, "1.0"},
		{NewSTS, catalog.STS, "1.0"},
		{NewMandrill, catalog.Mandrill, "1.0"},
		{NewPartner, catalog.Partner, "1.3"},
	}
	for _, tt := range tests {
		c, err := tt.newFn("abc-us1")
		require.NoError(t, err)
		assert.Equal(t, tt.api, c.API())
		assert.Equal(t, tt.want, c.Version())
		assert.NotEmpty(t, c.Endpoints())
	}
}

func TestBaseURLFromKey(t *testing.T) {
	c, err := NewMailChimp("abc-us6")
	require.NoError(t, err)
	assert.Equal(t, "https://us6.api.mailchimp.com", c.BaseURL())

	c, err = NewMailChimp("abc-us6", WithSecure(false))
	require.NoError(t, err)
	assert.Equal(t, "http://us6.api.mailchimp.com", c.BaseURL())

	c, err = NewMailChimp("abc-us6", WithVersion("2.0"), WithSecure(false))
	require.NoError(t, err)
	assert.Equal(t, "https://us6.api.mailchimp.com", c.BaseURL())

	c, err = NewSTS("abc-us2")
	require.NoError(t, err)
	assert.Equal(t, "https://us2.sts.mailchimp.com", c.BaseURL())

	c, err = NewPartner("abc-us3")
	require.NoError(t, err)
	assert.Equal(t, "https://us3.partner-api.mailchimp.com", c.BaseURL())
}

func TestDatacenter(t *testing.T) {
	assert.Equal(t, "us6", Datacenter("0123abcd-us6"))
	assert.Equal(t, "", Datacenter("0123abcd"))
}

func TestMailChimpV13WhitelistsParams(t *testing.T) {
	srv, last, _ := fakeRemote(t, http.StatusOK, `123`)
	c, err := NewMailChimp("abc-us1", WithBaseURL(srv.URL), WithUserAgent("myapp/1.0"))
	require.NoError(t, err)

	var id int
	err = c.Execute(context.Background(), "folderAdd", map[string]any{
		"name":       "foldername",
		"type":       "autoresponder",
		"superflous": "superflous",
	}, &id)
	require.NoError(t, err)
	assert.Equal(t, 123, id)

	assert.Equal(t, http.MethodPost, last.method)
	assert.Equal(t, "/1.3/", last.path)
	assert.Equal(t, "method=folderAdd", last.query)
	assert.Equal(t, "application/json", last.contentType)
	assert.Equal(t, "myapp/1.0 chimpgate/"+Version, last.userAgent)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(last.body), &sent))
	assert.Equal(t, map[string]any{"apikey": "abc-us1", "name": "foldername", "type": "autoresponder"}, sent)
}

func TestNilParamsAreDropped(t *testing.T) {
	srv, last, _ := fakeRemote(t, http.StatusOK, `123`)
	c, err := NewMailChimp("abc-us1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = c.Execute(context.Background(), "folderAdd", map[string]any{"name": "foldername", "type": nil}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"apikey":"abc-us1","name":"foldername"}`, last.body)
}

func TestMailChimpV13ErrorMember(t *testing.T) {
	srv, _, _ := fakeRemote(t, http.StatusOK, `{"error":"Invalid MailChimp List ID: 42","code":200}`)
	c, err := NewMailChimp("abc-us1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = c.Execute(context.Background(), "listMembers", map[string]any{"id": "42"}, nil)
	var apiErr *core.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid MailChimp List ID: 42", apiErr.Message)
	assert.Equal(t, "Invalid MailChimp List ID: 42 (code 200)", apiErr.Error())
	assert.Equal(t, http.StatusOK, apiErr.Status)
}

func TestMailChimpV11EncodesBody(t *testing.T) {
	srv, last, _ := fakeRemote(t, http.StatusOK, `"<p style=\"color:red\">hi</p>"`)
	c, err := NewMailChimp("abc-us1", WithVersion("1.1"), WithBaseURL(srv.URL))
	require.NoError(t, err)

	var html string
	err = c.Execute(context.Background(), "inlineCss", map[string]any{
		"html":      "<style>p{color:red}</style><p>hi</p>",
		"strip_css": true,
	}, &html)
	require.NoError(t, err)
	assert.Equal(t, `<p style="color:red">hi</p>`, html)

	assert.Equal(t, "/1.1/", last.path)
	assert.Equal(t, "output=json&method=inlineCss", last.query)
	assert.NotContains(t, last.body, "{")

	decoded, err := url.PathUnescape(last.body)
	require.NoError(t, err)
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(decoded), &sent))
	assert.Equal(t, "<style>p{color:red}</style><p>hi</p>", sent["html"])
	assert.Equal(t, true, sent["strip_css"])
}

func TestMailChimpV20CallAcceptsGzip(t *testing.T) {
	var sawGzip bool
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		sawGzip = strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		io.WriteString(gz, `{"add_count":2,"update_count":0,"error_count":0}`)
		gz.Close()
	}))
	defer srv.Close()

	c, err := NewMailChimp("abc-us1", WithVersion("2.0"), WithBaseURL(srv.URL))
	require.NoError(t, err)

	var out struct {
		AddCount int `json:"add_count"`
	}
	err = c.Call(context.Background(), "lists", "batch_subscribe", map[string]any{"id": "l1"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, out.AddCount)
	assert.Equal(t, "/2.0/lists/batch-subscribe", path)
	assert.True(t, sawGzip)
}

func TestMailChimpV20StatusError(t *testing.T) {
	srv, _, _ := fakeRemote(t, http.StatusInternalServerError,
		`{"status":"error","code":-100,"name":"ValidationError","error":"The email parameter should include an email"}`)
	c, err := NewMailChimp("abc-us1", WithVersion("2.0"), WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = c.Call(context.Background(), "helper", "ping", nil, nil)
	var apiErr *core.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ValidationError", apiErr.Name)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, json.Number("-100"), apiErr.Code)
	assert.Equal(t, core.ErrUpstream, core.Classify(err).Code)
}

func TestExportCollectsLines(t *testing.T) {
	srv, last, _ := fakeRemote(t, http.StatusOK, "[\"Email Address\",\"First Name\"]\n[\"a@example.com\",\"Ann\"]\n")
	c, err := NewExport("abc-us1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	var rows [][]string
	err = c.Execute(context.Background(), "list", map[string]any{"id": "l1", "status": "subscribed"}, &rows)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Email Address", "First Name"}, {"a@example.com", "Ann"}}, rows)

	assert.Equal(t, http.MethodGet, last.method)
	assert.Equal(t, "/export/1.0/list/", last.path)
	assert.Equal(t, "apikey=abc-us1&id=l1&status=subscribed", last.query)
}

func TestExportErrorOnFirstLine(t *testing.T) {
	srv, _, _ := fakeRemote(t, http.StatusOK, "{\"error\":\"Invalid API Key\",\"code\":104}\n")
	c, err := NewExport("abc-us1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = c.Execute(context.Background(), "list", map[string]any{"id": "l1"}, nil)
	var apiErr *core.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid API Key", apiErr.Message)
}

func TestExportEmptyActivity(t *testing.T) {
	srv, _, _ := fakeRemote(t, http.StatusOK, "")
	c, err := NewExport("abc-us1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	var raw json.RawMessage
	require.NoError(t, c.Execute(context.Background(), "campaignSubscriberActivity", map[string]any{"id": "c1"}, &raw))
	assert.JSONEq(t, `[]`, string(raw))
}

func TestSTSSendsForm(t *testing.T) {
	srv, last, _ := fakeRemote(t, http.StatusOK, `{"status":"sent","message_id":"m1"}`)
	c, err := NewSTS("abc-us1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	var out map[string]string
	err = c.Execute(context.Background(), "SendEmail", map[string]any{
		"message": map[string]any{
			"subject":  "Hi",
			"to_email": []string{"a@b.c"},
		},
		"track_opens": true,
		"tags":        nil,
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "sent", out["status"])

	assert.Equal(t, "/1.0/SendEmail", last.path)
	assert.Equal(t, "application/x-www-form-urlencoded", last.contentType)
	assert.Equal(t, "apikey=abc-us1&message[subject]=Hi&message[to_email][0]=a%40b.c&track_opens=true", last.body)
}

func TestMandrillExecute(t *testing.T) {
	srv, last, _ := fakeRemote(t, http.StatusOK, `"PONG!"`)
	c, err := NewMandrill("mandrillkey", WithBaseURL(srv.URL))
	require.NoError(t, err)

	var pong string
	require.NoError(t, c.Call(context.Background(), "users", "ping", map[string]any{"ignored": 1}, &pong))
	assert.Equal(t, "PONG!", pong)
	assert.Equal(t, "/api/1.0/users/ping", last.path)
	assert.JSONEq(t, `{"key":"mandrillkey"}`, last.body)
}

func TestMandrillError(t *testing.T) {
	srv, _, _ := fakeRemote(t, http.StatusInternalServerError,
		`{"status":"error","code":-1,"name":"Invalid_Key","message":"Invalid API key"}`)
	c, err := NewMandrill("mandrillkey", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = c.Execute(context.Background(), "users/info", nil, nil)
	var apiErr *core.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid API key", apiErr.Message)
	assert.Equal(t, "Invalid_Key", apiErr.Name)
}

func TestPartnerUsesAppKey(t *testing.T) {
	srv, last, _ := fakeRemote(t, http.StatusOK, `true`)
	c, err := NewPartner("appkey-us2", WithBaseURL(srv.URL))
	require.NoError(t, err)

	var free bool
	require.NoError(t, c.Execute(context.Background(), "checkUsername", map[string]any{"username": "ann"}, &free))
	assert.True(t, free)
	assert.Equal(t, "method=checkUsername", last.query)

	decoded, err := url.PathUnescape(last.body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"app_key":"appkey-us2","username":"ann"}`, decoded)
}

func TestUnknownMethodSendsNothing(t *testing.T) {
	srv, _, hits := fakeRemote(t, http.StatusOK, `true`)
	c, err := NewMailChimp("abc-us1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = c.Execute(context.Background(), "folderExplode", nil, nil)
	assert.True(t, errors.Is(err, core.ErrUnknownMethod))
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewMailChimp("abc-us1", WithBaseURL(base))
	require.NoError(t, err)

	err = c.Execute(context.Background(), "ping", nil, nil)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.True(t, errors.Is(err, core.ErrUnreachable))
	assert.Contains(t, err.Error(), "unable to connect to the MailChimp API endpoint")
	assert.Equal(t, core.OutcomeUnreachable, core.OutcomeOf(err))
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c, err := NewMailChimp("abc-us1", WithBaseURL(srv.URL), WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	err = c.Execute(context.Background(), "ping", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, core.ErrUpstreamTimeout, core.Classify(err).Code)
}

func TestDecodeError(t *testing.T) {
	srv, _, _ := fakeRemote(t, http.StatusBadGateway, `<html>bad gateway</html>`)
	c, err := NewMailChimp("abc-us1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = c.Execute(context.Background(), "ping", nil, nil)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, http.StatusBadGateway, de.Status)
	assert.Equal(t, "<html>bad gateway</html>", string(de.Body))
	assert.True(t, errors.Is(err, core.ErrBadResponse))
}

func TestRateLimit(t *testing.T) {
	srv, _, hits := fakeRemote(t, http.StatusOK, `"Everything's Chimpy!"`)
	c, err := NewMailChimp("abc-us1", WithBaseURL(srv.URL), WithRateLimit(rate.Every(time.Hour), 1))
	require.NoError(t, err)

	require.NoError(t, c.Execute(context.Background(), "ping", nil, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = c.Execute(ctx, "ping", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
	assert.True(t, errors.Is(err, core.ErrRateLimited))
	assert.Equal(t, core.ErrTooManyRequests, core.Classify(err).Code)
	assert.Equal(t, core.OutcomeRateLimited, core.OutcomeOf(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	err = c.Execute(cancelled, "ping", nil, nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, core.ErrRateLimited))
}

func TestProxy(t *testing.T) {
	var host, path string
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, path = r.Host, r.URL.Path
		io.WriteString(w, `"Everything's Chimpy!"`)
	}))
	defer proxy.Close()

	c, err := NewMailChimp("abc-us1", WithSecure(false), WithProxy(proxy.URL))
	require.NoError(t, err)

	var pong string
	require.NoError(t, c.Execute(context.Background(), "ping", nil, &pong))
	assert.Equal(t, "Everything's Chimpy!", pong)
	assert.Equal(t, "us1.api.mailchimp.com", host)
	assert.Equal(t, "/1.3/", path)

	_, err = NewMailChimp("abc-us1", WithProxy(proxy.URL), WithHTTPClient(http.DefaultClient))
	assert.Error(t, err)
}
