package oauth

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

// fakeLogin imitates login.mailchimp.com. token and metadata are the raw
// answers of the two endpoints.
type fakeLogin struct {
	tokenStatus   int
	tokenBody     string
	tokenType     string
	metadataBody  string
	tokenForm     url.Values
	authorization string
	userAgent     string
}

func (f *fakeLogin) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		f.tokenForm = r.PostForm
		f.userAgent = r.Header.Get("User-Agent")
		ct := f.tokenType
		if ct == "" {
			ct = "application/json"
		}
		w.Header().Set("Content-Type", ct)
		status := f.tokenStatus
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		io.WriteString(w, f.tokenBody)
	})
	mux.HandleFunc("/oauth2/metadata", func(w http.ResponseWriter, r *http.Request) {
		f.authorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, f.metadataBody)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

const goodMetadata = `{"dc":"us6","role":"owner","accountname":"Chimp Inc","user_id":1234,"login":{"login_id":99,"login_name":"ann","login_email":"ann@example.com"},"login_url":"https://login.mailchimp.com","api_endpoint":"https://us6.api.mailchimp.com"}`

func newTestAuthorizer(t *testing.T, srv *httptest.Server, mutate func(*Config)) *Authorizer {
	t.Helper()
	cfg := Config{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RedirectURI:  "http://127.0.0.1",
		UserAgent:    "chimpgate-test",
	}
	if srv != nil {
		cfg.TokenURL = srv.URL + "/oauth2/token"
		cfg.MetadataURL = srv.URL + "/oauth2/metadata"
	}
	if mutate != nil {
		mutate(&cfg)
	}
	a, err := New(cfg)
	require.NoError(t, err)
	return a
}

func collect(t *testing.T, ch <-chan Event, until EventType) []Event {
	t.Helper()
	var got []Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-ch:
			got = append(got, ev)
			if ev.Type == until || ev.Type == EventError {
				return got
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s, got %v", until, got)
		}
	}
}

func types(events []Event) []EventType {
	out := make([]EventType, len(events))
	for i, ev := range events {
		out[i] = ev.Type
	}
	return out
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"client id", Config{ClientSecret: "s", RedirectURI: "http://x"}, "client id"},
		{"client secret", Config{ClientID: "c", RedirectURI: "http://x"}, "client secret"},
		{"redirect", Config{ClientID: "c", ClientSecret: "s"}, "MailChimp needs to reach it from the outside"},
		{"half tls", Config{ClientID: "c", ClientSecret: "s", RedirectURI: "http://x", TLSCertFile: "cert.pem"}, "TLS credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAuthorizeURL(t *testing.T) {
	a := newTestAuthorizer(t, nil, func(c *Config) {
		c.RedirectURI = "http://example.com"
		c.AddPort = true
	})
	assert.Equal(t, "http://example.com:8100", a.RedirectURI())

	u, err := url.Parse(a.AuthorizeURL(""))
	require.NoError(t, err)
	assert.Equal(t, "login.mailchimp.com", u.Host)
	assert.Equal(t, "/oauth2/authorize", u.Path)
	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "http://example.com:8100", q.Get("redirect_uri"))
	assert.False(t, q.Has("state"))

	u, err = url.Parse(a.AuthorizeURL("xyz"))
	require.NoError(t, err)
	assert.Equal(t, "xyz", u.Query().Get("state"))
}

func TestExchangeSuccess(t *testing.T) {
	login := &fakeLogin{
		tokenBody:    `{"access_token":"tok123","expires_in":0,"scope":null}`,
		metadataBody: goodMetadata,
	}
	srv := login.start(t)
	a := newTestAuthorizer(t, srv, nil)

	events, cancel := a.Subscribe(0)
	defer cancel()

	res, err := a.HandleResponse(context.Background(), map[string]string{"code": "abc", "state": "s1"})
	require.NoError(t, err)
	assert.Equal(t, "tok123", res.AccessToken)
	assert.Equal(t, "tok123-us6", res.APIKey)
	assert.Equal(t, "Chimp Inc", res.Metadata.AccountName)
	assert.Equal(t, "1234", res.Metadata.UserID.String())
	assert.Equal(t, "ann@example.com", res.Metadata.Login.LoginEmail)
	assert.Equal(t, "s1", res.Params["state"])

	got := collect(t, events, EventAuthed)
	assert.Equal(t, []EventType{EventReceivedCode, EventReceivedAccessToken, EventReceivedMetadata, EventAuthed}, types(got))
	assert.Equal(t, "tok123-us6", got[3].Result.APIKey)

	assert.Equal(t, "authorization_code", login.tokenForm.Get("grant_type"))
	assert.Equal(t, "client-1", login.tokenForm.Get("client_id"))
	assert.Equal(t, "secret-1", login.tokenForm.Get("client_secret"))
	assert.Equal(t, "abc", login.tokenForm.Get("code"))
	assert.Equal(t, "http://127.0.0.1", login.tokenForm.Get("redirect_uri"))
	assert.Equal(t, "chimpgate-test", login.userAgent)
	assert.Equal(t, "OAuth tok123", login.authorization)

	waited, err := a.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok123-us6", waited.APIKey)
}

func TestExchangeFailures(t *testing.T) {
	tests := []struct {
		name  string
		login fakeLogin
		want  string
	}{
		{"token rejected", fakeLogin{tokenStatus: http.StatusBadRequest, tokenBody: `{"error":"invalid_grant"}`}, msgNoToken},
		{"token missing", fakeLogin{tokenBody: `{"expires_in":0}`}, msgNoToken},
		{"token garbage", fakeLogin{tokenBody: `<html>oops</html>`, tokenType: "text/html"}, msgTokenJSON},
		{"token mistyped", fakeLogin{tokenBody: `{"access_token":42}`}, msgTokenJSON},
		{"token form without token", fakeLogin{tokenBody: `scope=x`, tokenType: "text/plain"}, msgNoToken},
		{"metadata garbage", fakeLogin{tokenBody: `{"access_token":"t"}`, metadataBody: `nope`}, msgMetadataJSON},
		{"metadata without dc", fakeLogin{tokenBody: `{"access_token":"t"}`, metadataBody: `{"accountname":"x"}`}, msgNoDatacenter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			login := tt.login
			srv := login.start(t)
			a := newTestAuthorizer(t, srv, nil)
			events, cancel := a.Subscribe(0)
			defer cancel()

			_, err := a.Exchange(context.Background(), map[string]string{"code": "abc"})
			var ferr *FlowError
			require.True(t, errors.As(err, &ferr), "got %v", err)
			assert.Equal(t, tt.want, ferr.Message)
			assert.Equal(t, "abc", ferr.Params["code"])

			got := collect(t, events, EventAuthed)
			last := got[len(got)-1]
			assert.Equal(t, EventError, last.Type)
			assert.Equal(t, tt.want, last.Err.Message)

			_, waitErr := a.Wait(context.Background())
			assert.Equal(t, err, waitErr)
		})
	}
}

func TestExchangeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	a := newTestAuthorizer(t, srv, nil)

	_, err := a.Exchange(context.Background(), map[string]string{"code": "abc"})
	var ferr *FlowError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, msgUnreachable, ferr.Message)
}

func TestExchangeRequiresCode(t *testing.T) {
	a := newTestAuthorizer(t, nil, nil)
	_, err := a.Exchange(context.Background(), map[string]string{})
	var ferr *FlowError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, msgCodeRequired, ferr.Message)

	_, err = a.HandleResponse(context.Background(), map[string]string{"state": "x"})
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, msgNoCode, ferr.Message)
	assert.Equal(t, "x", ferr.Params["state"])
}

func TestHandlerRejectsBadRequests(t *testing.T) {
	a := newTestAuthorizer(t, nil, nil)
	events, cancel := a.Subscribe(0)
	defer cancel()
	h := a.Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/?code=abc", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	ev := <-events
	assert.Equal(t, EventError, ev.Type)
	assert.Equal(t, msgNotGet, ev.Err.Message)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	ev = <-events
	assert.Equal(t, msgNoCode, ev.Err.Message)

	ctx, cancelWait := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelWait()
	_, err := a.Wait(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "rejected requests must not settle the flow")
}

func TestHandlerRejectsUnknownState(t *testing.T) {
	login := &fakeLogin{tokenBody: `{"access_token":"tok"}`, metadataBody: goodMetadata}
	srv := login.start(t)
	errUnknown := errors.New("unknown state")
	a := newTestAuthorizer(t, srv, func(c *Config) {
		c.ValidateState = func(_ context.Context, state string) error {
			if state != "good" {
				return errUnknown
			}
			return nil
		}
	})
	events, cancel := a.Subscribe(0)
	defer cancel()
	h := a.Handler()

	for _, target := range []string{"/?code=abc&state=forged", "/?code=abc"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		ev := <-events
		assert.Equal(t, EventError, ev.Type)
		assert.Equal(t, msgBadState, ev.Err.Message)
		assert.ErrorIs(t, ev.Err, errUnknown)
	}
	assert.Nil(t, login.tokenForm, "no exchange for a rejected state")

	ctx, cancelWait := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelWait()
	_, err := a.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?code=abc&state=good", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	res, err := a.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-us6", res.APIKey)
	assert.Equal(t, "good", res.Params["state"])
	a.inflight.Wait()
}

func TestHandlerAcknowledgesWithoutFinalURI(t *testing.T) {
	login := &fakeLogin{tokenBody: `{"access_token":"tok"}`, metadataBody: goodMetadata}
	srv := login.start(t)
	a := newTestAuthorizer(t, srv, nil)

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?code=abc", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	res, err := a.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-us6", res.APIKey)
	a.inflight.Wait()
}

func TestServeFullFlow(t *testing.T) {
	login := &fakeLogin{tokenBody: `{"access_token":"tok"}`, metadataBody: goodMetadata}
	srv := login.start(t)
	a := newTestAuthorizer(t, srv, func(c *Config) { c.FinalURI = "https://example.com/done" })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() { serveErr <- a.Serve(ctx, ln) }()

	noRedirect := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := noRedirect.Get("http://" + ln.Addr().String() + "/?code=abc&state=s")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://example.com/done", resp.Header.Get("Location"))
	noRedirect.CloseIdleConnections()

	res, err := a.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-us6", res.APIKey)
	assert.True(t, strings.HasPrefix(res.Metadata.APIEndpoint, "https://us6."))

	cancel()
	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	a := newTestAuthorizer(t, nil, nil)
	events, cancel := a.Subscribe(1)
	cancel()
	cancel()

	a.HandleResponse(context.Background(), map[string]string{})
	_, open := <-events
	assert.False(t, open)
}
