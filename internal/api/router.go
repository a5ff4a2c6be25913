package api

import (
	"context"
	"encoding/base64"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lzjever/chimpgate/internal/api/middleware"
	"github.com/lzjever/chimpgate/internal/catalog"
	"github.com/lzjever/chimpgate/internal/client"
	"github.com/lzjever/chimpgate/internal/oauth"
	"github.com/lzjever/chimpgate/internal/statestore"
	"github.com/lzjever/chimpgate/internal/store"
)

// AccountStore is the part of store.Queries the gateway uses.
type AccountStore interface {
	UpsertAccount(ctx context.Context, arg store.UpsertAccountParams) (store.ChimpAccount, error)
	GetAccount(ctx context.Context, id string) (store.ChimpAccount, error)
	ListAccounts(ctx context.Context, arg store.ListAccountsParams) ([]store.ChimpAccount, error)
	DeleteAccount(ctx context.Context, id string) (int64, error)
	InsertCallAudit(ctx context.Context, arg store.InsertCallAuditParams) (int64, error)
	ListCallAudit(ctx context.Context, arg store.ListCallAuditParams) ([]store.ChimpCallAudit, error)
}

const defaultClientCacheSize = 256

type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	db         Pinger
	queries    AccountStore
	states     statestore.Store
	auth       *oauth.Authorizer
	stateTTL   time.Duration
	finalURI   string
	finalHosts []string
	clientOpts []client.Option
	clients    *clientCache
	log        *zap.Logger
}

// NewAPI wires the gateway. auth may be nil, which disables the OAuth routes.
func NewAPI(pool *pgxpool.Pool, states statestore.Store, auth *oauth.Authorizer, cfg Config, log *zap.Logger, clientOpts ...client.Option) *API {
	return &API{
		db:         pool,
		queries:    store.New(pool),
		states:     states,
		auth:       auth,
		stateTTL:   cfg.OAuthStateTTL,
		finalURI:   cfg.OAuthFinalURI,
		finalHosts: cfg.OAuthAllowedHosts,
		clientOpts: clientOpts,
		clients:    newClientCache(cfg.ClientCacheSize),
		log:        log,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recoverer(a.log))
	r.Use(middleware.Logger)
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Health endpoints
	r.Get("/healthz", a.HealthHandler)
	r.Get("/readyz", a.ReadyHandler)

	r.Route("/v1", func(r chi.Router) {
		// Catalog
		r.Get("/apis", a.ListAPIs)
		r.Get("/apis/{api}/methods", a.ListMethods)

		// Remote calls
		r.Post("/apis/{api}/call/*", a.CallMethod)

		// OAuth
		r.Get("/oauth/authorize", a.Authorize)
		r.Get("/oauth/callback", a.Callback)

		// Accounts
		r.Get("/accounts", a.ListAccounts)
		r.Get("/accounts/{account_id}", a.GetAccount)
		r.Delete("/accounts/{account_id}", a.DeleteAccount)

		// Audit
		r.Get("/audit", a.ListAudit)
	})

	return r
}

// clientCache keeps one client per (api, version, key) so the per-client
// rate limiter applies across requests. Least recently used clients are
// evicted once the cache is full.
type clientCache struct {
	mu      sync.Mutex
	clients *lru.Cache[clientKey, *client.Client]
}

type clientKey struct {
	api     catalog.API
	version string
	key     string
}

func newClientCache(size int) *clientCache {
	if size <= 0 {
		size = defaultClientCacheSize
	}
	clients, err := lru.New[clientKey, *client.Client](size)
	if err != nil {
		panic(err)
	}
	return &clientCache{clients: clients}
}

func (c *clientCache) get(api catalog.API, version, key string, opts []client.Option) (*client.Client, error) {
	id := clientKey{api: api, version: version, key: key}
	c.mu.Lock()
	defer c.mu.Unlock()
	if cl, ok := c.clients.Get(id); ok {
		return cl, nil
	}
	all := append(append([]client.Option{}, opts...), client.WithVersion(version))
	cl, err := client.New(api, key, all...)
	if err != nil {
		return nil, err
	}
	c.clients.Add(id, cl)
	return cl, nil
}

// forget drops every client built for key.
func (c *clientCache) forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range c.clients.Keys() {
		if id.key == key {
			c.clients.Remove(id)
		}
	}
}

func (c *clientCache) len() int {
	return c.clients.Len()
}

// encodeCursor encodes a timestamp as a base64 cursor.
func encodeCursor(t pgtype.Timestamptz) string {
	if !t.Valid {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(t.Time.Format(time.RFC3339Nano)))
}

// decodeCursor decodes a base64 cursor to a timestamp.
func decodeCursor(s string) (time.Time, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, string(b))
}
