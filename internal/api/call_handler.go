package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/lzjever/chimpgate/internal/api/middleware"
	"github.com/lzjever/chimpgate/internal/catalog"
	"github.com/lzjever/chimpgate/internal/core"
	"github.com/lzjever/chimpgate/internal/store"
)

const APIKeyHeader = middleware.APIKeyHeader

type CallRequest struct {
	Version   string         `json:"version"`
	AccountID string         `json:"account_id"`
	Params    map[string]any `json:"params"`
}

// CallMethod forwards one remote method call. The key comes from the
// X-Api-Key header or from a stored OAuth account.
func (a *API) CallMethod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	api, err := catalog.ParseAPI(chi.URLParam(r, "api"))
	if err != nil {
		WriteError(w, core.NewAppError(core.ErrNotFound, err.Error()))
		return
	}

	var req CallRequest
	if r.ContentLength != 0 {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			WriteError(w, core.NewAppError(core.ErrBadRequest, "invalid request body"))
			return
		}
	}

	cat, err := catalog.Get(api, req.Version)
	if err != nil {
		WriteError(w, core.Classify(err))
		return
	}
	ep, err := resolveEndpoint(cat, chi.URLParam(r, "*"))
	if err != nil {
		WriteError(w, core.Classify(err))
		return
	}

	key := strings.TrimSpace(r.Header.Get(APIKeyHeader))
	var accountID pgtype.Text
	if key == "" && req.AccountID != "" {
		acc, err := a.queries.GetAccount(ctx, req.AccountID)
		if err != nil {
			WriteError(w, core.NewAppError(core.ErrNotFound, "account not found"))
			return
		}
		key = acc.ApiKey
		accountID = pgtype.Text{String: acc.ID, Valid: true}
	}
	if key == "" {
		WriteError(w, core.NewAppError(core.ErrBadRequest, "an "+APIKeyHeader+" header or an account_id is required"))
		return
	}

	cl, err := a.clients.get(api, cat.Version(), key, a.clientOpts)
	if err != nil {
		WriteError(w, core.Classify(err))
		return
	}

	var result json.RawMessage
	callErr := cl.Execute(ctx, ep.Method, req.Params, &result)

	filtered, _ := json.Marshal(ep.Filter(req.Params))
	a.writeAudit(r, store.InsertCallAuditParams{
		Api:         string(api),
		Version:     cat.Version(),
		Method:      ep.Method,
		AccountID:   accountID,
		RequestHash: core.HashCall(filtered, string(api), cat.Version(), ep.Method),
		Outcome:     string(core.OutcomeOf(callErr)),
		DurationMs:  time.Since(start).Milliseconds(),
	})

	if callErr != nil {
		a.log.Info("remote call failed",
			zap.String("api", string(api)),
			zap.String("method", ep.Method),
			zap.Error(callErr),
		)
		WriteCallError(w, callErr)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// resolveEndpoint accepts "method" as well as "section/method" with either
// dashes or underscores.
func resolveEndpoint(cat *catalog.Catalog, name string) (catalog.Endpoint, error) {
	if section, method, ok := strings.Cut(name, "/"); ok {
		return cat.Resolve(section, method)
	}
	return cat.Lookup(name)
}

func (a *API) writeAudit(r *http.Request, arg store.InsertCallAuditParams) {
	if id := middleware.GetRequestID(r); id != "" {
		arg.RequestID = pgtype.Text{String: id, Valid: true}
	}
	if _, err := a.queries.InsertCallAudit(r.Context(), arg); err != nil {
		a.log.Warn("write call audit failed", zap.Error(err))
	}
}
