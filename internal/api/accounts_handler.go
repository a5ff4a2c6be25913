package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/lzjever/chimpgate/internal/core"
	"github.com/lzjever/chimpgate/internal/store"
)

// ListAccounts lists authorized accounts, newest first, with pagination.
func (a *API) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := parseLimit(r.URL.Query().Get("limit"), 20, 100)
	cursor := parseCursor(r.URL.Query().Get("cursor"))

	accounts, err := a.queries.ListAccounts(ctx, store.ListAccountsParams{
		Limit:  int32(limit),
		Cursor: cursor,
	})
	if err != nil {
		a.log.Error("list accounts failed", zap.Error(err))
		WriteError(w, core.NewAppError(core.ErrInternal, "failed to list accounts"))
		return
	}

	resp := make([]core.Account, len(accounts))
	for i, acc := range accounts {
		resp[i] = accountToResponse(acc)
	}

	var nextCursor string
	if len(accounts) == limit {
		nextCursor = encodeCursor(accounts[len(accounts)-1].CreatedAt)
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"accounts":    resp,
		"next_cursor": nextCursor,
	})
}

// GetAccount gets a single account by id.
func (a *API) GetAccount(w http.ResponseWriter, r *http.Request) {
	acc, err := a.queries.GetAccount(r.Context(), chi.URLParam(r, "account_id"))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			a.log.Error("get account failed", zap.Error(err))
		}
		WriteError(w, core.NewAppError(core.ErrNotFound, "account not found"))
		return
	}
	WriteJSON(w, http.StatusOK, accountToResponse(acc))
}

// DeleteAccount forgets an account and its API key, including any client
// cached for that key.
func (a *API) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "account_id")
	acc, err := a.queries.GetAccount(ctx, id)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			a.log.Error("get account failed", zap.Error(err))
		}
		WriteError(w, core.NewAppError(core.ErrNotFound, "account not found"))
		return
	}
	n, err := a.queries.DeleteAccount(ctx, id)
	if err != nil {
		a.log.Error("delete account failed", zap.Error(err))
		WriteError(w, core.NewAppError(core.ErrInternal, "failed to delete account"))
		return
	}
	a.clients.forget(acc.ApiKey)
	if n == 0 {
		WriteError(w, core.NewAppError(core.ErrNotFound, "account not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAudit lists recent remote calls, optionally for one account.
func (a *API) ListAudit(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"), 50, 500)
	var accountID pgtype.Text
	if id := r.URL.Query().Get("account_id"); id != "" {
		accountID = pgtype.Text{String: id, Valid: true}
	}

	events, err := a.queries.ListCallAudit(r.Context(), store.ListCallAuditParams{
		Limit:     int32(limit),
		AccountID: accountID,
	})
	if err != nil {
		a.log.Error("list audit failed", zap.Error(err))
		WriteError(w, core.NewAppError(core.ErrInternal, "failed to list audit events"))
		return
	}

	resp := make([]core.AuditEvent, len(events))
	for i, ev := range events {
		resp[i] = auditToResponse(ev)
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"events": resp})
}

func accountToResponse(acc store.ChimpAccount) core.Account {
	return core.Account{
		ID:          acc.ID,
		UserID:      acc.UserID,
		AccountName: acc.AccountName,
		LoginEmail:  acc.LoginEmail,
		DC:          acc.Dc,
		APIKey:      acc.ApiKey,
		APIEndpoint: acc.ApiEndpoint,
		LoginURL:    acc.LoginUrl,
		CreatedAt:   acc.CreatedAt.Time,
		UpdatedAt:   acc.UpdatedAt.Time,
	}.Redacted()
}

func auditToResponse(ev store.ChimpCallAudit) core.AuditEvent {
	out := core.AuditEvent{
		EventID:     ev.EventID,
		Ts:          ev.Ts.Time,
		API:         ev.Api,
		Version:     ev.Version,
		Method:      ev.Method,
		RequestHash: ev.RequestHash,
		Outcome:     core.CallOutcome(ev.Outcome),
		Duration:    time.Duration(ev.DurationMs) * time.Millisecond,
	}
	if ev.AccountID.Valid {
		out.AccountID = &ev.AccountID.String
	}
	if ev.RequestID.Valid {
		out.RequestID = &ev.RequestID.String
	}
	return out
}

func parseLimit(s string, defaultVal, maxVal int) int {
	if s == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return defaultVal
	}
	if n > maxVal {
		return maxVal
	}
	return n
}

func parseCursor(s string) pgtype.Timestamptz {
	if s == "" {
		return pgtype.Timestamptz{Valid: false}
	}
	t, err := decodeCursor(s)
	if err != nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
