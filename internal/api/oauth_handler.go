package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/lzjever/chimpgate/internal/core"
	"github.com/lzjever/chimpgate/internal/oauth"
	"github.com/lzjever/chimpgate/internal/observability"
	"github.com/lzjever/chimpgate/internal/statestore"
	"github.com/lzjever/chimpgate/internal/store"
)

// Authorize sends the browser to the MailChimp login page. The optional
// final_uri query parameter overrides where the callback ends up; it must be
// the configured final URI or point at one of the allowed hosts.
func (a *API) Authorize(w http.ResponseWriter, r *http.Request) {
	if a.auth == nil {
		WriteError(w, core.NewAppError(core.ErrNotFound, "oauth is not configured"))
		return
	}
	finalURI := r.URL.Query().Get("final_uri")
	if finalURI == "" {
		finalURI = a.finalURI
	} else if !a.allowedFinalURI(finalURI) {
		WriteError(w, core.NewAppError(core.ErrBadRequest, "final_uri is not allowed"))
		return
	}

	state := core.NewState()
	if err := a.states.Put(r.Context(), state, finalURI, a.stateTTL); err != nil {
		a.log.Error("store oauth state failed", zap.Error(err))
		WriteError(w, core.NewAppError(core.ErrInternal, "failed to start authorization"))
		return
	}
	http.Redirect(w, r, a.auth.AuthorizeURL(state), http.StatusFound)
}

func (a *API) allowedFinalURI(raw string) bool {
	if raw == a.finalURI {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.User != nil {
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}
	for _, allowed := range a.finalHosts {
		if strings.EqualFold(host, strings.TrimSpace(allowed)) {
			return true
		}
	}
	return false
}

// Callback is the redirect URI registered with MailChimp. It redeems the
// state, runs the code exchange and stores the resulting account.
func (a *API) Callback(w http.ResponseWriter, r *http.Request) {
	if a.auth == nil {
		WriteError(w, core.NewAppError(core.ErrNotFound, "oauth is not configured"))
		return
	}
	ctx := r.Context()
	q := r.URL.Query()

	if q.Get("error") != "" {
		WriteError(w, core.NewAppError(core.ErrOAuthFailed, "authorization denied: "+q.Get("error")))
		return
	}
	finalURI, err := a.states.Take(ctx, q.Get("state"))
	if err != nil {
		if !errors.Is(err, statestore.ErrUnknownState) {
			a.log.Error("redeem oauth state failed", zap.Error(err))
		}
		WriteError(w, core.NewAppError(core.ErrBadRequest, statestore.ErrUnknownState.Error()))
		return
	}

	params := make(map[string]string, len(q))
	for k := range q {
		params[k] = q.Get(k)
	}
	res, err := a.auth.HandleResponse(ctx, params)
	if err != nil {
		var ferr *oauth.FlowError
		if errors.As(err, &ferr) {
			WriteError(w, core.NewAppError(core.ErrOAuthFailed, ferr.Message))
			return
		}
		WriteError(w, core.Classify(err))
		return
	}

	md := res.Metadata
	if md == nil || md.UserID.String() == "" {
		WriteError(w, core.NewAppError(core.ErrOAuthFailed, "authorization metadata carries no user id"))
		return
	}
	acc, err := a.queries.UpsertAccount(ctx, store.UpsertAccountParams{
		ID:          core.NewID(),
		UserID:      md.UserID.String(),
		AccountName: md.AccountName,
		LoginEmail:  md.Login.LoginEmail,
		Dc:          md.DC,
		ApiKey:      res.APIKey,
		ApiEndpoint: md.APIEndpoint,
		LoginUrl:    md.LoginURL,
	})
	if err != nil {
		a.log.Error("store account failed", zap.Error(err))
		WriteError(w, core.NewAppError(core.ErrInternal, "failed to store account"))
		return
	}
	observability.AccountsStored.Inc()
	a.log.Info("account authorized", zap.String("account_id", acc.ID), zap.String("dc", acc.Dc))

	if finalURI != "" {
		target, err := url.Parse(finalURI)
		if err == nil {
			v := target.Query()
			v.Set("account_id", acc.ID)
			target.RawQuery = v.Encode()
			http.Redirect(w, r, target.String(), http.StatusFound)
			return
		}
		a.log.Warn("invalid final uri, answering with JSON", zap.String("final_uri", finalURI))
	}
	WriteJSON(w, http.StatusOK, accountToResponse(acc))
}
