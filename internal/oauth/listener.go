package oauth

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Handler serves the redirect URI. A GET carrying a code and an accepted
// state is acknowledged right away (302 to FinalURI, or 204) and the exchange
// continues in the background. A rejected state gets a 400, everything else a
// 500; both emit an error event.
func (a *Authorizer) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			a.fail(Result{}, msgNotGet, nil)
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		params := make(map[string]string)
		for k, v := range r.URL.Query() {
			if len(v) > 0 {
				params[k] = v[0]
			}
		}
		if _, ok := params["code"]; !ok {
			a.fail(Result{Params: params}, msgNoCode, nil)
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if a.cfg.ValidateState != nil {
			if err := a.cfg.ValidateState(r.Context(), params["state"]); err != nil {
				a.fail(Result{Params: params}, msgBadState, err)
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		a.inflight.Add(1)
		go func() {
			defer a.inflight.Done()
			ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ExchangeTimeout)
			defer cancel()
			a.HandleResponse(ctx, params)
		}()

		if a.cfg.FinalURI != "" {
			http.Redirect(w, r, a.cfg.FinalURI, http.StatusFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNoContent)
	})
}

// ListenAndServe listens on the configured port, with TLS when a certificate
// is configured, until ctx ends.
func (a *Authorizer) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(a.cfg.Port))
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener. It returns once ctx ended,
// the server shut down and any exchange still running finished.
func (a *Authorizer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("oauth listener started", zap.String("addr", ln.Addr().String()), zap.Bool("tls", a.cfg.TLSCertFile != ""))
		var err error
		if a.cfg.TLSCertFile != "" {
			err = srv.ServeTLS(ln, a.cfg.TLSCertFile, a.cfg.TLSKeyFile)
		} else {
			err = srv.Serve(ln)
		}
		errCh <- err
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.log.Error("oauth listener shutdown error", zap.Error(err))
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			serveErr = err
		}
	case err := <-errCh:
		serveErr = err
	}
	a.inflight.Wait()
	a.log.Info("oauth listener stopped")
	return serveErr
}
