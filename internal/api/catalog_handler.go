package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lzjever/chimpgate/internal/catalog"
	"github.com/lzjever/chimpgate/internal/core"
)

type APIResponse struct {
	API            string   `json:"api"`
	Title          string   `json:"title"`
	DefaultVersion string   `json:"default_version"`
	Versions       []string `json:"versions"`
}

type MethodsResponse struct {
	API       string             `json:"api"`
	Version   string             `json:"version"`
	Endpoints []catalog.Endpoint `json:"endpoints"`
}

// ListAPIs lists the supported APIs and their versions.
func (a *API) ListAPIs(w http.ResponseWriter, r *http.Request) {
	apis := catalog.APIs()
	resp := make([]APIResponse, len(apis))
	for i, api := range apis {
		resp[i] = APIResponse{
			API:            string(api),
			Title:          api.Title(),
			DefaultVersion: catalog.DefaultVersion(api),
			Versions:       catalog.Versions(api),
		}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"apis": resp})
}

// ListMethods lists the methods of one API version with their parameters.
func (a *API) ListMethods(w http.ResponseWriter, r *http.Request) {
	api, err := catalog.ParseAPI(chi.URLParam(r, "api"))
	if err != nil {
		WriteError(w, core.NewAppError(core.ErrNotFound, err.Error()))
		return
	}
	cat, err := catalog.Get(api, r.URL.Query().Get("version"))
	if err != nil {
		WriteError(w, core.Classify(err))
		return
	}
	WriteJSON(w, http.StatusOK, MethodsResponse{
		API:       string(api),
		Version:   cat.Version(),
		Endpoints: cat.Endpoints(),
	})
}
