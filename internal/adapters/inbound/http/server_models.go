package http

import (
	"net/http"
)

// ListModels returns the cached model catalog, refreshing it when stale.
func (api GatewayServer) ListModels(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toModelListResp(api.ModelCatalog.List(r.Context(), api.credential(r))))
}

// RefreshModels forces a catalog refresh.
func (api GatewayServer) RefreshModels(w http.ResponseWriter, r *http.Request) {
	cred, ok := api.requireCredential(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, toModelListResp(api.ModelCatalog.Refresh(r.Context(), cred)))
}
