package rest

import "net/http"

type infoResponse struct {
	Status    string   `json:"status,omitempty"`
	Error     string   `json:"error,omitempty"`
	Endpoints []string `json:"endpoints"`
}

// infoHandler answers the root path and every request no route claims.
type infoHandler struct {
	endpoints []string
	notFound  bool
}

// Root handles GET /.
func (h *infoHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, infoResponse{Status: msgServerUp, Endpoints: h.endpoints})
}

// Unmatched handles unknown paths and unsupported methods on known paths.
func (h *infoHandler) Unmatched(w http.ResponseWriter, r *http.Request) {
	if !h.notFound {
		h.Root(w, r)
		return
	}
	writeJSON(w, http.StatusNotFound, infoResponse{Error: msgRouteNotFound, Endpoints: h.endpoints})
}
