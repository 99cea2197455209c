package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/heartmarshall/dialects-backend/internal/config"
	"github.com/heartmarshall/dialects-backend/internal/transport/middleware"
)

// Handlers groups the operation handlers the router dispatches to.
type Handlers struct {
	Chat   *ChatHandler
	Terms  *TermHandler
	Health *HealthHandler
}

// RouterConfig holds the HTTP surface options.
type RouterConfig struct {
	CORS              config.CORSConfig
	MaxBodyBytes      int64
	UnmatchedNotFound bool
}

// route is one row of the routing table. Rows with a doc string are
// advertised in the endpoints list.
type route struct {
	method  string
	pattern string
	doc     string
	handler http.HandlerFunc
}

func routes(h Handlers) []route {
	return []route{
		{http.MethodGet, "/terms", "GET /terms", h.Terms.List},
		{http.MethodPost, "/terms", "POST /terms", h.Terms.Add},
		{http.MethodDelete, "/terms/{id}", "DELETE /terms/:id", h.Terms.Delete},
		{http.MethodDelete, "/terms/", "", h.Terms.Delete},
		{http.MethodDelete, "/terms/{id}/*", "", h.Terms.Delete},
		{http.MethodPost, "/chat", "POST /chat", h.Chat.Chat},
		{http.MethodGet, "/health", "GET /health", h.Health.Health},
	}
}

// NewRouter builds the HTTP handler: the middleware chain around a chi mux
// populated from the routing table.
//
// OPTIONS on any path is answered by the CORS layer before routing.
func NewRouter(logger *slog.Logger, cfg RouterConfig, h Handlers) http.Handler {
	table := routes(h)

	info := &infoHandler{
		endpoints: lo.FilterMap(table, func(rt route, _ int) (string, bool) {
			return rt.doc, rt.doc != ""
		}),
		notFound: cfg.UnmatchedNotFound,
	}

	mux := chi.NewRouter()
	for _, rt := range table {
		mux.Method(rt.method, rt.pattern, rt.handler)
	}
	mux.Get("/", info.Root)
	mux.NotFound(info.Unmatched)
	mux.MethodNotAllowed(info.Unmatched)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Recovery(logger, http.HandlerFunc(InternalError)),
		middleware.MaxBodyBytes(cfg.MaxBodyBytes),
	)

	return chain(mux)
}
