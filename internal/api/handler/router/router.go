package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}

	// WithJSONFallbacks troca as respostas em texto do httprouter (404/405) pelo payload padrão de erro
	WithJSONFallbacks = func() ConfigRouter {
		return func(router *Router) {
			router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "rota não encontrada", r.URL.Path)
			})
			router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "método não permitido", r.Method)
			})
		}
	}
)

// Route descreve um endpoint do dashboard e os middlewares aplicados só a ele
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
	routes []Route
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) *Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas, envolvendo cada handler pelos seus middlewares na ordem declarada
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.routes = append(r.routes, route)
	}
}

// Routes lista as rotas registradas, na ordem de registro
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}
