// Package router registers the seven conventional resource actions on a
// chi router, using the exact path shapes and HTTP methods the client-side
// resolver produces. Mounting a resource here and resolving its names with
// resourceroute.New gives both ends of the convention from one source of
// truth.
package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	route "github.com/salvobee/laravel-resource-route"
	"github.com/salvobee/laravel-resource-route/internal/inflect"
)

// Resource holds the handlers for a resource's conventional actions.
// Nil fields are simply not registered.
type Resource struct {
	Index   http.HandlerFunc
	Create  http.HandlerFunc
	Store   http.HandlerFunc
	Show    http.HandlerFunc
	Edit    http.HandlerFunc
	Update  http.HandlerFunc
	Destroy http.HandlerFunc
}

// New creates a chi router with a middleware that bridges chi URL params to
// Request.PathValue, so handlers can read the resource identifier without
// importing chi themselves.
func New() chi.Router {
	mux := chi.NewRouter()

	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			rctx := chi.RouteContext(req.Context())
			for i, key := range rctx.URLParams.Keys {
				req.SetPathValue(key, rctx.URLParams.Values[i])
			}
			next.ServeHTTP(w, req)
		})
	})

	return mux
}

// Mount registers res's non-nil handlers on r under the conventional paths
// for name:
//
//	GET    /photos              index
//	GET    /photos/create       create
//	POST   /photos              store
//	GET    /photos/{photo}      show
//	GET    /photos/{photo}/edit edit
//	PUT    /photos/{photo}      update
//	DELETE /photos/{photo}      destroy
//
// The URL parameter is the singular resource name, matching the identifier
// key the resolver derives on the client side.
func Mount(r chi.Router, name string, res Resource) {
	param := inflect.Singularize(name)
	root := "/" + strings.Trim(name, "/")

	for _, a := range route.Actions() {
		h := res.handler(a)
		if h == nil {
			continue
		}
		r.Method(a.Method(), pattern(root, param, a), h)
	}
}

func (res Resource) handler(a route.Action) http.HandlerFunc {
	switch a {
	case route.ActionIndex:
		return res.Index
	case route.ActionCreate:
		return res.Create
	case route.ActionStore:
		return res.Store
	case route.ActionShow:
		return res.Show
	case route.ActionEdit:
		return res.Edit
	case route.ActionUpdate:
		return res.Update
	case route.ActionDestroy:
		return res.Destroy
	}
	return nil
}

func pattern(root, param string, a route.Action) string {
	switch a {
	case route.ActionIndex, route.ActionStore:
		return root
	case route.ActionCreate:
		return root + "/create"
	case route.ActionEdit:
		return root + "/{" + param + "}/edit"
	default:
		return root + "/{" + param + "}"
	}
}
