package http

import "net/http"

// Handler is the handler func shape mounted on a Router
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount against. The API only speaks GET and POST,
// other verbs go through Method
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Method(method, path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
