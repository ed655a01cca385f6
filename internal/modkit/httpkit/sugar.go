package httpkit

import (
	"net/http"
)

// Get mounts a bodiless handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post mounts a bodiless handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// PostJSON mounts a JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...JSONOptions) {
	r.Post(path, JSON(h, opts...))
}

// PostOptional mounts a JSON handler under POST that accepts an empty body
func PostOptional[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h, Optional()))
}
