// Package httpkit provides handler and routing helpers over the platform http package
// modules use these so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "floaty/internal/platform/net/http"
	"floaty/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope
	Envelope = phttp.Envelope
	// Response is a return style handler result
	Response = phttp.Response
	// Handler is the platform handler type
	Handler = phttp.Handler
	// Router is the platform router seam
	Router = phttp.Router
	// JSONOptions tunes body decoding
	JSONOptions = bind.JSONOptions
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error maps err to its status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Optional decodes an empty body as the zero value
func Optional() JSONOptions { return bind.Optional() }

// JSON decodes and validates T from the body before calling fn. A returned
// Response is written as is, anything else is wrapped in a 200 envelope
func JSON[T any](fn func(*http.Request, T) (any, error), opts ...JSONOptions) Handler {
	return phttp.JSONHandler(fn, opts...)
}

// Call adapts a handler that reads no body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle adapts a Response returning func
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
