// Package net carries request scoped values shared by the HTTP layers
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const (
	keyOrigin ctxKey = "origin"
	keyClient ctxKey = "client"
)

// WithRequest annotates ctx with the request id and the calling origin. The
// request id is stored under chi's key so chimw.GetReqID sees it too
func WithRequest(ctx context.Context, reqID, origin string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if origin != "" {
		ctx = context.WithValue(ctx, keyOrigin, origin)
	}
	return ctx
}

// WithClient records the extension build that sent the request
func WithClient(ctx context.Context, client string) context.Context {
	if client != "" {
		ctx = context.WithValue(ctx, keyClient, client)
	}
	return ctx
}

// RequestID returns the request id, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Origin returns the Origin header captured for the request, or ""
func Origin(ctx context.Context) string {
	v, _ := ctx.Value(keyOrigin).(string)
	return v
}

// Client returns the extension client tag, or ""
func Client(ctx context.Context) string {
	v, _ := ctx.Value(keyClient).(string)
	return v
}
