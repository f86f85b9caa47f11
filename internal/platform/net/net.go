// Package net carries per request identity and the response envelope shared
// by handlers and middleware
package net

import (
	"context"
	"net/http"

	perr "aidetect/internal/platform/errors"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{}

// WithRequest stores the request id where chi's RequestID middleware would, plus the client
func WithRequest(ctx context.Context, reqID, client string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return WithClient(ctx, client)
}

// WithClient records the API key owner that authenticated the request
func WithClient(ctx context.Context, client string) context.Context {
	if client == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, client)
}

func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Client is "" for anonymous requests
func Client(ctx context.Context) string {
	c, _ := ctx.Value(ctxKey{}).(string)
	return c
}

// Wire is the JSON envelope every API response uses
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Reply wraps data in a success envelope
func Reply(status int, data any, reqID string) Wire {
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// Error maps err to its status and error envelope; a nil err is a plain 200
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return http.StatusOK, Reply(http.StatusOK, nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	out := Reply(status, nil, reqID)
	out.Code, out.Error = w.Code, w.Message
	return status, out
}
