// Package http is the router seam, handler adapters and server for the API
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"aidetect/internal/platform/logger"
	pnet "aidetect/internal/platform/net"
)

// Envelope is the body of every API response
type Envelope = pnet.Wire

// JSON writes v as the whole response
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Debug().Err(err).Msg("response write failed")
	}
}

// Response is what return-style handlers produce
// A Body holding an error becomes an error envelope with the mapped status
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
	// Plain writes a successful Body as the whole response, errors keep the envelope
	Plain bool
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		status, env := pnet.Error(err, reqID)
		JSON(w, status, env)
		return
	}
	status := resp.Status
	switch status {
	case 0:
		status = stdhttp.StatusOK
	case stdhttp.StatusNoContent:
		w.WriteHeader(status)
		return
	}
	if resp.Plain {
		JSON(w, status, resp.Body)
		return
	}
	JSON(w, status, pnet.Reply(status, resp.Body, reqID))
}

// OK wraps data in a 200 envelope
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error maps err to its status and error envelope
func Error(err error) Response { return Response{Body: err} }
