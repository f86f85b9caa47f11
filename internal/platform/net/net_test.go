package net_test

import (
	"context"
	"net/http"
	"testing"

	perr "aidetect/internal/platform/errors"
	pnet "aidetect/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	ctx := pnet.WithRequest(context.Background(), "req-7", "frontend")
	if pnet.RequestID(ctx) != "req-7" || pnet.Client(ctx) != "frontend" {
		t.Fatalf("got id=%q client=%q", pnet.RequestID(ctx), pnet.Client(ctx))
	}

	anon := pnet.WithRequest(context.Background(), "", "")
	if pnet.RequestID(anon) != "" || pnet.Client(anon) != "" {
		t.Fatal("empty values must not be stored")
	}
	if pnet.Client(pnet.WithClient(anon, "cli")) != "cli" {
		t.Fatal("WithClient lost the name")
	}
}

func TestReply(t *testing.T) {
	w := pnet.Reply(http.StatusOK, map[string]float64{"ai_probability": 0.42}, "req-1")
	if w.StatusCode != 200 || w.Status != "OK" || w.RequestID != "req-1" || w.Code != 0 || w.Error != "" {
		t.Fatalf("envelope = %+v", w)
	}
}

func TestError(t *testing.T) {
	status, w := pnet.Error(perr.Unavailablef("model is not loaded"), "req-2")
	if status != http.StatusServiceUnavailable || w.StatusCode != status {
		t.Fatalf("status %d, envelope %+v", status, w)
	}
	if w.Code != perr.ErrorCodeUnavailable || w.Error != "model is not loaded" || w.Data != nil {
		t.Fatalf("envelope = %+v", w)
	}

	status, w = pnet.Error(nil, "req-3")
	if status != http.StatusOK || w.Error != "" || w.RequestID != "req-3" {
		t.Fatalf("nil error: %d %+v", status, w)
	}
}
