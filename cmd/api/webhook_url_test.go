package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testResolver() webhookResolver {
	r := newWebhookResolver()
	r.attempts = 3
	r.interval = 10 * time.Millisecond
	return r
}

func TestResolveConfigured(t *testing.T) {
	got, err := testResolver().Resolve(context.Background(), "https://notes.example.com/webhook/telegram", "http://unused")
	if err != nil || got != "https://notes.example.com/webhook/telegram" {
		t.Errorf("Resolve = %q, %v", got, err)
	}
}

func TestResolveDisabled(t *testing.T) {
	got, err := testResolver().Resolve(context.Background(), "", "")
	if err != nil || got != "" {
		t.Errorf("expected no webhook, got %q, %v", got, err)
	}
}

func TestResolveNgrok(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Write([]byte(`{"tunnels": []}`))
			return
		}
		w.Write([]byte(`{"tunnels": [
			{"public_url": "http://abc.ngrok.io", "proto": "http"},
			{"public_url": "https://abc.ngrok.io/", "proto": "https"}
		]}`))
	}))
	defer srv.Close()

	got, err := testResolver().Resolve(context.Background(), "", srv.URL+"/")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "https://abc.ngrok.io/webhook/telegram" {
		t.Errorf("Resolve = %q", got)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected a retry while no tunnel was up, got %d calls", calls)
	}
}

func TestResolveNgrokNoTunnels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tunnels": []}`))
	}))
	defer srv.Close()

	if _, err := testResolver().Resolve(context.Background(), "", srv.URL); err == nil {
		t.Error("expected an error when no tunnel ever appears")
	}
}

func TestResolveNgrokCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := testResolver().Resolve(ctx, "", "http://127.0.0.1:1"); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}
