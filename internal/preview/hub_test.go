package preview

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

func TestBroadcastToSubscriber(t *testing.T) {
	hub := NewHub()
	r := chi.NewRouter()
	hub.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/preview/r1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The subscription is registered before the upgrade handler
	// returns, but give the server loop a moment on slow runners.
	deadline := time.Now().Add(time.Second)
	for hub.Subscribers("r1") == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Subscribers("r1") != 1 {
		t.Fatalf("subscribers = %d, want 1", hub.Subscribers("r1"))
	}

	hub.Broadcast("r1", "<!DOCTYPE html><html></html>")

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(msg), "<!DOCTYPE html>") {
		t.Errorf("message = %q", msg)
	}
}

func TestBroadcastScopedToID(t *testing.T) {
	hub := NewHub()
	r := chi.NewRouter()
	hub.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/preview/r1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(time.Second)
	for hub.Subscribers("r1") == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	// A broadcast for another restaurant must not reach this frame.
	hub.Broadcast("r2", "other")

	conn.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("received a broadcast for a different restaurant")
	}
}

func TestBroadcastNoSubscribers(t *testing.T) {
	hub := NewHub()
	// Must not panic or block.
	hub.Broadcast("nobody", "html")
	if n := hub.Subscribers("nobody"); n != 0 {
		t.Errorf("subscribers = %d", n)
	}
}

func TestUnsubscribeOnClose(t *testing.T) {
	hub := NewHub()
	r := chi.NewRouter()
	hub.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/preview/r1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for hub.Subscribers("r1") == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	conn.Close()

	deadline = time.Now().Add(time.Second)
	for hub.Subscribers("r1") != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if n := hub.Subscribers("r1"); n != 0 {
		t.Errorf("subscribers after close = %d, want 0", n)
	}
}
