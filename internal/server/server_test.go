package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/menusmith/menusmith/internal/db"
	"github.com/menusmith/menusmith/internal/generator"
	"github.com/menusmith/menusmith/internal/preview"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return New(Config{Port: 0, AllowAll: true}, database, generator.New(), preview.NewHub())
}

func TestHealthz(t *testing.T) {
	srv := setupTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestAccessors(t *testing.T) {
	srv := setupTestServer(t)
	if srv.Database() == nil {
		t.Error("nil database")
	}
	if srv.Generator() == nil {
		t.Error("nil generator")
	}
	if srv.Hub() == nil {
		t.Error("nil hub")
	}
	if !srv.ServerConfig().AllowAll {
		t.Error("config not retained")
	}
}
