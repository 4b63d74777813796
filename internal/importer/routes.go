package importer

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/menusmith/menusmith/internal/menu"
)

// RegisterRoutes mounts the bulk import API routes.
func RegisterRoutes(r chi.Router) {
	r.Post("/api/import/text", handleText())
}

// writeError sends a JSON error body through the encoder rather than
// string concatenation, keeping the payload valid for any message.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

type textRequest struct {
	Text string `json:"text"`
}

type textResponse struct {
	Categories []menu.Category `json:"categories"`
}

func handleText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}

		categories := ParseText(req.Text)
		if categories == nil {
			categories = []menu.Category{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(textResponse{Categories: categories})
	}
}
