package restaurants

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/menusmith/menusmith/internal/generator"
	"github.com/menusmith/menusmith/internal/menu"
	"github.com/menusmith/menusmith/internal/order"
	"github.com/menusmith/menusmith/internal/preview"
)

// RegisterRoutes mounts the editor API. The hub may be nil when the
// server runs without live preview.
func RegisterRoutes(r chi.Router, store *Store, gen *generator.Generator, hub *preview.Hub) {
	r.Route("/api/restaurants", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Post("/", handleCreate(store))
		r.Get("/{id}", handleGet(store))
		r.Put("/{id}", handleUpdate(store, gen, hub))
		r.Delete("/{id}", handleDelete(store))
		r.Get("/{id}/preview", handlePreview(store, gen))
		r.Get("/{id}/export", handleExport(store, gen))
		r.Post("/{id}/quote", handleQuote(store))
	})
}

// writeError sends a JSON error body. The message goes through the
// encoder, so quotes in wrapped errors cannot break the payload.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := store.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if records == nil {
			records = []Record{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

func handleCreate(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rest menu.Restaurant
		if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if rest.Info.Name == "" {
			writeError(w, http.StatusBadRequest, "restaurant name is required")
			return
		}

		created, err := store.Create(r.Context(), &rest)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := store.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if rec == nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rec)
	}
}

func handleUpdate(store *Store, gen *generator.Generator, hub *preview.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var rest menu.Restaurant
		if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		updated, err := store.Update(r.Context(), id, &rest)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if updated == nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		// Push the regenerated document to any open preview frames.
		if hub != nil && hub.Subscribers(id) > 0 {
			hub.Broadcast(id, gen.Generate(updated.Restaurant))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func handleDelete(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
	}
}

// handlePreview serves the generated document inline, for the editor's
// sandboxed preview iframe.
func handlePreview(store *Store, gen *generator.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := store.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if rec == nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(gen.Generate(rec.Restaurant)))
	}
}

// handleExport serves the generated document as a download and records
// the export.
func handleExport(store *Store, gen *generator.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		rec, err := store.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if rec == nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		doc := gen.Generate(rec.Restaurant)
		if err := store.RecordExport(r.Context(), id, len(doc)); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		filename := generator.Slugify(rec.Restaurant.Info.Name)
		if filename == "" {
			filename = "menu"
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.html"`, filename))
		w.Write([]byte(doc))
	}
}

// quoteRequest is a posted cart plus the chosen order type.
type quoteRequest struct {
	Lines     []order.Line   `json:"lines"`
	OrderType menu.OrderType `json:"orderType"`
}

// quoteResponse mirrors what the generated document computes
// client-side, so the editor can show live totals while editing.
type quoteResponse struct {
	Summary      order.Summary `json:"summary"`
	MeetsMinimum bool          `json:"meetsMinimum"`
	Message      string        `json:"message"`
	SMSLink      string        `json:"smsLink,omitempty"`
	WhatsAppLink string        `json:"whatsappLink,omitempty"`
}

func handleQuote(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := store.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if rec == nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		var req quoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		cs := rec.Restaurant.CartSettings
		orderType := req.OrderType
		if orderType == menu.OrderNone {
			orderType = cs.DefaultOrderType()
		}

		cart := order.FromLines(req.Lines)
		msg := order.CheckoutMessage(rec.Restaurant.Info, cart, cs, orderType)

		resp := quoteResponse{
			Summary:      order.Totals(cart, cs, orderType),
			MeetsMinimum: order.MeetsMinimum(cart, cs),
			Message:      msg,
		}
		if cs.AllowSMSCheckout {
			resp.SMSLink = order.SMSLink(cs.SMSPhone, msg)
		}
		if cs.AllowWhatsAppCheckout {
			resp.WhatsAppLink = order.WhatsAppLink(cs.WhatsAppPhone, msg)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
