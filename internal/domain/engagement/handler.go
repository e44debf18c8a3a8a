package engagement

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"petconnect/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/likes", func(lr chi.Router) {
		lr.Get("/{kind}", listLikedHandler(svc))
		lr.Post("/{kind}/{itemID}", toggleLikeHandler(svc))
	})

	r.Post("/comments/{kind}/{itemID}", addCommentHandler(svc))
}

type toggleLikeResponse struct {
	ItemID string `json:"item_id"`
	Liked  bool   `json:"liked"`
	Likes  int    `json:"likes"`
}

type addCommentRequest struct {
	Text string `json:"text"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func toggleLikeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		kind, err := ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			http.Error(w, "unknown kind", http.StatusBadRequest)
			return
		}

		liked, likes, err := svc.ToggleLike(r.Context(), claims.UserID, kind, chi.URLParam(r, "itemID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "item not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toggleLikeResponse{
			ItemID: chi.URLParam(r, "itemID"),
			Liked:  liked,
			Likes:  likes,
		})
	}
}

func addCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		kind, err := ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			http.Error(w, "unknown kind", http.StatusBadRequest)
			return
		}

		var req addCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.AddComment(r.Context(), claims.UserID, kind, chi.URLParam(r, "itemID"), req.Text)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "item not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, commentResponse{
			ID:        c.ID,
			UserID:    c.Author.ID,
			UserName:  c.Author.Name,
			Avatar:    c.Author.Avatar,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}
}

func listLikedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		kind, err := ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			http.Error(w, "unknown kind", http.StatusBadRequest)
			return
		}

		ids, err := svc.LikedSet(r.Context(), claims.UserID, kind)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"kind": string(kind), "item_ids": ids})
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// igual que en el resto del proyecto: extraer un helper común recién vale
// la pena si la firma necesita crecer.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
