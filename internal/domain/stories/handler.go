package stories

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"petconnect/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/stories", listStoriesHandler(svc))
}

type storyResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar"`
	Image      string    `json:"image"`
	CreatedAt  time.Time `json:"created_at"`

	// DisplaySeconds le dice al viewer cuánto mostrar antes del auto-dismiss.
	DisplaySeconds int `json:"display_seconds"`
}

func listStoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]storyResponse, 0, len(items))
		for _, st := range items {
			out = append(out, storyResponse{
				ID:             st.ID,
				UserID:         st.Author.ID,
				UserName:       st.Author.Name,
				UserAvatar:     st.Author.Avatar,
				Image:          st.Image,
				CreatedAt:      st.CreatedAt,
				DisplaySeconds: int(DisplayDuration.Seconds()),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
