package places

import (
	"encoding/json"
	"net/http"
	"strings"

	"petconnect/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/places", listPlacesHandler(svc))
}

type placeResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Address         string `json:"address"`
	Distance        string `json:"distance,omitempty"`
	Image           string `json:"image,omitempty"`
	Likes           int    `json:"likes"`
	Comments        int    `json:"comments"`
	BusinessService bool   `json:"business_service"`
}

func listPlacesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var business *bool
		switch strings.TrimSpace(r.URL.Query().Get("business")) {
		case "":
		case "true":
			v := true
			business = &v
		case "false":
			v := false
			business = &v
		default:
			http.Error(w, "business must be true or false", http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), business)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]placeResponse, 0, len(items))
		for _, p := range items {
			out = append(out, placeResponse{
				ID:              p.ID,
				Name:            p.Name,
				Category:        p.Category,
				Address:         p.Address,
				Distance:        p.Distance,
				Image:           p.Image,
				Likes:           p.Likes,
				Comments:        len(p.Comments),
				BusinessService: p.BusinessService,
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
