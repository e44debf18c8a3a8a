package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"petconnect/internal/domain/engagement"
	"petconnect/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, dir engagement.Directory) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/", listReportsHandler(svc))
		rr.Post("/", createReportHandler(svc, dir))
		rr.Delete("/{reportID}", deleteReportHandler(svc))
	})
}

type createReportRequest struct {
	PetName     string `json:"pet_name"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Image       string `json:"image"`
	Breed       string `json:"breed"`
	Description string `json:"description"`
}

type reportResponse struct {
	ID          string    `json:"id"`
	PetName     string    `json:"pet_name"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Date        string    `json:"date,omitempty"`
	Image       string    `json:"image,omitempty"`
	Breed       string    `json:"breed,omitempty"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	UserName    string    `json:"user_name,omitempty"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
}

func listReportsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var filter *Status
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			st, ok := ParseStatus(raw)
			if !ok {
				http.Error(w, "status must be Lost, Found or Adoption", http.StatusBadRequest)
				return
			}
			filter = &st
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]reportResponse, 0, len(items))
		for _, rep := range items {
			out = append(out, toReportResponse(rep))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createReportHandler(svc *Service, dir engagement.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		author, err := dir.AuthorSnapshot(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		rep, err := svc.Create(r.Context(), author, CreateInput{
			PetName:     req.PetName,
			Status:      req.Status,
			Location:    req.Location,
			Date:        req.Date,
			Image:       req.Image,
			Breed:       req.Breed,
			Description: req.Description,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toReportResponse(rep))
	}
}

func deleteReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "reportID")); err != nil {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func authorized(r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	return ok && strings.TrimSpace(claims.UserID) != ""
}

func toReportResponse(rep Report) reportResponse {
	out := reportResponse{
		ID:          rep.ID,
		PetName:     rep.PetName,
		Status:      string(rep.Status),
		Location:    rep.Location,
		Date:        rep.Date,
		Image:       rep.Image,
		Breed:       rep.Breed,
		Description: rep.Description,
		Likes:       rep.Likes,
		Comments:    len(rep.Comments),
		CreatedAt:   rep.CreatedAt,
	}
	if rep.Author != nil {
		out.UserID = rep.Author.ID
		out.UserName = rep.Author.Name
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
