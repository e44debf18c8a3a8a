package listings

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
	r.Route("/listings", func(lr chi.Router) {
		lr.Get("/", listListingsHandler(svc))
		lr.Post("/", createListingHandler(svc, dir))
		lr.Patch("/{listingID}", updateListingHandler(svc))
		lr.Delete("/{listingID}", deleteListingHandler(svc))
	})
}

type createListingRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Type        string `json:"type"`
	Image       string `json:"image"`
	Address     string `json:"address"`
}

type updateListingRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Type        *string `json:"type"`
	Image       *string `json:"image"`
	Address     *string `json:"address"`
}

type listingResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price,omitempty"`
	Type        string    `json:"type"`
	Image       string    `json:"image,omitempty"`
	Address     string    `json:"address,omitempty"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func listListingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := actingUser(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]listingResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toListingResponse(l))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createListingHandler(svc *Service, dir engagement.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actingUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		owner, err := dir.AuthorSnapshot(r.Context(), userID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		l, err := svc.Create(r.Context(), owner, CreateInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Type:        req.Type,
			Image:       req.Image,
			Address:     req.Address,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toListingResponse(l))
	}
}

func updateListingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actingUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		l, err := svc.Update(r.Context(), chi.URLParam(r, "listingID"), userID, UpdateInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Type:        req.Type,
			Image:       req.Image,
			Address:     req.Address,
		})
		if err != nil {
			writeListingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toListingResponse(l))
	}
}

func deleteListingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actingUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "listingID"), userID); err != nil {
			writeListingError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeListingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "listing not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func actingUser(r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return claims.UserID, true
}

func toListingResponse(l Listing) listingResponse {
	return listingResponse{
		ID:          l.ID,
		OwnerID:     l.Owner.ID,
		OwnerName:   l.Owner.Name,
		Name:        l.Name,
		Description: l.Description,
		Price:       l.Price,
		Type:        string(l.Type),
		Image:       l.Image,
		Address:     l.Address,
		Likes:       l.Likes,
		Comments:    len(l.Comments),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
