package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petconnect/internal/domain/engagement"
	"petconnect/internal/middleware"
	"petconnect/internal/ports/share"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, dir engagement.Directory, sharer share.Sharer) {
	r.Route("/feed", func(fr chi.Router) {
		fr.Get("/", listFeedHandler(svc))
		fr.Post("/", createPostHandler(svc, dir))
		fr.Delete("/{postID}", deletePostHandler(svc))
		fr.Post("/{postID}/share", sharePostHandler(svc, sharer))
	})
}

type createPostRequest struct {
	Caption string `json:"caption"`
	PetID   string `json:"pet_id"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type postResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	UserName   string            `json:"user_name"`
	UserAvatar string            `json:"user_avatar"`
	PetID      string            `json:"pet_id"`
	PetName    string            `json:"pet_name"`
	PetBreed   string            `json:"pet_breed"`
	PetAvatar  string            `json:"pet_avatar"`
	Image      string            `json:"image"`
	Caption    string            `json:"caption"`
	Likes      int               `json:"likes"`
	Comments   []commentResponse `json:"comments"`
	CreatedAt  time.Time         `json:"created_at"`
}

type shareResponse struct {
	Shared bool   `json:"shared"`
	Notice string `json:"notice,omitempty"`
}

func listFeedHandler(svc *Service) http.HandlerFunc {
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

		out := make([]postResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPostResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createPostHandler(svc *Service, dir engagement.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := actingUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		author, err := dir.AuthorSnapshot(r.Context(), userID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		p, err := svc.Create(r.Context(), author, req.Caption, req.PetID)
		if err != nil {
			switch {
			case errors.Is(err, ErrPetNotOwned):
				http.Error(w, "pet not found among your pets", http.StatusBadRequest)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPostResponse(p))
	}
}

func deletePostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := actingUser(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "postID")); err != nil {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// sharePostHandler arma el payload y lo entrega al sharer. Sin capacidad
// configurada devuelve un aviso de fallback; nunca falla en silencio y
// nunca toca las colecciones.
func sharePostHandler(svc *Service, sharer share.Sharer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := actingUser(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "postID"))
		if err != nil {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}

		payload := share.Payload{
			Title: fmt.Sprintf("Check out %s on PetConnect!", p.Pet.Name),
			Text:  fmt.Sprintf("%q - a post by %s for their pet %s.", p.Caption, p.Author.Name, p.Pet.Name),
			URL:   "https://petconnect.app/post/" + p.ID,
		}

		if sharer == nil {
			writeJSON(w, http.StatusOK, shareResponse{Shared: false, Notice: "Sharing not supported here. Imagine the post is shared!"})
			return
		}

		if err := sharer.Share(r.Context(), payload); err != nil {
			if errors.Is(err, share.ErrUnavailable) {
				writeJSON(w, http.StatusOK, shareResponse{Shared: false, Notice: "Sharing not supported here. Imagine the post is shared!"})
				return
			}
			http.Error(w, "share failed", http.StatusBadGateway)
			return
		}

		writeJSON(w, http.StatusOK, shareResponse{Shared: true})
	}
}

func actingUser(r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return claims.UserID, true
}

func toPostResponse(p Post) postResponse {
	comments := make([]commentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, commentResponse{
			ID:        c.ID,
			UserID:    c.Author.ID,
			UserName:  c.Author.Name,
			Avatar:    c.Author.Avatar,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}

	return postResponse{
		ID:         p.ID,
		UserID:     p.Author.ID,
		UserName:   p.Author.Name,
		UserAvatar: p.Author.Avatar,
		PetID:      p.Pet.ID,
		PetName:    p.Pet.Name,
		PetBreed:   p.Pet.Breed,
		PetAvatar:  p.Pet.Avatar,
		Image:      p.Image,
		Caption:    p.Caption,
		Likes:      p.Likes,
		Comments:   comments,
		CreatedAt:  p.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
