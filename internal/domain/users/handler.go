package users

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"petconnect/internal/domain/pets"
	"petconnect/internal/domain/session"
	"petconnect/internal/middleware"
	"petconnect/internal/ports/capture"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, sessSvc *session.Service, cam capture.Camera) {
	r.Get("/users", listUsersHandler(svc))
	r.Get("/users/{userID}", getUserHandler(svc))

	r.Route("/me", func(mr chi.Router) {
		mr.Get("/", getMeHandler(svc))
		mr.Patch("/", updateMeHandler(svc))
		mr.Delete("/", deleteAccountHandler(svc, petsSvc, sessSvc))
		mr.Post("/avatar/capture", captureAvatarHandler(svc, cam))
	})
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type updateMeRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name     *string `json:"name"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func updateMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateMeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.UpdateProfile(r.Context(), userID, UpdateInput{
			Name:     req.Name,
			Avatar:   req.Avatar,
			Bio:      req.Bio,
			Location: req.Location,
			Email:    req.Email,
			Phone:    req.Phone,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "user not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// deleteAccountHandler orquesta el reset completo: identidad seed,
// mascotas seed y sesión deslogueada de vuelta en Home.
func deleteAccountHandler(svc *Service, petsSvc *pets.Service, sessSvc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if _, err := svc.ResetAccount(r.Context(), userID); err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		if err := petsSvc.ResetOwner(r.Context(), userID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if err := sessSvc.Logout(r.Context(), userID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// captureAvatarHandler toma un frame de la cámara y lo fija como avatar.
// El stream se libera en todos los caminos de salida (defer), también
// cuando la lectura o el update fallan.
func captureAvatarHandler(svc *Service, cam capture.Camera) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if cam == nil {
			http.Error(w, "camera not available", http.StatusServiceUnavailable)
			return
		}

		stream, err := cam.Open(r.Context())
		if err != nil {
			if errors.Is(err, capture.ErrPermissionDenied) {
				http.Error(w, "camera permission denied", http.StatusForbidden)
				return
			}
			http.Error(w, "camera not available", http.StatusServiceUnavailable)
			return
		}
		defer stream.Close()

		frame, err := io.ReadAll(io.LimitReader(stream, 4<<20)) // 4MB max
		if err != nil || len(frame) == 0 {
			http.Error(w, "camera capture failed", http.StatusBadGateway)
			return
		}

		avatar := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(frame)
		u, err := svc.UpdateProfile(r.Context(), userID, UpdateInput{Avatar: &avatar})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func currentUser(r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return claims.UserID, true
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		Location:  u.Location,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
