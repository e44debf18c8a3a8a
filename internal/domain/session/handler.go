package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"petconnect/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/session", func(sr chi.Router) {
		sr.Get("/", currentSessionHandler(svc))
		sr.Post("/login", loginHandler(svc))
		sr.Post("/logout", logoutHandler(svc))
		sr.Post("/navigate", navigateHandler(svc))
		sr.Post("/panel", togglePanelHandler(svc))
	})
}

type stateResponse struct {
	UserID               string `json:"user_id"`
	LoggedIn             bool   `json:"logged_in"`
	Screen               string `json:"screen"`
	SelectedPetID        string `json:"selected_pet_id,omitempty"`
	SelectedListingID    string `json:"selected_listing_id,omitempty"`
	ActiveConversationID string `json:"active_conversation_id,omitempty"`
	NotificationsOpen    bool   `json:"notifications_open"`
}

func currentSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st, err := svc.Current(r.Context(), userID)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st, err := svc.Login(r.Context(), userID)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Logout(r.Context(), userID); err != nil {
			writeSessionError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type navigateRequest struct {
	Screen    string `json:"screen"`
	ContextID string `json:"context_id"`
}

func navigateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req navigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}

		screen, ok := ParseScreen(req.Screen)
		if !ok {
			http.Error(w, "unknown screen", http.StatusBadRequest)
			return
		}

		st, err := svc.Navigate(r.Context(), userID, screen, req.ContextID)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

func togglePanelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st, err := svc.TogglePanel(r.Context(), userID)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStateResponse(st))
	}
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func currentUser(r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return claims.UserID, true
}

func toStateResponse(st State) stateResponse {
	return stateResponse{
		UserID:               st.UserID,
		LoggedIn:             st.LoggedIn,
		Screen:               string(st.Screen),
		SelectedPetID:        st.SelectedPetID,
		SelectedListingID:    st.SelectedListingID,
		ActiveConversationID: st.ActiveConversationID,
		NotificationsOpen:    st.NotificationsOpen,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
