package notifications

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
	r.Route("/notifications", func(nr chi.Router) {
		nr.Get("/", listNotificationsHandler(svc))
		nr.Post("/read-all", markAllReadHandler(svc))
		nr.Post("/{notificationID}/accept", acceptInviteHandler(svc))
		nr.Post("/{notificationID}/reject", rejectInviteHandler(svc))
	})
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`

	RelatedUserName   string `json:"related_user_name,omitempty"`
	RelatedUserAvatar string `json:"related_user_avatar,omitempty"`

	GroupID   string `json:"group_id,omitempty"`
	GroupName string `json:"group_name,omitempty"`
}

type listNotificationsResponse struct {
	Items  []notificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}

func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := listNotificationsResponse{Items: make([]notificationResponse, 0, len(items))}
		for _, n := range items {
			if !n.IsRead {
				out.Unread++
			}
			out.Items = append(out.Items, toNotificationResponse(n))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func markAllReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		marked, err := svc.MarkAllRead(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"marked": marked})
	}
}

func acceptInviteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		err := svc.AcceptInvite(r.Context(), chi.URLParam(r, "notificationID"), claims.UserID)
		if err != nil {
			writeNotificationError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func rejectInviteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.RejectInvite(r.Context(), chi.URLParam(r, "notificationID")); err != nil {
			writeNotificationError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeNotificationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "notification not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func authorized(r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	return ok && strings.TrimSpace(claims.UserID) != ""
}

func toNotificationResponse(n Notification) notificationResponse {
	out := notificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Text:      n.Text,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		GroupID:   n.GroupID,
		GroupName: n.GroupName,
	}
	if n.RelatedUser != nil {
		out.RelatedUserName = n.RelatedUser.Name
		out.RelatedUserAvatar = n.RelatedUser.Avatar
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
