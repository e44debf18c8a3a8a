package messaging

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
	r.Route("/conversations", func(cr chi.Router) {
		cr.Get("/", listConversationsHandler(svc))
		cr.Post("/groups", createGroupHandler(svc))

		cr.Get("/{conversationID}", getConversationHandler(svc))
		cr.Post("/{conversationID}/messages", sendMessageHandler(svc))
		cr.Post("/{conversationID}/read", markReadHandler(svc))
		cr.Delete("/{conversationID}", deleteConversationHandler(svc))
	})
}

type createGroupRequest struct {
	Name      string   `json:"name"`
	Avatar    string   `json:"avatar"`
	MemberIDs []string `json:"member_ids"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type memberResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Avatar    string    `json:"avatar,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type conversationSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar,omitempty"`
	LastMessage  string    `json:"last_message"`
	LastActivity time.Time `json:"last_activity"`
	Unread       int       `json:"unread"`
	IsGroup      bool      `json:"is_group"`
	Members      int       `json:"members"`
}

type conversationDetail struct {
	conversationSummary
	MemberList []memberResponse  `json:"member_list"`
	Messages   []messageResponse `json:"messages"`
}

func listConversationsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]conversationSummary, 0, len(items))
		for _, c := range items {
			out = append(out, toSummary(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getConversationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "conversationID"))
		if err != nil {
			http.Error(w, "conversation not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toDetail(c))
	}
}

func createGroupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.CreateGroup(r.Context(), claims.UserID, req.Name, req.Avatar, req.MemberIDs)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toDetail(c))
	}
}

func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.SendMessage(r.Context(), claims.UserID, chi.URLParam(r, "conversationID"), req.Text)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "conversation not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, messageResponse{
			ID:        m.ID,
			UserID:    m.Author.ID,
			UserName:  m.Author.Name,
			Avatar:    m.Author.Avatar,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
}

func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.MarkRead(r.Context(), chi.URLParam(r, "conversationID")); err != nil {
			http.Error(w, "conversation not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteConversationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "conversationID")); err != nil {
			http.Error(w, "conversation not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func authorized(r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	return ok && strings.TrimSpace(claims.UserID) != ""
}

func toSummary(c Conversation) conversationSummary {
	return conversationSummary{
		ID:           c.ID,
		Name:         c.Name,
		Avatar:       c.Avatar,
		LastMessage:  c.LastMessage,
		LastActivity: c.LastActivity,
		Unread:       c.Unread,
		IsGroup:      c.IsGroup,
		Members:      len(c.Members),
	}
}

func toDetail(c Conversation) conversationDetail {
	members := make([]memberResponse, 0, len(c.Members))
	for _, m := range c.Members {
		members = append(members, memberResponse{ID: m.ID, Name: m.Name, Avatar: m.Avatar})
	}

	msgs := make([]messageResponse, 0, len(c.Messages))
	for _, m := range c.Messages {
		msgs = append(msgs, messageResponse{
			ID:        m.ID,
			UserID:    m.Author.ID,
			UserName:  m.Author.Name,
			Avatar:    m.Author.Avatar,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}

	return conversationDetail{
		conversationSummary: toSummary(c),
		MemberList:          members,
		Messages:            msgs,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
