// Package webshare publica payloads de compartir en un relay HTTP.
// Sin relay configurado el sharer reporta no-disponible, igual que un
// navegador sin la API de share.
package webshare

import (
	"context"
	"net/http"
	"strings"
	"time"

	"petconnect/internal/platform/httpclient"
	"petconnect/internal/ports/share"
)

type Sharer struct {
	client *httpclient.Client
}

func New(relayURL string, timeout time.Duration) (*Sharer, error) {
	if strings.TrimSpace(relayURL) == "" {
		return &Sharer{}, nil
	}

	c, err := httpclient.NewWithBaseURL(relayURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Sharer{client: c}, nil
}

type sharePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

func (s *Sharer) Share(ctx context.Context, p share.Payload) error {
	if s == nil || s.client == nil {
		return share.ErrUnavailable
	}

	return s.client.DoJSON(ctx, http.MethodPost, "/share", nil, sharePayload{
		Title: p.Title,
		Text:  p.Text,
		URL:   p.URL,
	}, nil)
}
