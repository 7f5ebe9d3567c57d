package types

import (
	"net/http"
)

// PageView is captured while the request is alive so it can be published
// after the handler returns.
type PageView struct {
	SessionId string `json:"session_id"`
	Path      string `json:"path"`
	Query     string `json:"query,omitempty"`
	Referer   string `json:"referer,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

func PageViewFromRequest(sessionId string, r *http.Request) PageView {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	return PageView{
		SessionId: sessionId,
		Path:      r.URL.Path,
		Query:     r.URL.RawQuery,
		Referer:   r.Referer(),
		UserAgent: r.UserAgent(),
		Ip:        ip,
		Language:  r.Header.Get("Accept-Language"),
	}
}

type Tracking interface {
	TrackSession(view PageView) error
	TrackPageView(view PageView) error
	Close() error
}
