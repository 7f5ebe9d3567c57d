package common

import (
	"errors"
	"net/http"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/common/jsoncompat"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
	log "github.com/sirupsen/logrus"
)

// ErrNotFound makes JsonHandler answer 404 with a json error body.
var ErrNotFound = errors.New("not found")

type ErrorResponse struct {
	Error string `json:"error"`
}

type JsonHandlerFunc func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error

func JsonHandler(trk types.Tracking, fn JsonHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}
		sessionId := HandleSessionCookie(trk, w, r)
		TrackPageView(trk, sessionId, r)
		PublicHeaders(w, r, "application/json; charset=UTF-8")

		enc := jsoncompat.NewEncoder(w)
		err := fn(w, r, sessionId, enc)
		if err == nil {
			return
		}
		if errors.Is(err, ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			if encErr := enc.Encode(ErrorResponse{Error: err.Error()}); encErr != nil {
				log.WithError(encErr).Warn("failed to write not found response")
			}
			return
		}
		log.WithError(err).WithField("path", r.URL.Path).Error("error handling request")
		w.WriteHeader(http.StatusInternalServerError)
		_ = enc.Encode(ErrorResponse{Error: "internal error"})
	}
}

// TrackPageView publishes the view in the background when a tracker is set.
func TrackPageView(trk types.Tracking, sessionId string, r *http.Request) {
	if trk == nil {
		return
	}
	view := types.PageViewFromRequest(sessionId, r)
	go func() {
		if err := trk.TrackPageView(view); err != nil {
			log.WithError(err).Warn("failed to track page view")
		}
	}()
}

func PublicHeaders(w http.ResponseWriter, r *http.Request, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, stale-while-revalidate=120")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
	w.WriteHeader(http.StatusAccepted)
}
