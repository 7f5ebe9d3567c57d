package common

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
	log "github.com/sirupsen/logrus"
)

const SessionCookieName = "sid"

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionId string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionId,
		Domain:   strings.TrimPrefix(hostWithoutPort(r.Host), "."),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 365,
		Path:     "/",
	})
}

func hostWithoutPort(host string) string {
	if idx := strings.LastIndexByte(host, ':'); idx >= 0 && !strings.HasSuffix(host, "]") {
		return host[:idx]
	}
	return host
}

// HandleSessionCookie returns the session id of the request, issuing a new
// one when the cookie is missing or malformed.
func HandleSessionCookie(trk types.Tracking, w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	sessionId := uuid.NewString()
	setSessionCookie(w, r, sessionId)
	if trk != nil {
		view := types.PageViewFromRequest(sessionId, r)
		go func() {
			if err := trk.TrackSession(view); err != nil {
				log.WithError(err).Warn("failed to track session")
			}
		}()
	}
	return sessionId
}
