package tracking

import (
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
	log "github.com/sirupsen/logrus"
)

type EventType uint16

const (
	SessionEvent  EventType = 0
	PageViewEvent EventType = 1
)

type Event struct {
	Event EventType `json:"event"`
	types.PageView
}

func NewEvent(event EventType, view types.PageView) Event {
	return Event{Event: event, PageView: view}
}

// LogTracking writes events to the log, used when no broker is configured.
type LogTracking struct {
	Logger log.FieldLogger
}

func NewLogTracking() *LogTracking {
	return &LogTracking{Logger: log.StandardLogger()}
}

func (t *LogTracking) log(event EventType, view types.PageView) {
	t.Logger.WithFields(log.Fields{
		"event":   event,
		"session": view.SessionId,
		"path":    view.Path,
		"referer": view.Referer,
	}).Debug("tracking event")
}

func (t *LogTracking) TrackSession(view types.PageView) error {
	t.log(SessionEvent, view)
	return nil
}

func (t *LogTracking) TrackPageView(view types.PageView) error {
	t.log(PageViewEvent, view)
	return nil
}

func (t *LogTracking) Close() error {
	return nil
}
