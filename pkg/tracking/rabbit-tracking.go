package tracking

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/common"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/messaging"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const (
	BatchSize     = 50
	FlushInterval = 5 * time.Second
)

// RabbitTracking publishes events in batches on the page views topic.
type RabbitTracking struct {
	prefix     string
	connection *amqp.Connection
	queue      *common.QueueHandler[Event]
}

func NewRabbitTracking(url, prefix string) (*RabbitTracking, error) {
	ret := RabbitTracking{
		prefix: prefix,
	}
	if err := ret.connect(url); err != nil {
		return nil, err
	}
	ret.queue = newEventQueue(ret.send, nil)
	return &ret, nil
}

func newEventQueue(publish func([]Event) error, clk clock.Clock) *common.QueueHandler[Event] {
	return common.NewQueueHandler(func(events []Event) {
		if err := publish(events); err != nil {
			log.WithError(err).WithField("events", len(events)).Error("failed to publish tracking events")
		}
	}, BatchSize, FlushInterval, clk)
}

type amqpConnection interface {
	Channel() (*amqp.Channel, error)
	Close() error
}

// prepare declares the page views topic on conn and closes conn when that
// fails.
func prepare(conn amqpConnection, prefix string) error {
	err := func() error {
		ch, err := conn.Channel()
		if err != nil {
			return fmt.Errorf("opening channel: %w", err)
		}
		defer ch.Close()
		return messaging.DefineTopic(ch, prefix, messaging.PageViews)
	}()
	if err != nil {
		conn.Close()
		return err
	}
	return nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Properties: amqp.NewConnectionProperties(),
	})
	if err != nil {
		return fmt.Errorf("connecting to rabbitmq: %w", err)
	}
	if err := prepare(conn, t.prefix); err != nil {
		return err
	}
	t.connection = conn
	return nil
}

// Close publishes queued events and closes the connection.
func (t *RabbitTracking) Close() error {
	t.queue.Close()
	return t.connection.Close()
}

func (t *RabbitTracking) send(events []Event) error {
	return messaging.SendChange(t.connection, t.prefix, messaging.PageViews, events)
}

func (t *RabbitTracking) TrackSession(view types.PageView) error {
	t.queue.Add(NewEvent(SessionEvent, view))
	return nil
}

func (t *RabbitTracking) TrackPageView(view types.PageView) error {
	t.queue.Add(NewEvent(PageViewEvent, view))
	return nil
}
