package server

import (
	"context"
	"fmt"
	"time"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/common/jsoncompat"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/messaging"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const reloadTimeout = time.Minute

// CatalogChangeHandler reloads the catalog when a CatalogChanged message
// arrives. Messages without a source reload from fallback.
func (ws *WebServer) CatalogChangeHandler(fallback catalog.Source) func(amqp.Delivery) error {
	return func(d amqp.Delivery) error {
		var change messaging.CatalogChange
		if len(d.Body) > 0 {
			if err := jsoncompat.Unmarshal(d.Body, &change); err != nil {
				return fmt.Errorf("decoding catalog change: %w", err)
			}
		}
		src := fallback
		if change.Source != "" {
			src = catalog.OpenSource(change.Source)
		}
		ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
		defer cancel()
		if err := ws.Reload(ctx, src); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"source": src.String(),
			"reason": change.Reason,
			"items":  ws.Catalog().Len(),
		}).Info("catalog reloaded")
		return nil
	}
}

// ListenForCatalogChanges subscribes to CatalogChanged on conn.
func (ws *WebServer) ListenForCatalogChanges(conn *amqp.Connection, prefix string, fallback catalog.Source) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}
	return messaging.ListenToTopic(ch, prefix, messaging.CatalogChanged, ws.CatalogChangeHandler(fallback))
}
