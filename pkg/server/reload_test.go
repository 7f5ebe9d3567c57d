package server

import (
	"testing"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
	amqp "github.com/rabbitmq/amqp091-go"
)

func TestCatalogChangeHandler(t *testing.T) {
	empty, _ := catalog.New(nil, nil, nil, nil)
	ws := NewWebServer(empty, Options{})
	handler := ws.CatalogChangeHandler(testSource)

	if err := handler(amqp.Delivery{}); err != nil {
		t.Fatalf("Expected reload from fallback, got %v", err)
	}
	if ws.Catalog().Len() != 4 {
		t.Errorf("Expected 4 items after reload, got %d", ws.Catalog().Len())
	}

	body := []byte(`{"source":"` + t.TempDir() + `","reason":"test"}`)
	if err := handler(amqp.Delivery{Body: body}); err == nil {
		t.Errorf("Expected error reloading from an empty directory")
	}
	if err := handler(amqp.Delivery{Body: []byte("{")}); err == nil {
		t.Errorf("Expected decode error")
	}
	if ws.Catalog().Len() != 4 {
		t.Errorf("Expected failed reloads to keep the catalog")
	}
}
