package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func sampleEvent() *service.CartEvent {
	return &service.CartEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		CartKey:    "cart",
		Kind:       "add_to_cart",
		StoreID:    "s1",
		LineCount:  1,
		ItemCount:  3,
		GrandTotal: "69.00",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishCartEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	require.NoError(t, publisher.PublishCartEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"cart_key":   "cart",
		"kind":       "add_to_cart",
		"store_id":   "s1",
		"request_id": "req-1",
	}, received.Message.Attributes)

	payload, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.CartEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "69.00", event.GrandTotal)
	assert.Equal(t, 3, event.ItemCount)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.PublishCartEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "502")
}

func TestEventAttributes_OmitsEmptyOptionalFields(t *testing.T) {
	event := sampleEvent()
	event.StoreID = ""
	event.RequestID = ""

	attributes := eventAttributes(event)
	assert.NotContains(t, attributes, "store_id")
	assert.NotContains(t, attributes, "request_id")
	assert.Equal(t, "add_to_cart", attributes["kind"])
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8085/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.Default(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.cfg == nil || tt.cfg.Provider == "" {
				assert.NoError(t, publisher.PublishCartEvent(context.Background(), sampleEvent()))
			}
			assert.NoError(t, publisher.Close())
		})
	}
}
