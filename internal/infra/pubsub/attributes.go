package pubsub

import (
	"storefront/internal/domain/service"
)

// eventAttributes are the message attributes subscribers filter and trace on.
func eventAttributes(event *service.CartEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"cart_key": event.CartKey,
		"kind":     event.Kind,
	}
	if event.StoreID != "" {
		attributes["store_id"] = event.StoreID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
