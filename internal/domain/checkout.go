package domain

import (
	"encoding/json"
	"mime"
	"strings"
	"time"
)

// Item is an opaque entry of the items list. Its contents are never inspected.
type Item = json.RawMessage

type CheckoutRequest struct {
	Items []Item `json:"items"`
}

type CheckoutEvent struct {
	Event      string    `json:"event"`
	RequestID  string    `json:"request_id,omitempty"`
	ItemCount  int       `json:"item_count"`
	Items      []Item    `json:"items"`
	ReceivedAt time.Time `json:"received_at"`
}

const CheckoutReceivedEvent = "checkout.received"

const SuccessMessage = "Purchase successful! Thank you for your order."

func NewCheckoutEvent(requestID string, items []Item, at time.Time) CheckoutEvent {
	return CheckoutEvent{
		Event:      CheckoutReceivedEvent,
		RequestID:  requestID,
		ItemCount:  len(items),
		Items:      items,
		ReceivedAt: at.UTC(),
	}
}

// IsJSONContentType accepts application/json and application/*+json, ignoring parameters.
func IsJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	if mediaType == "application/json" {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}

// ParseCheckoutRequest validates a raw request and returns its items in order.
// Every rejection is a *MalformedRequest.
func ParseCheckoutRequest(contentType string, body []byte) ([]Item, error) {
	if !IsJSONContentType(contentType) {
		return nil, malformed(ErrNotJSON)
	}
	if !json.Valid(body) {
		return nil, malformed(ErrInvalidBody)
	}

	// a valid document that is not an object has no "items" field
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, malformed(ErrInvalidItems)
	}

	raw, ok := doc["items"]
	if !ok {
		return nil, malformed(ErrInvalidItems)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, malformed(ErrInvalidItems)
	}
	if len(items) == 0 {
		return nil, malformed(ErrInvalidItems)
	}

	return items, nil
}
