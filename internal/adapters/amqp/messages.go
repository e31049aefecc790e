package amqp

import (
	"encoding/json"
	"time"
)

// AggregateUpdatedMessage signals that a customer's data changed upstream and
// the snapshot should be re-fetched. The payload is informational only; any
// message on the queue triggers a refresh.
type AggregateUpdatedMessage struct {
	CustomerID string    `json:"customerId"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToJSON serializes the message.
func (m AggregateUpdatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// AggregateUpdatedFromJSON parses an aggregate-updated message body.
func AggregateUpdatedFromJSON(body []byte) (AggregateUpdatedMessage, error) {
	var msg AggregateUpdatedMessage
	err := json.Unmarshal(body, &msg)
	return msg, err
}
