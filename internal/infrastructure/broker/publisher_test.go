package broker

import (
	"encoding/json"
	"testing"

	"storefront_settlement/internal/domain/events"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublishing(t *testing.T) {
	msg, err := newPublishing(events.PaymentSucceeded{SchemaVersion: 1, OrderID: "O1", PaymentID: "O1", Amount: 5000, Status: "completed"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.NotEmpty(t, msg.MessageId)
	assert.Equal(t, "payment.success", msg.Type)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "O1", body["orderId"])
	assert.Equal(t, "O1", body["paymentId"])
	assert.Equal(t, float64(5000), body["amount"])
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, float64(1), body["schemaVersion"])

	other, err := newPublishing(events.OrderStatusChanged{OrderID: "O1", Status: "pending"})
	require.NoError(t, err)
	assert.NotEqual(t, msg.MessageId, other.MessageId)
}
