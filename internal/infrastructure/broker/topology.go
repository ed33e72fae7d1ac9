package broker

import (
	"fmt"

	"storefront_settlement/internal/domain/events"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	QueueOrdersPaymentSuccess = "orders.payment-success"
	QueueOrdersOrderStatus    = "orders.order-status"
	QueueDeliveryOrderCreated = "delivery.order-created"
	QueueGatewayOrderStatus   = "gateway.order-status"

	DefaultDeliveryLimit = 5
	DefaultPrefetch      = 10
)

// Binding ties a consumer queue to one routing key on a topic exchange.
type Binding struct {
	Queue      string
	Exchange   string
	RoutingKey string
}

var (
	OrdersPaymentSuccess = Binding{Queue: QueueOrdersPaymentSuccess, Exchange: events.ExchangePayment, RoutingKey: events.RoutingKeyPaymentSuccess}
	OrdersOrderStatus    = Binding{Queue: QueueOrdersOrderStatus, Exchange: events.ExchangeOrders, RoutingKey: events.RoutingKeyOrderStatusChanged}
	DeliveryOrderCreated = Binding{Queue: QueueDeliveryOrderCreated, Exchange: events.ExchangeOrders, RoutingKey: events.RoutingKeyOrderCreated}
	GatewayOrderStatus   = Binding{Queue: QueueGatewayOrderStatus, Exchange: events.ExchangeOrders, RoutingKey: events.RoutingKeyOrderStatusChanged}
)

// Channel is the subset of *amqp.Channel the broker package drives.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

var _ Channel = (*amqp.Channel)(nil)

// DeclareExchanges asserts the two topic exchanges. Producers only ever
// declare exchanges; queues belong to their consumers.
func DeclareExchanges(ch Channel) error {
	for _, name := range []string{events.ExchangePayment, events.ExchangeOrders} {
		if err := ch.ExchangeDeclare(name, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare exchange %s: %w", name, err)
		}
	}
	return nil
}

// DeclareConsumerQueue declares a durable quorum queue bound to b, plus its
// dead-letter exchange and queue (<queue>.dlx / <queue>.dlq). Messages
// rejected without requeue, or redelivered more than deliveryLimit times,
// end up in the dead-letter queue.
func DeclareConsumerQueue(ch Channel, b Binding, deliveryLimit int) error {
	if deliveryLimit <= 0 {
		deliveryLimit = DefaultDeliveryLimit
	}
	dlx := b.Queue + ".dlx"
	dlq := b.Queue + ".dlq"

	if err := DeclareExchanges(ch); err != nil {
		return err
	}
	if err := ch.ExchangeDeclare(dlx, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dead-letter exchange %s: %w", dlx, err)
	}
	if _, err := ch.QueueDeclare(dlq, true, false, false, false, amqp.Table{
		amqp.QueueTypeArg: amqp.QueueTypeQuorum,
	}); err != nil {
		return fmt.Errorf("declare dead-letter queue %s: %w", dlq, err)
	}
	if err := ch.QueueBind(dlq, "", dlx, false, nil); err != nil {
		return fmt.Errorf("bind dead-letter queue %s: %w", dlq, err)
	}

	if _, err := ch.QueueDeclare(b.Queue, true, false, false, false, amqp.Table{
		amqp.QueueTypeArg:        amqp.QueueTypeQuorum,
		"x-delivery-limit":       deliveryLimit,
		"x-dead-letter-exchange": dlx,
	}); err != nil {
		return fmt.Errorf("declare queue %s: %w", b.Queue, err)
	}
	if err := ch.QueueBind(b.Queue, b.RoutingKey, b.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s to %s/%s: %w", b.Queue, b.Exchange, b.RoutingKey, err)
	}
	return nil
}
