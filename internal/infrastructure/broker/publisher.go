package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"storefront_settlement/internal/domain/events"
	"storefront_settlement/internal/usecase/interfaces"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishNotConfirmed = errors.New("broker did not confirm publish")

// Publisher publishes persistent JSON events and waits for the broker's
// confirm before returning. An AMQP channel is not safe for concurrent
// publishes, so calls are serialized. A channel closed by the broker is
// reopened on the next publish.
type Publisher struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ interfaces.IEventPublisher = (*Publisher)(nil)

func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := openConfirmChannel(conn)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

func openConfirmChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open publisher channel: %w", err)
	}
	if err := DeclareExchanges(ch); err != nil {
		_ = ch.Close()
		return nil, err
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	return ch, nil
}

// channel returns a live confirm channel. Callers hold mu.
func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	log.Printf("[broker][publisher] channel closed, reopening")
	ch, err := openConfirmChannel(p.conn)
	if err != nil {
		return nil, err
	}
	p.ch = ch
	return ch, nil
}

func (p *Publisher) Publish(ctx context.Context, e events.Event) error {
	msg, err := newPublishing(e)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		log.Printf("[broker][publisher] no channel exchange=%s key=%s order_id=%s err=%v", e.Exchange(), e.RoutingKey(), e.PartitionKey(), err)
		return err
	}
	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, e.Exchange(), e.RoutingKey(), false, false, msg)
	if err != nil {
		log.Printf("[broker][publisher] publish failed exchange=%s key=%s order_id=%s err=%v", e.Exchange(), e.RoutingKey(), e.PartitionKey(), err)
		return err
	}
	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		log.Printf("[broker][publisher] publish nacked exchange=%s key=%s order_id=%s", e.Exchange(), e.RoutingKey(), e.PartitionKey())
		return ErrPublishNotConfirmed
	}
	log.Printf("[broker][publisher] published exchange=%s key=%s order_id=%s message_id=%s", e.Exchange(), e.RoutingKey(), e.PartitionKey(), msg.MessageId)
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil || p.ch.IsClosed() {
		return nil
	}
	return p.ch.Close()
}

func newPublishing(e events.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal %s: %w", e.RoutingKey(), err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         e.RoutingKey(),
		Body:         body,
	}, nil
}
