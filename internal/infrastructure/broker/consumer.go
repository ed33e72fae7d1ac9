package broker

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Handler applies one message body. Returning an error wrapped with
// Permanent dead-letters the message; any other error requeues it.
type Handler func(ctx context.Context, body []byte) error

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}

// Consumer drives one queue on its own channel.
type Consumer struct {
	ch            Channel
	binding       Binding
	name          string
	prefetch      int
	deliveryLimit int
}

func NewConsumer(ch Channel, binding Binding, name string, prefetch, deliveryLimit int) *Consumer {
	if prefetch <= 0 {
		prefetch = DefaultPrefetch
	}
	return &Consumer{ch: ch, binding: binding, name: name, prefetch: prefetch, deliveryLimit: deliveryLimit}
}

// Run declares the queue and processes deliveries sequentially until ctx is
// cancelled or the channel closes. A failing message never stops the loop.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	if err := DeclareConsumerQueue(c.ch, c.binding, c.deliveryLimit); err != nil {
		return err
	}
	if err := c.ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos on %s: %w", c.binding.Queue, err)
	}
	deliveries, err := c.ch.Consume(c.binding.Queue, c.name, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.binding.Queue, err)
	}
	log.Printf("[broker][consumer] started queue=%s consumer=%s prefetch=%d", c.binding.Queue, c.name, c.prefetch)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[broker][consumer] stopping queue=%s", c.binding.Queue)
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed for %s", c.binding.Queue)
			}
			err := c.safeHandle(ctx, handle, d.Body)
			switch {
			case err == nil:
				if ackErr := d.Ack(false); ackErr != nil {
					log.Printf("[broker][consumer] ack failed queue=%s message_id=%s err=%v", c.binding.Queue, d.MessageId, ackErr)
				}
			case IsPermanent(err):
				log.Printf("[broker][consumer] dead-lettering queue=%s message_id=%s err=%v", c.binding.Queue, d.MessageId, err)
				if rejErr := d.Reject(false); rejErr != nil {
					log.Printf("[broker][consumer] reject failed queue=%s message_id=%s err=%v", c.binding.Queue, d.MessageId, rejErr)
				}
			default:
				log.Printf("[broker][consumer] requeueing queue=%s message_id=%s redelivered=%t err=%v", c.binding.Queue, d.MessageId, d.Redelivered, err)
				if nackErr := d.Nack(false, true); nackErr != nil {
					log.Printf("[broker][consumer] nack failed queue=%s message_id=%s err=%v", c.binding.Queue, d.MessageId, nackErr)
				}
			}
		}
	}
}

func (c *Consumer) safeHandle(ctx context.Context, handle Handler, body []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Permanent(fmt.Errorf("handler panic: %v", r))
		}
	}()
	return handle(ctx, body)
}
