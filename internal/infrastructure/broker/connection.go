package broker

import (
	"context"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connect dials RabbitMQ, retrying while the broker is still starting.
func Connect(ctx context.Context, url string, attempts int) (*amqp.Connection, error) {
	if attempts <= 0 {
		attempts = 1
	}
	backoff := 500 * time.Millisecond

	var lastErr error
	for i := 1; i <= attempts; i++ {
		conn, err := amqp.Dial(url)
		if err == nil {
			log.Printf("[broker] connected attempt=%d", i)
			return conn, nil
		}
		lastErr = err
		log.Printf("[broker] dial failed attempt=%d/%d err=%v", i, attempts, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		if backoff < 8*time.Second {
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("connect rabbitmq: %w", lastErr)
}

// CloseNotifier is satisfied by *amqp.Connection and *amqp.Channel.
type CloseNotifier interface {
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
}

// CancelOnClose calls cancel once n closes, unless ctx ends first. Processes
// use it to stop instead of running on without their broker.
func CancelOnClose(ctx context.Context, name string, n CloseNotifier, cancel context.CancelFunc) {
	closed := n.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		select {
		case <-ctx.Done():
		case amqpErr, ok := <-closed:
			if ok && amqpErr != nil {
				log.Printf("[broker] connection lost process=%s code=%d reason=%s", name, amqpErr.Code, amqpErr.Reason)
			} else {
				log.Printf("[broker] connection closed process=%s", name)
			}
			cancel()
		}
	}()
}
