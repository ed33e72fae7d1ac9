package messaging

import (
	"context"
	"fmt"
	"log"
	"strings"

	"storefront_settlement/internal/infrastructure/broker"

	"golang.org/x/sync/errgroup"
)

// Subscription binds a named consumer to its queue and handler.
type Subscription struct {
	Name    string
	Binding broker.Binding
	Handler broker.Handler
}

// ChannelOpener opens a dedicated channel per consumer.
type ChannelOpener func() (broker.Channel, error)

// Select keeps the subscriptions named in a comma-separated list. An empty
// list keeps all of them.
func Select(subs []Subscription, names string) ([]Subscription, error) {
	names = strings.TrimSpace(names)
	if names == "" {
		return subs, nil
	}

	byName := make(map[string]Subscription, len(subs))
	for _, s := range subs {
		byName[s.Name] = s
	}
	var out []Subscription
	seen := make(map[string]bool)
	for _, n := range strings.Split(names, ",") {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		s, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("unknown consumer %q", n)
		}
		seen[n] = true
		out = append(out, s)
	}
	return out, nil
}

// RunAll runs every subscription on its own channel and returns when ctx is
// cancelled or the first consumer fails.
func RunAll(ctx context.Context, open ChannelOpener, subs []Subscription, prefetch, deliveryLimit int) error {
	channels := make([]broker.Channel, 0, len(subs))
	for _, s := range subs {
		ch, err := open()
		if err != nil {
			for _, opened := range channels {
				_ = opened.Close()
			}
			return fmt.Errorf("open channel for %s: %w", s.Name, err)
		}
		channels = append(channels, ch)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range subs {
		ch := channels[i]
		c := broker.NewConsumer(ch, s.Binding, s.Name, prefetch, deliveryLimit)
		h := s.Handler
		name := s.Name
		g.Go(func() error {
			defer ch.Close()
			if err := c.Run(ctx, h); err != nil {
				log.Printf("[%s][consumer] stopped err=%v", name, err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}
