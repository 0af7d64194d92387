// Package nats connects the storefront to a NATS JetStream broker.
package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/abgdnv/storefront/pkg/messaging"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const favoritesStream = "STOREFRONT_FAVORITES"

func NewClient(url string, timeout time.Duration) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Timeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

func NewJetStreamContext(nc *nats.Conn) (jetstream.JetStream, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}
	return js, nil
}

// EnsureFavoritesStream creates or updates the stream capturing favorites events.
func EnsureFavoritesStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     favoritesStream,
		Subjects: []string{messaging.FavoritesToggledSubject},
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", favoritesStream, err)
	}
	return nil
}
