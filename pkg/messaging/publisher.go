// Package messaging defines the events published by the storefront and the publisher abstraction.
package messaging

import (
	"context"
)

const FavoritesToggledSubject = "storefront.favorites.toggled"

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
