package rabbitmq

import "context"

// PublisherInterface is what the services depend on; tests swap in a mock.
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

var _ PublisherInterface = (*Publisher)(nil)
