package results

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const publishAttempts = 3

type conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NatsPublisher publishes each summary as JSON on a NATS subject.
type NatsPublisher struct {
	nc      conn
	subject string
}

func NewNatsPublisher(url, subject string) (*NatsPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("klondike-autoplay"))
	if err != nil {
		return nil, fmt.Errorf("connecting to nats at %s: %w", url, err)
	}
	return &NatsPublisher{nc: nc, subject: subject}, nil
}

func (p *NatsPublisher) Publish(ctx context.Context, s Summary) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	logger := zerolog.Ctx(ctx)
	return retry.Do(
		func() error {
			return p.nc.Publish(p.subject, data)
		},
		retry.Context(ctx),
		retry.Attempts(publishAttempts),
		retry.Delay(10*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			logger.Err(err).Uint("n", n).Str("deal", s.DealID).Msg("publish-failed-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

// Close flushes anything still buffered and closes the connection.
func (p *NatsPublisher) Close() error {
	return p.nc.Drain()
}
