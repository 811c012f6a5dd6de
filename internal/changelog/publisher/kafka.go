// Package publisher sends change log entries to kafka.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"landscape/internal/changelog/models"
)

// Producer is the record sink. internal/platform/kafka.Producer satisfies it.
type Producer interface {
	Publish(ctx context.Context, key, value []byte) error
}

type Kafka struct {
	producer Producer
}

func NewKafka(producer Producer) *Kafka {
	return &Kafka{producer: producer}
}

// Publish writes e as JSON keyed by its parent reference, so all changes to
// one entity land on one partition in order.
func (k *Kafka) Publish(ctx context.Context, e models.Entry) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal change log entry: %w", err)
	}
	if err := k.producer.Publish(ctx, []byte(e.Parent.String()), value); err != nil {
		return fmt.Errorf("publish change log entry: %w", err)
	}
	return nil
}
