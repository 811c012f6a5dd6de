// Package kafka holds the franz-go producer used to fan change events out
// to downstream consumers.
package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"landscape/internal/platform/config"
)

// Producer writes records to a single topic.
type Producer struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewProducer connects to the configured brokers. It returns nil when no
// brokers are configured.
func NewProducer(cfg config.Kafka, logger *slog.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.ChangeLogTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Producer{client: client, topic: cfg.ChangeLogTopic, logger: logger}, nil
}

// EnsureTopic creates the topic when the cluster does not have it yet.
func (p *Producer) EnsureTopic(ctx context.Context, partitions int32, replication int16) error {
	adm := kadm.NewClient(p.client)
	topics, err := adm.ListTopics(ctx, p.topic)
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}
	if d, ok := topics[p.topic]; ok && d.Err == nil {
		return nil
	}
	resp, err := adm.CreateTopic(ctx, partitions, replication, nil, p.topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", p.topic, err)
	}
	if resp.Err != nil {
		return fmt.Errorf("create topic %s: %w", p.topic, resp.Err)
	}
	p.logger.InfoContext(ctx, "kafka topic created", "topic", p.topic, "partitions", partitions)
	return nil
}

// Publish writes one record and waits for the broker acknowledgement.
func (p *Producer) Publish(ctx context.Context, key, value []byte) error {
	rec := &kgo.Record{Topic: p.topic, Key: key, Value: value}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", p.topic, err)
	}
	return nil
}

// Ping checks that at least one broker is reachable.
func (p *Producer) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close flushes buffered records and closes the client.
func (p *Producer) Close() {
	p.client.Close()
}
