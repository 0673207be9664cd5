//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/segmentio/kafka-go"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
)

var reTopicUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Broker: Redpanda в контейнере: Kafka-совместимый брокер для тестов консьюмера.
type Broker struct {
	Container *redpanda.Container
	Brokers   []string
	prefix    string
	client    *kafka.Client
}

// StartBroker поднимает Redpanda (образ CARB_TEST_REDPANDA_IMAGE); prefix: префикс имён топиков.
func StartBroker(ctx context.Context, prefix string) (*Broker, func(context.Context) error, error) {
	rp, err := redpanda.Run(
		ctx,
		image("CARB_TEST_REDPANDA_IMAGE", defaultRedpandaImage),
		tc.WithLifecycleHooks(lifecycleLog(tcLogger)),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	b := &Broker{
		Container: rp,
		Brokers:   []string{seed},
		prefix:    prefix,
		client:    &kafka.Client{Addr: kafka.TCP(seed), Timeout: 10 * time.Second},
	}
	stop := func(context.Context) error { return tc.TerminateContainer(rp) }
	return b, stop, nil
}

// NewTopic: создаёт уникальный топик с одной партицией и ждёт его в метаданных.
// Группа консьюмера получает то же имя.
func (b *Broker) NewTopic(ctx context.Context, name string) (topic, group string, err error) {
	topic = fmt.Sprintf("%s-%s-%s", b.prefix, reTopicUnsafe.ReplaceAllString(name, "-"), UniqSuffix())

	resp, err := b.client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return "", "", fmt.Errorf("create topic %q: %w", topic, err)
	}
	if tErr := resp.Errors[topic]; tErr != nil && !errors.Is(tErr, kafka.TopicAlreadyExists) {
		return "", "", fmt.Errorf("create topic %q: %w", topic, tErr)
	}

	if err := b.waitTopic(ctx, topic, 10*time.Second); err != nil {
		return "", "", err
	}
	return topic, topic, nil
}

func (b *Broker) waitTopic(ctx context.Context, topic string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		meta, err := b.client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		if err == nil {
			for _, t := range meta.Topics {
				if t.Name == topic && t.Error == nil && len(t.Partitions) > 0 {
					return nil
				}
			}
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("topic %q not ready", topic)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// Publish: пишет сообщения в топик с подтверждением от всех реплик.
func (b *Broker) Publish(ctx context.Context, topic string, payloads ...[]byte) error {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(b.Brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireAll,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: false,
	}
	defer w.Close()

	msgs := make([]kafka.Message, 0, len(payloads))
	for _, p := range payloads {
		msgs = append(msgs, kafka.Message{Value: p})
	}
	if err := w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish to %q: %w", topic, err)
	}
	return nil
}
