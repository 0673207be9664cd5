package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Gunvolt24/carb_validation/pkg/ctxmeta"
	"github.com/Gunvolt24/carb_validation/pkg/metrics"
	"github.com/Gunvolt24/carb_validation/pkg/telemetry"
	"github.com/Gunvolt24/carb_validation/pkg/validate"
)

type outcome int

const (
	outcomeSaved   outcome = iota // запись сохранена → коммит
	outcomeSkipped                // запись отвергнута навсегда → коммит
	outcomeRetry                  // временная ошибка → без коммита
)

// process: обработка одного сообщения в собственном спане и с request_id вида topic/partition/offset.
func (c *Consumer) process(ctx context.Context, topic string, msg *kafka.Message) outcome {
	ctx = ctxmeta.WithBoundary(ctx, ctxmeta.BoundaryIngest)
	ctx = ctxmeta.WithRequestID(ctx, fmt.Sprintf("%s/%d/%d", topic, msg.Partition, msg.Offset))

	ctx, span := telemetry.StartSpan(ctx, "kafka.process",
		attribute.String("messaging.destination.name", topic),
		attribute.Int("messaging.kafka.partition", msg.Partition),
		attribute.Int64("messaging.kafka.offset", msg.Offset),
	)
	defer span.End()

	saveCtx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.SaveFromMessage(saveCtx, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return outcomeSaved
	case errors.Is(err, validate.ErrInvalidProduct):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		span.SetStatus(codes.Error, "invalid variant")
		c.log.Warnf(ctx, "invalid variant message: %v (skipped)", err)
		return outcomeSkipped
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		c.log.Warnf(ctx, "process failed: %v (will retry without commit)", err)
		return outcomeRetry
	}
}
