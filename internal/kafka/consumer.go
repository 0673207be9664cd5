package kafka

//go:generate mockgen -source=consumer.go -destination=./mocks/mock_consumer.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/carb_validation/internal/ports"
	"github.com/Gunvolt24/carb_validation/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader: минимальный контракт над kafka.Reader, подменяется моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageSaver: каталог соответствия: парсит, валидирует и сохраняет запись варианта.
type messageSaver interface {
	SaveFromMessage(ctx context.Context, raw []byte) error
}

// Consumer: потребитель обновлений каталога (теги вариантов) из Kafka.
// Оффсет коммитится только после сохранения записи или её окончательного отказа.
type Consumer struct {
	reader         reader
	service        messageSaver
	log            ports.Logger
	processTimeout time.Duration
	fetchRetry     *backoff // ошибки брокера
	processRetry   *backoff // временные ошибки сохранения
	closeOnce      sync.Once
}

// NewConsumer: конструктор поверх kafka.Reader.
func NewConsumer(cfg *ConsumerConfig, service messageSaver, log ports.Logger) *Consumer {
	c := cfg.withDefaults()
	return newConsumer(kafka.NewReader(c.ReaderConfig()), &c, service, log)
}

func newConsumer(r reader, cfg *ConsumerConfig, service messageSaver, log ports.Logger) *Consumer {
	seed := time.Now().UnixNano()
	return &Consumer{
		reader:         r,
		service:        service,
		log:            log,
		processTimeout: cfg.ProcessTimeout,
		fetchRetry:     newBackoff(cfg.RetryInitial, cfg.RetryMax, seed),
		processRetry:   newBackoff(cfg.RetryInitial, cfg.RetryMax, seed+1),
	}
}

// Run: цикл до отмены контекста. Возвращает ctx.Err().
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.log.Infof(ctx, "kafka consumer stopped topic=%s", rc.Topic)
				return ctx.Err()
			}
			delay := c.fetchRetry.Next()
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", err, delay)
			if !sleepCtx(ctx, delay) {
				return ctx.Err()
			}
			continue
		}
		c.fetchRetry.Reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if !c.handle(ctx, rc.Topic, &msg) {
			c.log.Infof(ctx, "kafka consumer stopped topic=%s", rc.Topic)
			return ctx.Err()
		}
	}
}

// handle: обрабатывает одно сообщение, пока оно не сохранено или не отвергнуто,
// и коммитит его. Следующее сообщение не читается до коммита текущего.
// false: контекст отменён, оффсет не закоммичен.
func (c *Consumer) handle(ctx context.Context, topic string, msg *kafka.Message) bool {
	defer c.processRetry.Reset()

	for c.process(ctx, topic, msg) == outcomeRetry {
		delay := c.processRetry.Next()
		c.log.Warnf(ctx, "retrying partition=%d offset=%d in %s", msg.Partition, msg.Offset, delay)
		if !sleepCtx(ctx, delay) {
			return false
		}
	}
	c.commit(ctx, msg)
	return true
}

// Close: закрывает reader; повторные вызовы ничего не делают.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}

func (c *Consumer) commit(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
	}
}
