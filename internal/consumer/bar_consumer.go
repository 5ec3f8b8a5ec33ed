package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	barv1 "github.com/muhammadchandra19/quantstream/internal/domain/bar-consumer/v1"
	indicatorv1 "github.com/muhammadchandra19/quantstream/internal/domain/indicator/v1"
	snapshotDomain "github.com/muhammadchandra19/quantstream/internal/domain/snapshot"
	snapshotInfra "github.com/muhammadchandra19/quantstream/internal/infrastructure/questdb/snapshot"
	"github.com/muhammadchandra19/quantstream/pkg/config"
	"github.com/muhammadchandra19/quantstream/pkg/logger"
	"github.com/muhammadchandra19/quantstream/pkg/redis"
	"github.com/segmentio/kafka-go"
)

// BarConsumer consumes OHLCV bars from the bar topic, feeds them into the
// beta indicator and publishes the resulting estimates: every updated value
// is persisted as a snapshot and the latest one is cached in Redis.
type BarConsumer struct {
	kafkaReader *kafka.Reader
	logger      logger.Interface

	indicator       indicatorv1.Indicator
	snapshotUsecase snapshotDomain.Usecase
	cache           redis.Client

	target    string
	reference string

	msgChan chan kafka.Message
}

// NewBarConsumer creates a new BarConsumer.
func NewBarConsumer(
	kafkaConfig config.BarKafkaConfig,
	betaConfig config.BetaConfig,
	logger logger.Interface,
	indicator indicatorv1.Indicator,
	snapshotUsecase snapshotDomain.Usecase,
	cache redis.Client,
) *BarConsumer {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kafkaConfig.Brokers,
		Topic:       kafkaConfig.Topic,
		GroupID:     kafkaConfig.ConsumerGroup,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
	return &BarConsumer{
		kafkaReader:     kafkaReader,
		logger:          logger,
		indicator:       indicator,
		snapshotUsecase: snapshotUsecase,
		cache:           cache,
		target:          betaConfig.TargetTicker,
		reference:       betaConfig.ReferenceTicker,
		msgChan:         make(chan kafka.Message),
	}
}

// Start starts the BarConsumer read loop.
func (c *BarConsumer) Start(ctx context.Context) {
	c.logger.Info("starting bar consumer", logger.Field{
		Key:   "action",
		Value: "bar_consumer_start",
	})

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("context done", logger.Field{
				Key:   "action",
				Value: "bar_consumer_stop",
			})
			return
		default:
			msg, err := c.kafkaReader.ReadMessage(ctx)
			if err != nil {
				c.logger.Error(err, logger.Field{
					Key:   "action",
					Value: "read_message",
				})
				continue
			}

			c.msgChan <- msg
		}
	}
}

// Stop stops the BarConsumer.
func (c *BarConsumer) Stop() error {
	c.logger.Info("stopping bar consumer", logger.Field{
		Key:   "action",
		Value: "bar_consumer_stop",
	})
	return c.kafkaReader.Close()
}

// Subscribe processes messages from the read loop.
func (c *BarConsumer) Subscribe(ctx context.Context) {
	c.logger.Info("subscribing to bar consumer", logger.Field{
		Key:   "action",
		Value: "bar_consumer_subscribe",
	})

	for msg := range c.msgChan {
		var event barv1.RawBarEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error(err, logger.Field{
				Key:   "action",
				Value: "unmarshal_bar",
			})
			continue
		}

		if err := c.handleBar(ctx, &event); err != nil {
			c.logger.Error(err, logger.Field{
				Key:   "action",
				Value: "handle_bar",
			})
		}

		if err := c.kafkaReader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error(err, logger.Field{
				Key:   "action",
				Value: "commit_message",
			})
		}
	}
}

func (c *BarConsumer) handleBar(ctx context.Context, event *barv1.RawBarEvent) error {
	bar, err := event.ToBar()
	if err != nil {
		return err
	}

	value, err := c.indicator.Update(bar)
	if err != nil {
		return err
	}

	c.logger.Debug("bar consumed", logger.Field{
		Key:   "ticker",
		Value: bar.Symbol.Ticker,
	}, logger.Field{
		Key:   "beta",
		Value: value,
	}, logger.Field{
		Key:   "ready",
		Value: c.indicator.IsReady(),
	})

	if err := c.snapshotUsecase.StoreSnapshot(ctx, &snapshotInfra.Snapshot{
		Timestamp: bar.EndTime,
		Target:    c.target,
		Reference: c.reference,
		Beta:      value,
		Ready:     c.indicator.IsReady(),
	}); err != nil {
		return err
	}

	key := fmt.Sprintf("beta:latest:%s:%s", c.target, c.reference)
	if err := c.cache.Set(ctx, key, strconv.FormatFloat(value, 'f', -1, 64), 0); err != nil {
		return err
	}

	return nil
}
