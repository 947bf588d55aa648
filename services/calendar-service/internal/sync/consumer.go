package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/daybook-cal/daybook/libs/kafkax"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/calendar"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
)

// Deduper filters inbound events that were already applied. The
// Postgres inbox repository implements it; nil disables deduplication.
type Deduper interface {
	Record(ctx context.Context, eventID, eventType string) (bool, error)
}

// Consumer applies replication events from the remote side. Writes go
// through the model under the sync origin, so they are never echoed
// back onto the outbound queue.
type Consumer struct {
	reader *kafka.Reader
	model  *calendar.Model
	dedupe Deduper
	logger *slog.Logger
}

type ConsumerConfig struct {
	Brokers string
	GroupID string
	Topic   string
}

func NewConsumer(m *calendar.Model, dedupe Deduper, logger *slog.Logger, cfg ConsumerConfig) *Consumer {
	if cfg.Topic == "" {
		cfg.Topic = "calendar.remote"
	}
	if cfg.GroupID == "" {
		cfg.GroupID = "calendar-service"
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  kafkax.SplitBrokers(cfg.Brokers),
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Consumer{
		reader: reader,
		model:  m,
		dedupe: dedupe,
		logger: logger,
	}
}

func (c *Consumer) Run(ctx context.Context) {
	defer c.reader.Close()

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Error("kafka read error", "err", err)
			time.Sleep(1 * time.Second)
			continue
		}

		ctxMsg := kafkax.ExtractTraceContext(ctx, msg)
		ctxSpan, span := otel.Tracer("kafka").Start(ctxMsg, "kafka.consume",
			trace.WithAttributes(
				attribute.String("messaging.system", "kafka"),
				attribute.String("messaging.destination", msg.Topic),
			),
		)

		meta := kafkax.ExtractEventMeta(msg)

		if c.dedupe != nil {
			ok, err := c.dedupe.Record(ctxSpan, meta.EventID, meta.EventType)
			if err != nil {
				c.logger.Error("inbox record failed", "err", err)
				span.RecordError(err)
				span.End()
				continue
			}
			if !ok {
				c.logger.Info("duplicate event ignored", "event_id", meta.EventID, "event_type", meta.EventType)
				span.End()
				continue
			}
		}

		if err := c.apply(ctxSpan, msg.Value); err != nil {
			c.logger.Error("apply remote event failed", "err", err, "event_id", meta.EventID)
			span.RecordError(err)
		}
		span.End()
	}
}

func (c *Consumer) apply(ctx context.Context, payload []byte) error {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	switch model.ChangeAction(ev.Action) {
	case model.ActionAdd, model.ActionChange:
		if ev.Appt == nil {
			return fmt.Errorf("event %s without snapshot", ev.Action)
		}
		a := ev.Appt.appointment()
		id, err := c.model.SyncSave(ctx, a)
		if err != nil {
			return fmt.Errorf("apply %s: %w", ev.Action, err)
		}
		c.logger.Info("remote change applied", "id", id, "action", ev.Action)
		return nil

	case model.ActionDelete:
		if ev.Appt == nil || ev.Appt.ID == 0 {
			return fmt.Errorf("delete event without record id (uid %q)", ev.UID)
		}
		if err := c.model.SyncDelete(ctx, ev.Appt.ID); err != nil {
			return fmt.Errorf("apply delete: %w", err)
		}
		c.logger.Info("remote delete applied", "id", ev.Appt.ID)
		return nil

	default:
		return fmt.Errorf("unknown action %q", ev.Action)
	}
}
