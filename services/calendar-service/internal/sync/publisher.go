package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/daybook-cal/daybook/libs/kafkax"
	otelx "github.com/daybook-cal/daybook/libs/otel"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/calendar"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/store"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/synclog"
)

// messageWriter is the slice of kafka.Writer the drain needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher drains the pending change log to the replication topic.
// Each entry is published with the current record snapshot and removed
// from the log only after the write is acknowledged, so a crash
// re-publishes rather than drops.
type Publisher struct {
	model     *calendar.Model
	recon     *synclog.Reconciler
	logger    *slog.Logger
	brokers   []string
	topic     string
	pollEvery time.Duration

	// writer overrides the Kafka writer in tests.
	writer messageWriter
}

type PublisherConfig struct {
	Brokers   string
	Topic     string
	PollEvery time.Duration
}

func NewPublisher(m *calendar.Model, recon *synclog.Reconciler, logger *slog.Logger, cfg PublisherConfig) *Publisher {
	if cfg.Topic == "" {
		cfg.Topic = "calendar.changes"
	}
	if cfg.PollEvery <= 0 {
		cfg.PollEvery = 2 * time.Second
	}
	return &Publisher{
		model:     m,
		recon:     recon,
		logger:    logger,
		brokers:   kafkax.SplitBrokers(cfg.Brokers),
		topic:     cfg.Topic,
		pollEvery: cfg.PollEvery,
	}
}

func (p *Publisher) Run(ctx context.Context) {
	if len(p.brokers) == 0 && p.writer == nil {
		p.logger.Warn("change drain disabled (no kafka brokers configured)")
		return
	}

	writer := p.writer
	if writer == nil {
		w := kafka.NewWriter(kafka.WriterConfig{
			Brokers:  p.brokers,
			Balancer: &kafka.Hash{},
		})
		defer w.Close()
		writer = w
	}

	ticker := time.NewTicker(p.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.drainOnce(ctx, writer); err != nil {
				p.logger.Error("change drain failed", "err", err)
			}
		}
	}
}

func (p *Publisher) drainOnce(ctx context.Context, writer messageWriter) error {
	entries, err := p.recon.Pending(ctx)
	if err != nil {
		return fmt.Errorf("read change log: %w", err)
	}

	for _, e := range entries {
		msg, err := p.buildMessage(ctx, e)
		if err != nil {
			return err
		}
		if err := writer.WriteMessages(ctx, msg); err != nil {
			return fmt.Errorf("publish %d: %w", e.ID, err)
		}
		if err := p.recon.Remove(ctx, e.ID, e.Object); err != nil {
			return fmt.Errorf("retire entry %d: %w", e.ID, err)
		}
	}
	return nil
}

func (p *Publisher) buildMessage(ctx context.Context, e *synclog.Entry) (kafka.Message, error) {
	ev := Event{
		UID:    e.UID,
		Object: string(e.Object),
		Action: string(e.Action),
	}

	// A delete's record may already be physically gone, so it ships a
	// minimal snapshot carrying just the identifiers.
	if e.Action == model.ActionDelete {
		ev.Appt = &Record{ID: e.ID, UID: e.UID}
	} else {
		a, err := p.model.Get(ctx, e.ID)
		if err != nil && !store.IsNotFound(err) {
			return kafka.Message{}, fmt.Errorf("snapshot %d: %w", e.ID, err)
		}
		if a != nil {
			ev.Appt = toRecord(a)
		}
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %d: %w", e.ID, err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(strconv.Itoa(e.ID)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte("calendar." + string(e.Action))},
		},
	}
	msgCtx := otelx.ContextWithTraceContext(ctx, e.Traceparent, e.Tracestate)
	msg.Headers = kafkax.InjectTraceHeaders(msgCtx, msg.Headers)
	return msg, nil
}
