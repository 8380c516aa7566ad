// Package kafka publishes finished comfort reports to the scores topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/ride-comfort-service/internal/config"
	"github.com/couchcryptid/ride-comfort-service/internal/domain"
	"github.com/couchcryptid/ride-comfort-service/internal/report"
)

// Publisher produces score messages to a Kafka topic.
// It implements report.ScorePublisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured scores topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaScoresTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishScore serializes and publishes one flight report to the scores
// topic, keyed by route so per-route ordering is preserved.
func (p *Publisher) PublishScore(ctx context.Context, rep report.FlightReport) error {
	msg, err := serializeToMessage(rep)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a FlightReport into a Kafka message.
func serializeToMessage(rep report.FlightReport) (kafkago.Message, error) {
	data, err := json.Marshal(rep)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize flight report: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(domain.RouteKey(rep.Origin, rep.Destination)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "bucket", Value: []byte(rep.Result.Bucket)},
			{Key: "computed_at", Value: []byte(rep.ComputedAt.Format(time.RFC3339))},
		},
	}, nil
}
