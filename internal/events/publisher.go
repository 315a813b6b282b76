// Package events publishes domain events for business record changes so
// downstream consumers (window-page caches, search indexers) can react
// without polling the database.
package events

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	EntityBusiness = "business"
	EntitySchedule = "schedule"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event is the wire format written to the broker
type Event struct {
	Entity     string      `json:"entity"`
	Action     string      `json:"action"`
	ResourceID string      `json:"resourceId"`
	Topic      string      `json:"topic"`
	Timestamp  time.Time   `json:"timestamp"`
	Data       interface{} `json:"data,omitempty"`
}

// Publisher writes domain events to kafka. A nil Publisher is a valid noop,
// so callers never guard their Publish calls.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisherFromEnv builds a publisher from KAFKA_BROKERS / KAFKA_TOPIC.
// Returns nil (noop) when no brokers are configured.
func NewPublisherFromEnv() *Publisher {
	brokers := splitBrokers(envOr("KAFKA_BROKERS", ""))
	if len(brokers) == 0 {
		return nil
	}
	topic := envOr("KAFKA_TOPIC", "vitrine.events")
	return NewPublisher(brokers, topic)
}

// NewPublisher creates a publisher for the given brokers and topic
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 100 * time.Millisecond,
		},
	}
}

// Publish writes one event. Failures are logged and swallowed: event
// delivery is best-effort and must never fail the originating request.
func (p *Publisher) Publish(ctx context.Context, entity, action, resourceID string, data interface{}) {
	if p == nil {
		return
	}

	event := Event{
		Entity:     entity,
		Action:     action,
		ResourceID: resourceID,
		Topic:      entity + "." + action,
		Timestamp:  time.Now().UTC(),
		Data:       data,
	}

	value, err := json.Marshal(event)
	if err != nil {
		log.Warn().Err(err).Str("topic", event.Topic).Msg("failed to encode domain event")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(resourceID),
		Value: value,
	})
	if err != nil {
		log.Warn().Err(err).Str("topic", event.Topic).Str("resource_id", resourceID).Msg("failed to publish domain event")
		return
	}

	log.Debug().Str("topic", event.Topic).Str("resource_id", resourceID).Msg("domain event published")
}

// Close flushes and closes the underlying writer
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

func splitBrokers(value string) []string {
	if value == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(value, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
