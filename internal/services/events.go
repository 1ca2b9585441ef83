package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ActivityPublisher publishes activity events to Kafka. Publishing is
// best-effort: a missing writer or a broker failure is logged and the
// triggering request carries on.
type ActivityPublisher struct {
	writer KafkaWriter
}

// NewActivityPublisher creates a new ActivityPublisher. A nil writer
// disables publishing.
func NewActivityPublisher(writer KafkaWriter) *ActivityPublisher {
	return &ActivityPublisher{writer: writer}
}

// Publish emits one activity event of the given kind.
func (p *ActivityPublisher) Publish(ctx context.Context, kind string, userID, subjectID int64) {
	event := models.ActivityEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Kind:      kind,
		UserID:    userID,
		SubjectID: subjectID,
	}

	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "kind", kind)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity event to Kafka", "event_id", event.EventID, "kind", kind, "error", err)
	} else {
		logger.Log.Infow("Activity event published to Kafka", "event_id", event.EventID, "kind", kind, "user_id", userID)
	}
}
