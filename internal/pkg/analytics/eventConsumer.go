// Consumes render events for offline stats. Rendering never waits on this.
package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ds124wfegd/meme-generator/internal/entity"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// StartEventConsumer reads meme events from Kafka and logs per-filter
// counters. It blocks until the process is stopped.
func StartEventConsumer(brokers []string, topic, groupID string) {

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer reader.Close()

	counts := make(map[string]int)

	logrus.Info("Meme event consumer started...")
	logrus.Infof("Connected to Kafka brokers: %s", brokers)

	for {
		ctx := context.Background()
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			logrus.Errorf("Error reading message from Kafka: %v", err)
			continue
		}

		var event entity.MemeEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logrus.Errorf("Failed to parse event: %v", err)
			continue
		}

		filter := event.Filter
		if filter == "" {
			filter = "none"
		}
		counts[filter]++

		logrus.WithFields(logrus.Fields{
			"request_id":  event.RequestID,
			"filter":      filter,
			"position":    event.Position,
			"size":        event.Width * event.Height,
			"duration_ms": event.DurationMs,
			"total":       counts[filter],
		}).Info("meme rendered")
	}
}
