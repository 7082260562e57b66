package main

import (
	"github.com/ds124wfegd/meme-generator/config"
	"github.com/ds124wfegd/meme-generator/internal/pkg/analytics"
)

func main() {
	analytics.StartEventConsumer(
		[]string{config.GetEnv("KAFKA_BROKERS", "localhost:9094")},
		config.GetEnv("KAFKA_TOPIC", "meme-events"),
		config.GetEnv("KAFKA_GROUP_ID", "meme-analytics-service"),
	)
}
