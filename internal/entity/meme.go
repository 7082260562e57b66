package entity

import "time"

// Suggestion is the structured form of the model's free-text reply.
type Suggestion struct {
	Captions    []string `json:"captions"`
	Hashtags    []string `json:"hashtags"`
	Description string   `json:"description"`
}

type FinalizeResponse struct {
	ImageBase64 string `json:"image_base64"`
}

// MemeEvent is published to Kafka after each successful render.
type MemeEvent struct {
	RequestID  string    `json:"request_id"`
	Filter     string    `json:"filter,omitempty"`
	Position   string    `json:"position"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}
