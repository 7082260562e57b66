package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/meme-generator/internal/entity"
	"github.com/ds124wfegd/meme-generator/internal/pkg/suggest"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FinalizeMeme runs the composition pipeline: decode, optional filter,
// caption render, JPEG bytes out. A malformed image is the only fatal
// input; unknown filters pass through inside the engine.
func (s *memeService) FinalizeMeme(ctx context.Context, raw []byte, text, position, filterName string) ([]byte, error) {
	start := time.Now()

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	filtered, err := s.filters.Apply(img, filterName)
	if err != nil {
		return nil, fmt.Errorf("failed to apply filter %q: %w", filterName, err)
	}

	out, err := s.renderer.Render(filtered, text, position)
	if err != nil {
		return nil, fmt.Errorf("failed to render caption: %w", err)
	}

	// best-effort analytics, a Kafka failure never fails the request
	event := entity.MemeEvent{
		RequestID:  uuid.New().String(),
		Filter:     strings.ToLower(strings.TrimSpace(filterName)),
		Position:   position,
		Width:      filtered.Bounds().Dx(),
		Height:     filtered.Bounds().Dy(),
		DurationMs: time.Since(start).Milliseconds(),
		CreatedAt:  time.Now(),
	}
	if err := s.producer.SendMessage("meme-events", event); err != nil {
		logrus.Warnf("failed to publish meme event: %v", err)
	}

	return out, nil
}

// GenerateCaptions asks the vision model to describe the image and parses
// the reply into captions, hashtags and a description.
func (s *memeService) GenerateCaptions(ctx context.Context, raw []byte, mime string) (entity.Suggestion, error) {
	text, err := s.describer.DescribeImage(ctx, raw, mime)
	if err != nil {
		return entity.Suggestion{}, fmt.Errorf("failed to describe image: %w", err)
	}

	return suggest.Parse(text), nil
}
