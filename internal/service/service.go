package service

import (
	"context"

	"github.com/ds124wfegd/meme-generator/internal/entity"
	"github.com/ds124wfegd/meme-generator/internal/pkg/caption"
	"github.com/ds124wfegd/meme-generator/internal/pkg/filter"
	"github.com/ds124wfegd/meme-generator/internal/pkg/kafka"
	"github.com/ds124wfegd/meme-generator/internal/pkg/vision"
)

type MemeService interface {
	FinalizeMeme(ctx context.Context, raw []byte, text, position, filterName string) ([]byte, error)
	GenerateCaptions(ctx context.Context, raw []byte, mime string) (entity.Suggestion, error)
}

type memeService struct {
	filters   filter.Engine
	renderer  caption.Renderer
	describer vision.Describer
	producer  kafka.Producer
}

func NewMemeService(filters filter.Engine, renderer caption.Renderer, describer vision.Describer, producer kafka.Producer) MemeService {
	return &memeService{
		filters:   filters,
		renderer:  renderer,
		describer: describer,
		producer:  producer,
	}
}
