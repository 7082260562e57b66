package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/meme-generator/internal/database"
	"github.com/ds124wfegd/meme-generator/internal/pkg/caption"
	"github.com/ds124wfegd/meme-generator/internal/pkg/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssets struct{}

func (stubAssets) FindByName(name string) (image.Image, error) { return nil, nil }

var _ database.AssetRepository = stubAssets{}

type stubDescriber struct {
	text string
	err  error
}

func (s *stubDescriber) DescribeImage(ctx context.Context, image []byte, mime string) (string, error) {
	return s.text, s.err
}

type recordingProducer struct {
	sent []interface{}
}

func (p *recordingProducer) SendMessage(topic string, message interface{}) error {
	p.sent = append(p.sent, message)
	return nil
}

func (p *recordingProducer) Close() error { return nil }

func newTestService(describer *stubDescriber, producer *recordingProducer) MemeService {
	return NewMemeService(
		filter.NewEngine(stubAssets{}),
		caption.NewRenderer(nil, 92),
		describer,
		producer,
	)
}

func encodeTestImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 100, G: 150, B: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestFinalizeMeme(t *testing.T) {
	producer := &recordingProducer{}
	svc := newTestService(&stubDescriber{}, producer)

	raw := encodeTestImage(t, 320, 240)

	out, err := svc.FinalizeMeme(context.Background(), raw, "hello world", "bottom", "grayscale")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	decoded, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 320, decoded.Bounds().Dx())
	assert.Equal(t, 240, decoded.Bounds().Dy())

	// one analytics event per successful render
	assert.Len(t, producer.sent, 1)
}

func TestFinalizeMemeRejectsCorruptImage(t *testing.T) {
	producer := &recordingProducer{}
	svc := newTestService(&stubDescriber{}, producer)

	_, err := svc.FinalizeMeme(context.Background(), []byte("not an image"), "text", "bottom", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
	assert.Empty(t, producer.sent)
}

func TestGenerateCaptions(t *testing.T) {
	svc := newTestService(&stubDescriber{text: "Cap\n#tag\n"}, &recordingProducer{})

	suggestion, err := svc.GenerateCaptions(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, []string{"Cap"}, suggestion.Captions)
	assert.Equal(t, []string{"tag"}, suggestion.Hashtags)
}

func TestGenerateCaptionsDescriberFailure(t *testing.T) {
	svc := newTestService(&stubDescriber{err: errors.New("model down")}, &recordingProducer{})

	_, err := svc.GenerateCaptions(context.Background(), []byte("img"), "image/png")
	assert.Error(t, err)
}
