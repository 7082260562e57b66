package database

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/meme-generator/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetRepositoryFindByName(t *testing.T) {
	store := storage.NewFileStorage(t.TempDir())
	repo := NewAssetRepository(store)

	// provision one overlay asset
	overlay := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			overlay.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, overlay, imaging.PNG))
	require.NoError(t, store.Save("dog.png", &buf))

	t.Run("existing asset is decoded", func(t *testing.T) {
		img, err := repo.FindByName("dog")
		require.NoError(t, err)
		require.NotNil(t, img)
		assert.Equal(t, 20, img.Bounds().Dx())
		assert.Equal(t, 10, img.Bounds().Dy())
	})

	t.Run("name is lowercased before lookup", func(t *testing.T) {
		img, err := repo.FindByName("DOG")
		require.NoError(t, err)
		assert.NotNil(t, img)
	})

	t.Run("missing asset yields nil without error", func(t *testing.T) {
		img, err := repo.FindByName("unicorn")
		require.NoError(t, err)
		assert.Nil(t, img)
	})
}
