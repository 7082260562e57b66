package database

import (
	"image"

	"github.com/ds124wfegd/meme-generator/internal/pkg/storage"
)

// AssetRepository resolves overlay names to decoded RGBA images.
// A missing asset is not an error: FindByName returns (nil, nil) and the
// filter engine passes the source image through unchanged.
type AssetRepository interface {
	FindByName(name string) (image.Image, error)
}

type fileAssetRepository struct {
	storage storage.FileStorage
}
