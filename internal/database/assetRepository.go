package database

import (
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/meme-generator/internal/pkg/storage"
)

func NewAssetRepository(storage storage.FileStorage) AssetRepository {
	return &fileAssetRepository{storage: storage}
}

func (r *fileAssetRepository) FindByName(name string) (image.Image, error) {
	path := r.getAssetPath(name)

	if !r.storage.Exists(path) {
		return nil, nil
	}

	reader, err := r.storage.Get(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	img, err := imaging.Decode(reader)
	if err != nil {
		return nil, err
	}

	// overlays are composited through their own alpha channel
	return imaging.Clone(img), nil
}

func (r *fileAssetRepository) getAssetPath(name string) string {
	return strings.ToLower(name) + ".png"
}
