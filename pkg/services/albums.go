package services

import (
	"fmt"
	"path/filepath"
	"slices"

	"capstone-timeline/pkg/models"

	"go.uber.org/zap"
)

// ListAlbums reads every folder under albums/ into an Album, sorted by title.
func (s *Content) ListAlbums() ([]models.Album, error) {
	folders, err := ListContentDirs(s.albumsDir())
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}

	albums := make([]models.Album, 0, len(folders))
	for _, folder := range folders {
		album, err := s.readAlbum(folder)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}

	col := s.collator()
	slices.SortStableFunc(albums, func(a, b models.Album) int {
		return col.CompareString(a.Title, b.Title)
	})
	return albums, nil
}

func (s *Content) readAlbum(folder string) (models.Album, error) {
	dir := filepath.Join(s.albumsDir(), folder)
	files, err := ListImageFiles(dir)
	if err != nil {
		return models.Album{}, fmt.Errorf("read album %s: %w", folder, err)
	}

	var info models.AlbumSidecar
	if _, err := ReadSidecar(dir, &info); err != nil {
		s.Logger.Warn("ignoring album sidecar", zap.String("folder", folder), zap.Error(err))
		info = models.AlbumSidecar{}
	}

	id := Slugify(folder)
	photos := make([]models.Photo, 0, len(files))
	for i, file := range files {
		caption := captionFromFile(file)
		photos = append(photos, models.Photo{
			ID:      fmt.Sprintf("%s-%d", id, i+1),
			Src:     publicURL("albums", folder, file),
			Alt:     caption,
			Caption: caption,
			Date:    string(info.Date),
		})
	}

	cover := s.FallbackCover
	if len(photos) > 0 {
		cover = photos[0].Src
	}
	if info.CoverImage != "" {
		cover = info.CoverImage
	}

	return models.Album{
		ID:          id,
		Title:       firstNonEmpty(string(info.Title), folder),
		Description: firstNonEmpty(string(info.Description), "Photos from "+folder),
		CoverImage:  cover,
		Photos:      photos,
	}, nil
}

// albumImages returns the image URLs of one album folder, or nil when the
// folder is missing or unreadable.
func (s *Content) albumImages(folder string) []string {
	files, err := ListImageFiles(filepath.Join(s.albumsDir(), folder))
	if err != nil {
		s.Logger.Warn("skipping linked album", zap.String("folder", folder), zap.Error(err))
		return nil
	}
	images := make([]string, 0, len(files))
	for _, file := range files {
		images = append(images, publicURL("albums", folder, file))
	}
	return images
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
