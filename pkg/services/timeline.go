package services

import (
	"cmp"
	"fmt"
	"path"
	"path/filepath"
	"slices"

	"capstone-timeline/pkg/models"

	"go.uber.org/zap"
)

// ListTimeline walks timeline/<month>/<milestone>/ and returns one event per
// milestone that has an info.json, in numeric-prefix order. A milestone or
// month that cannot be read is logged and skipped; only a failure to read
// the timeline root itself is returned.
func (s *Content) ListTimeline() ([]models.TimelineEvent, error) {
	months, err := ListContentDirs(s.timelineDir())
	if err != nil {
		return nil, fmt.Errorf("list timeline: %w", err)
	}
	SortByOrder(months)

	r := &timelineRun{Content: s}
	events := []models.TimelineEvent{}
	for _, month := range months {
		milestones, err := ListContentDirs(filepath.Join(s.timelineDir(), month))
		if err != nil {
			s.Logger.Warn("skipping timeline month", zap.String("folder", month), zap.Error(err))
			continue
		}
		SortByOrder(milestones)

		for _, milestone := range milestones {
			if event, ok := r.readMilestone(month, milestone); ok {
				events = append(events, event)
			}
		}
	}
	return events, nil
}

// timelineRun carries what is shared between milestones of one ListTimeline
// call. It is discarded when the call returns.
type timelineRun struct {
	*Content
	allAlbums []string
	listedAll bool
}

func (r *timelineRun) readMilestone(month, milestone string) (models.TimelineEvent, bool) {
	dir := filepath.Join(r.timelineDir(), month, milestone)
	log := r.Logger.With(zap.String("folder", path.Join(month, milestone)))

	var info models.MilestoneSidecar
	found, err := ReadSidecar(dir, &info)
	if err != nil {
		log.Warn("skipping milestone", zap.Error(err))
		return models.TimelineEvent{}, false
	}
	if !found {
		return models.TimelineEvent{}, false
	}

	files, err := ListImageFiles(dir)
	if err != nil {
		log.Warn("skipping milestone", zap.Error(err))
		return models.TimelineEvent{}, false
	}
	images := make([]string, 0, len(files))
	for _, file := range files {
		images = append(images, escapedURL("timeline", month, milestone, file))
	}

	linked := r.linkAlbums(info)
	for _, album := range linked {
		images = append(images, album.Images...)
	}
	images = append(images, sidecarImages(info)...)
	images = dedupe(images)

	event := models.TimelineEvent{
		ID:           Slugify(month + "-" + milestone),
		Title:        firstNonEmpty(string(info.Title), StripOrderPrefix(milestone)),
		Date:         firstNonEmpty(string(info.Date), StripOrderPrefix(month)),
		Description:  string(info.Description),
		Images:       images,
		Icon:         info.Icon,
		Color:        info.Color,
		Category:     info.Category,
		LinkedAlbums: linked,
	}
	if len(images) > 0 {
		event.Image = images[0]
	}
	return event, true
}

// linkAlbums resolves albumFolder, albumFolders and includeAllAlbums, in that
// order, into the albums that exist and have at least one image.
func (r *timelineRun) linkAlbums(info models.MilestoneSidecar) []models.LinkedAlbum {
	refs := make([]string, 0, 1+len(info.AlbumFolders))
	if ref := SanitizeAlbumRef(info.AlbumFolder); ref != "" {
		refs = append(refs, ref)
	}
	for _, folder := range info.AlbumFolders {
		if ref := SanitizeAlbumRef(folder); ref != "" {
			refs = append(refs, ref)
		}
	}
	if info.IncludeAllAlbums {
		refs = append(refs, r.listAllAlbums()...)
	}
	refs = dedupe(refs)

	var linked []models.LinkedAlbum
	for _, folder := range refs {
		images := r.albumImages(folder)
		if len(images) == 0 {
			continue
		}
		linked = append(linked, models.LinkedAlbum{
			Folder: folder,
			Title:  r.albumTitle(folder),
			Images: images,
		})
	}
	return linked
}

func (r *timelineRun) listAllAlbums() []string {
	if !r.listedAll {
		folders, err := ListContentDirs(r.albumsDir())
		if err != nil {
			r.Logger.Warn("cannot list albums for includeAllAlbums", zap.Error(err))
		}
		r.allAlbums = folders
		r.listedAll = true
	}
	return r.allAlbums
}

func (s *Content) albumTitle(folder string) string {
	var info models.AlbumSidecar
	if _, err := ReadSidecar(filepath.Join(s.albumsDir(), folder), &info); err != nil {
		return folder
	}
	return firstNonEmpty(string(info.Title), folder)
}

// sidecarImages returns the explicit images[] sorted by the number in their
// file name, followed by the single image field.
func sidecarImages(info models.MilestoneSidecar) []string {
	images := make([]string, 0, len(info.Images)+1)
	for _, img := range info.Images {
		if img != "" {
			images = append(images, img)
		}
	}
	slices.SortStableFunc(images, func(a, b string) int {
		return cmp.Compare(ExtractNumber(path.Base(a)), ExtractNumber(path.Base(b)))
	})
	if info.Image != "" {
		images = append(images, info.Image)
	}
	return images
}

// dedupe drops repeated values, keeping the first occurrence.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
