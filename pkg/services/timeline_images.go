package services

import "fmt"

// ListTimelineImages returns the images in images/timeline/<folder>, ordered
// by the number in their names. folder is reduced to [a-zA-Z0-9-_ ] before
// it touches the filesystem; a folder that sanitizes to nothing or does not
// exist yields no images.
func (s *Content) ListTimelineImages(folder string) ([]string, error) {
	clean := SanitizeFolderParam(folder)
	if clean == "" {
		return []string{}, nil
	}

	dir := SafeJoin(s.Root, "images/timeline", clean)
	if dir == "" {
		return []string{}, nil
	}

	files, err := ListImageFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("list timeline images %s: %w", clean, err)
	}

	images := make([]string, 0, len(files))
	for _, file := range files {
		images = append(images, publicURL("images", "timeline", clean, file))
	}
	return images, nil
}
