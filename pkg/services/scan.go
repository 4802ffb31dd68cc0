package services

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// SidecarName is the metadata file that may sit in any content folder.
const SidecarName = "info.json"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".heic": true,
}

func IsImageFile(name string) bool {
	if name == SidecarName {
		return false
	}
	return imageExtensions[strings.ToLower(extOf(name))]
}

func isSkippedName(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}

// ListContentDirs returns the child directories of root in directory order,
// leaving out template (_) and hidden (.) folders. A missing root is treated
// as empty.
func ListContentDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || isSkippedName(entry.Name()) {
			continue
		}
		dirs = append(dirs, entry.Name())
	}
	return dirs, nil
}

// listFiles returns the regular file names in dir in directory order. A
// missing dir is treated as empty.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// ListImageFiles returns the image files in dir ordered by the first number
// in their names.
func ListImageFiles(dir string) ([]string, error) {
	files, err := listFiles(dir)
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(files))
	for _, name := range files {
		if IsImageFile(name) {
			images = append(images, name)
		}
	}
	SortByNumber(images)
	return images, nil
}
