package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Export writes albums.json, team.json and timeline.json into outDir using
// the same envelopes the API returns, so the front-end can be hosted
// without the server.
func (s *Content) Export(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	albums, err := s.ListAlbums()
	if err != nil {
		return err
	}
	members, err := s.ListTeam()
	if err != nil {
		return err
	}
	events, err := s.ListTimeline()
	if err != nil {
		return err
	}

	files := []struct {
		name string
		body any
	}{
		{"albums.json", map[string]any{"albums": albums}},
		{"team.json", map[string]any{"members": members}},
		{"timeline.json", map[string]any{"events": events}},
	}
	for _, f := range files {
		if err := writeJSON(filepath.Join(outDir, f.name), f.body); err != nil {
			return err
		}
	}

	s.Logger.Info("exported content",
		zap.String("dir", outDir),
		zap.Int("albums", len(albums)),
		zap.Int("members", len(members)),
		zap.Int("events", len(events)),
	)
	return nil
}

// writeJSON writes through a temp file so readers never see a partial file.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
