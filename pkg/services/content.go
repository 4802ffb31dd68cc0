package services

import (
	"path/filepath"

	"capstone-timeline/pkg/config"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Content resolves the public folder tree into API payloads. It holds no
// state between calls: every method re-reads the filesystem.
type Content struct {
	Root          string
	FallbackCity  string
	FallbackCover string
	Locale        language.Tag
	Logger        *zap.Logger
}

func NewContent(cfg *config.Config, logger *zap.Logger) *Content {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Content{
		Root:          cfg.PublicPath,
		FallbackCity:  cfg.FallbackCity,
		FallbackCover: cfg.FallbackCover,
		Locale:        cfg.Tag(),
		Logger:        logger,
	}
}

func (s *Content) albumsDir() string   { return filepath.Join(s.Root, "albums") }
func (s *Content) teamDir() string     { return filepath.Join(s.Root, "team") }
func (s *Content) timelineDir() string { return filepath.Join(s.Root, "timeline") }

// collator is built per call; collate.Collator is not safe for concurrent use.
func (s *Content) collator() *collate.Collator {
	return collate.New(s.Locale)
}
