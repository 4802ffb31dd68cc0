package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"

	"capstone-timeline/pkg/config"
)

// tree writes files under root; a value of "" creates an empty file and a
// key ending in "/" creates a directory.
func tree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func newTestContent(t *testing.T) (*Content, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	s := &Content{
		Root:          t.TempDir(),
		FallbackCity:  config.DefaultFallbackCity,
		FallbackCover: config.DefaultFallbackCover,
		Locale:        language.English,
		Logger:        zap.New(core),
	}
	return s, logs
}
