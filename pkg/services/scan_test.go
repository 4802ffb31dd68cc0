package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capstone-timeline/pkg/models"
)

func TestIsImageFile(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.gif", "e.webp", "f.svg", "g.HEIC"} {
		assert.True(t, IsImageFile(name), name)
	}
	for _, name := range []string{"info.json", "notes.txt", "jpg", ".jpg", "movie.mp4"} {
		assert.False(t, IsImageFile(name), name)
	}
}

func TestListContentDirs(t *testing.T) {
	root := t.TempDir()
	tree(t, root, map[string]string{
		"b/":          "",
		"a/":          "",
		"_template/":  "",
		".git/":       "",
		"loose.jpg":   "",
		"a/inner/x/":  "",
		"b/photo.jpg": "",
	})

	dirs, err := ListContentDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dirs)
}

func TestListContentDirsMissingRoot(t *testing.T) {
	dirs, err := ListContentDirs(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, dirs)
	assert.NotNil(t, dirs)
}

func TestListImageFiles(t *testing.T) {
	root := t.TempDir()
	tree(t, root, map[string]string{
		"cover.png":    "",
		"photo_10.jpg": "",
		"photo_2.jpg":  "",
		"info.json":    "{}",
		"notes.md":     "",
		"sub/":         "",
	})

	images, err := ListImageFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"photo_2.jpg", "photo_10.jpg", "cover.png"}, images)

	images, err = ListImageFiles(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestReadSidecar(t *testing.T) {
	root := t.TempDir()
	tree(t, root, map[string]string{
		"ok/info.json":  `{"title":"Kickoff","unknown":{"nested":true}}`,
		"bad/info.json": `{"title":`,
		"none/":         "",
	})

	var info models.MilestoneSidecar
	found, err := ReadSidecar(filepath.Join(root, "ok"), &info)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.Text("Kickoff"), info.Title)

	found, err = ReadSidecar(filepath.Join(root, "bad"), &info)
	assert.True(t, found)
	require.ErrorIs(t, err, ErrMalformedSidecar)

	found, err = ReadSidecar(filepath.Join(root, "none"), &info)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestIsTruthy(t *testing.T) {
	for _, raw := range []string{"", "null", "false", "0", "0.0", "-0", `""`, "  null "} {
		assert.False(t, isTruthy([]byte(raw)), raw)
	}
	for _, raw := range []string{`"fill me in"`, `"0"`, "true", "1", "-0.5", "[]", "{}", `["step"]`, `{"a":1}`} {
		assert.True(t, isTruthy([]byte(raw)), raw)
	}
}

func TestSanitizeAlbumRef(t *testing.T) {
	tests := map[string]string{
		"Porto Trip":                "Porto Trip",
		"albums/Porto Trip":         "Porto Trip",
		"public/albums/Porto Trip/": "Porto Trip",
		"/albums/Lisbon":            "Lisbon",
		"../../etc/passwd":          "passwd",
		"trips/2024/Sintra":         "Sintra",
		"<script>":                  "script",
		"":                          "",
		"///":                       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeAlbumRef(in), in)
	}
}

func TestSanitizeFolderParam(t *testing.T) {
	assert.Equal(t, "Week 1_intro-x", SanitizeFolderParam("Week 1_intro-x"))
	assert.Equal(t, "etcpasswd", SanitizeFolderParam("../../etc/passwd"))
}

func TestSafeJoin(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "sub", "a"), SafeJoin("root", "sub", "a"))
	assert.Equal(t, "", SafeJoin("root", "sub", "../a"))
}

func TestEscapedURL(t *testing.T) {
	assert.Equal(t, "/timeline/1-Sept/1-Kick%20off/my%20photo.jpg",
		escapedURL("timeline", "1-Sept", "1-Kick off", "my photo.jpg"))
	assert.Equal(t, "/timeline/1-Q%26A/1-Kickoff%20(Day%201)/p's.jpg",
		escapedURL("timeline", "1-Q&A", "1-Kickoff (Day 1)", "p's.jpg"))
	assert.Equal(t, "/timeline/a%2Bb%3Dc/caf%C3%A9%3A1.jpg",
		escapedURL("timeline", "a+b=c", "café:1.jpg"))
	assert.Equal(t, "/albums/Porto Trip/2.jpg", publicURL("albums", "Porto Trip", "2.jpg"))
}
