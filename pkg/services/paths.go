package services

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	folderParamRe  = regexp.MustCompile(`[^a-zA-Z0-9-_ ]`)
	albumRefCharRe = regexp.MustCompile(`[^a-zA-Z0-9-_ /]`)
)

// SafeJoin joins target under root/sub and refuses anything that climbs out.
func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean(target)
	if strings.Contains(cleanTarget, "..") {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

// SanitizeFolderParam keeps only [a-zA-Z0-9-_ ] from a query parameter.
func SanitizeFolderParam(folder string) string {
	return folderParamRe.ReplaceAllString(folder, "")
}

// SanitizeAlbumRef reduces an albumFolder reference such as
// "public/albums/Porto Trip/" to the bare folder name "Porto Trip".
func SanitizeAlbumRef(ref string) string {
	s := strings.TrimSpace(filepath.ToSlash(ref))
	s = strings.TrimLeft(s, "/")
	for _, prefix := range []string{"public/albums/", "albums/"} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimPrefix(s, prefix)
			break
		}
	}
	s = albumRefCharRe.ReplaceAllString(s, "")

	segments := strings.Split(s, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if seg := strings.TrimSpace(segments[i]); seg != "" {
			return seg
		}
	}
	return ""
}

// publicURL builds a site-absolute URL from raw path segments.
func publicURL(segments ...string) string {
	return "/" + strings.Join(segments, "/")
}

// escapedURL is publicURL with every segment escaped the way a browser's
// encodeURIComponent does: only A-Z a-z 0-9 and -_.!~*'() pass through.
func escapedURL(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = escapeComponent(seg)
	}
	return publicURL(escaped...)
}

const upperHex = "0123456789ABCDEF"

func escapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
