package models

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// Sidecars are the info.json files that sit next to content. Only the keys
// below are recognized; anything else in the file is ignored. Zero values
// mean "use the folder-derived default".

// Text is a display string that tolerates hand-written sidecars. A JSON
// string decodes as itself and a number keeps its literal text, so
// "date": 2024 reads as "2024". Values a template engine would treat as
// unset (null, false, 0) and containers decode to "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	v := bytes.TrimSpace(data)
	if len(v) == 0 {
		*t = ""
		return nil
	}
	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't':
		*t = "true"
	case 'f', 'n', '[', '{':
		*t = ""
	default:
		n, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return err
		}
		if n == 0 {
			*t = ""
		} else {
			*t = Text(v)
		}
	}
	return nil
}

// TeamSidecar is team/<member>/info.json.
type TeamSidecar struct {
	Name      Text     `json:"name"`
	Role      Text     `json:"role"`
	City      Text     `json:"city"`
	Skills    []string `json:"skills"`
	LinkedIn  string   `json:"linkedin"`
	Credly    string   `json:"credly"`
	Email     string   `json:"email"`
	Hobbies   []string `json:"hobbies"`
	Interests []string `json:"interests"`
	Education string   `json:"education"`
	Quote     string   `json:"quote"`

	// Instructions is only present in the scaffold copied from _template.
	Instructions json.RawMessage `json:"_instructions"`
}

// MilestoneSidecar is timeline/<month>/<milestone>/info.json.
type MilestoneSidecar struct {
	Title            Text     `json:"title"`
	Date             Text     `json:"date"`
	Description      Text     `json:"description"`
	Image            string   `json:"image"`
	Images           []string `json:"images"`
	AlbumFolder      string   `json:"albumFolder"`
	AlbumFolders     []string `json:"albumFolders"`
	IncludeAllAlbums bool     `json:"includeAllAlbums"`
	Icon             string   `json:"icon"`
	Color            string   `json:"color"`
	Category         string   `json:"category"`
}

// AlbumSidecar is the optional albums/<album>/info.json.
type AlbumSidecar struct {
	Title       Text   `json:"title"`
	Description Text   `json:"description"`
	Date        Text   `json:"date"`
	CoverImage  string `json:"coverImage"`
}
