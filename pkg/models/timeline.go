package models

// TimelineEvent is a milestone folder under timeline/<month>/.
type TimelineEvent struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Date         string        `json:"date"`
	Description  string        `json:"description"`
	Image        string        `json:"image,omitempty"`
	Images       []string      `json:"images"`
	Icon         string        `json:"icon,omitempty"`
	Color        string        `json:"color,omitempty"`
	Category     string        `json:"category,omitempty"`
	LinkedAlbums []LinkedAlbum `json:"linkedAlbums,omitempty"`
}

// LinkedAlbum is an album referenced from a milestone sidecar.
type LinkedAlbum struct {
	Folder string   `json:"folder"`
	Title  string   `json:"title"`
	Images []string `json:"images"`
}
