package models

// Photo is a single image inside an album.
type Photo struct {
	ID      string `json:"id"`
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Album is a folder under albums/.
type Album struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CoverImage  string  `json:"coverImage"`
	Photos      []Photo `json:"photos"`
}
