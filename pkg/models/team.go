package models

// TeamMember is a folder under team/ with a filled-in info.json.
type TeamMember struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	City      string   `json:"city"`
	Avatar    string   `json:"avatar,omitempty"`
	Skills    []string `json:"skills"`
	LinkedIn  string   `json:"linkedin,omitempty"`
	Credly    string   `json:"credly,omitempty"`
	Email     string   `json:"email,omitempty"`
	Hobbies   []string `json:"hobbies,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Education string   `json:"education,omitempty"`
	Quote     string   `json:"quote,omitempty"`
}
