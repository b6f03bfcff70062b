package tmdb

const JobDirector = "Director"

// Person is a single cast or crew entry. Character is set for cast only,
// Job and Department for crew only.
type Person struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	ProfilePath *string `json:"profile_path"` // nullable
	Character   string  `json:"character,omitempty"`
	Job         string  `json:"job,omitempty"`
	Department  string  `json:"department,omitempty"`
}

func (s Person) HasProfile() bool {
	return s.ProfilePath != nil && *s.ProfilePath != ""
}

// Credits is the payload of GET /3/movie/{id}/credits.
type Credits struct {
	ID   int      `json:"id"`
	Cast []Person `json:"cast"`
	Crew []Person `json:"crew"`
}
