package movie

import "testing"

func TestHelper(t *testing.T) {
	h := NewHelper()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"trailer", h.TrailerURL("SUXWAEX2jlg"), "https://www.youtube.com/watch?v=SUXWAEX2jlg"},
		{"genre", h.GenreURL(18), "/genre/18"},
		{"genre page", h.GenrePageURL(18, 3), "/genre/18?page=3"},
		{"movie", h.MovieURL(550), "/movie/550"},
		{"cast", h.CastURL(550), "/movie/550/cast"},
		{"poster thumb", h.PosterThumb("/a.jpg"), "/poster/116/a.jpg"},
		{"votes", h.FormatVotes(1234567), "1,234,567"},
		{"few votes", h.FormatVotes(12), "12"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
