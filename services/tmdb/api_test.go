package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func newTestApi(t *testing.T, h http.HandlerFunc, store Store) (*Api, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	api, err := NewApi(&Config{
		URL:      server.URL,
		Key:      "secret",
		Language: "en-US",
	}, server.Client(), store)
	if err != nil {
		t.Fatalf("NewApi() error = %v", err)
	}
	return api, server
}

func TestApi_GetMovie(t *testing.T) {
	api, _ := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/3/movie/550" {
			t.Errorf("Expected path /3/movie/550, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != "secret" {
			t.Errorf("Expected api_key secret, got %q", got)
		}
		if got := r.URL.Query().Get("language"); got != "en-US" {
			t.Errorf("Expected language en-US, got %q", got)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Expected Accept application/json, got %s", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 550,
			"title": "Fight Club",
			"release_date": "1999-10-15",
			"runtime": 139,
			"poster_path": "/poster.jpg",
			"genres": [{"id": 18, "name": "Drama"}],
			"vote_average": 8.433,
			"vote_count": 26280
		}`))
	}, nil)

	m, err := api.GetMovie(context.Background(), 550)
	if err != nil {
		t.Fatalf("GetMovie() error = %v", err)
	}
	if m.Title != "Fight Club" {
		t.Errorf("Title = %q, want %q", m.Title, "Fight Club")
	}
	if m.Runtime != 139 {
		t.Errorf("Runtime = %d, want 139", m.Runtime)
	}
	if len(m.Genres) != 1 || m.Genres[0].Name != "Drama" {
		t.Errorf("Genres = %+v", m.Genres)
	}
	if m.VoteCount != 26280 {
		t.Errorf("VoteCount = %d, want 26280", m.VoteCount)
	}
}

func TestApi_GetCreditsAndVideos(t *testing.T) {
	api, _ := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/3/movie/550/credits":
			_, _ = w.Write([]byte(`{"id":550,"cast":[{"id":819,"name":"Edward Norton","character":"Narrator","profile_path":null}],"crew":[{"id":7467,"name":"David Fincher","job":"Director","department":"Directing","profile_path":"/fincher.jpg"}]}`))
		case "/3/movie/550/videos":
			_, _ = w.Write([]byte(`{"id":550,"results":[{"key":"abc","type":"Trailer","site":"YouTube","name":"Official Trailer"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}, nil)

	ctx := context.Background()
	cr, err := api.GetCredits(ctx, 550)
	if err != nil {
		t.Fatalf("GetCredits() error = %v", err)
	}
	if len(cr.Cast) != 1 || cr.Cast[0].ProfilePath != nil {
		t.Errorf("Cast = %+v", cr.Cast)
	}
	if cr.Cast[0].HasProfile() {
		t.Error("Expected cast member without profile")
	}
	if len(cr.Crew) != 1 || cr.Crew[0].Job != "Director" || !cr.Crew[0].HasProfile() {
		t.Errorf("Crew = %+v", cr.Crew)
	}

	v, err := api.GetVideos(ctx, 550)
	if err != nil {
		t.Fatalf("GetVideos() error = %v", err)
	}
	if len(v.Results) != 1 || v.Results[0].Key != "abc" || v.Results[0].Type != "Trailer" {
		t.Errorf("Results = %+v", v.Results)
	}
}

func TestApi_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}, nil)
			_, err := api.GetMovie(context.Background(), 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("GetMovie() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApi_UnexpectedStatus(t *testing.T) {
	api, _ := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, nil)
	_, err := api.GetMovie(context.Background(), 1)
	if err == nil {
		t.Fatal("Expected error for 502 response")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("502 must not map to ErrNotFound")
	}
}

func TestApi_CachesResponses(t *testing.T) {
	var calls int32
	api, _ := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"id":1,"title":"Cached"}`))
	}, nil)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		m, err := api.GetMovie(ctx, 1)
		if err != nil {
			t.Fatalf("GetMovie() error = %v", err)
		}
		if m.Title != "Cached" {
			t.Errorf("Title = %q", m.Title)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected 1 upstream call, got %d", got)
	}
}

func TestApi_RetriesAfterError(t *testing.T) {
	var calls int32
	api, _ := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id":3,"title":"Recovered"}`))
	}, nil)

	ctx := context.Background()
	if _, err := api.GetMovie(ctx, 3); err == nil {
		t.Fatal("Expected error on first lookup")
	}
	m, err := api.GetMovie(ctx, 3)
	if err != nil {
		t.Fatalf("GetMovie() error = %v", err)
	}
	if m.Title != "Recovered" {
		t.Errorf("Title = %q", m.Title)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("Expected 2 upstream calls, got %d", got)
	}
}

func TestApi_GenresAndDiscover(t *testing.T) {
	api, _ := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/3/genre/movie/list":
			_, _ = w.Write([]byte(`{"genres":[{"id":18,"name":"Drama"},{"id":53,"name":"Thriller"}]}`))
		case "/3/discover/movie":
			q := r.URL.Query()
			if q.Get("with_genres") != "18" || q.Get("page") != "2" {
				t.Errorf("unexpected query %v", q)
			}
			if q.Get("api_key") != "secret" || q.Get("language") != "en-US" {
				t.Errorf("missing api_key or language in %v", q)
			}
			_, _ = w.Write([]byte(`{"page":2,"total_pages":5,"total_results":90,"results":[{"id":550,"title":"Fight Club","release_date":"1999-10-15","poster_path":"/p.jpg","vote_average":8.4}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}, nil)

	ctx := context.Background()
	gl, err := api.GetGenres(ctx)
	if err != nil {
		t.Fatalf("GetGenres() error = %v", err)
	}
	if len(gl.Genres) != 2 || gl.Genres[1].Name != "Thriller" {
		t.Errorf("Genres = %+v", gl.Genres)
	}
	d, err := api.DiscoverByGenre(ctx, 18, 2)
	if err != nil {
		t.Fatalf("DiscoverByGenre() error = %v", err)
	}
	if d.Page != 2 || d.TotalPages != 5 || len(d.Results) != 1 || d.Results[0].ID != 550 {
		t.Errorf("DiscoverResult = %+v", d)
	}
}

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *memStore) Set(_ context.Context, key string, b []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = b
	return nil
}

func TestApi_SharedStore(t *testing.T) {
	store := &memStore{data: map[string][]byte{}}
	var calls int32
	h := func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"id":2,"title":"Stored"}`))
	}
	first, _ := newTestApi(t, h, store)
	second, _ := newTestApi(t, h, store)

	ctx := context.Background()
	if _, err := first.GetMovie(ctx, 2); err != nil {
		t.Fatalf("GetMovie() error = %v", err)
	}
	if _, ok := store.data["en-US/3/movie/2"]; !ok {
		t.Errorf("Expected response to be stored, got keys %v", store.data)
	}
	m, err := second.GetMovie(ctx, 2)
	if err != nil {
		t.Fatalf("GetMovie() error = %v", err)
	}
	if m.Title != "Stored" {
		t.Errorf("Title = %q", m.Title)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected 1 upstream call, got %d", got)
	}
}

func TestNewApi_InvalidLanguage(t *testing.T) {
	_, err := NewApi(&Config{URL: "http://localhost", Key: "k", Language: "not a tag!"}, http.DefaultClient, nil)
	if err == nil {
		t.Fatal("Expected error for invalid language tag")
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"550", 550, false},
		{" 42 ", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParseID(%q) error = %v, want ErrInvalidID", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseID(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
