package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sniperrors "github.com/Godevs04/tunesnip/internal/errors"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/songs/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "golden hour" {
			t.Errorf("q = %q", q.Get("q"))
		}
		if q.Get("page") != "2" || q.Get("limit") != "10" {
			t.Errorf("pagination params = page %q limit %q", q.Get("page"), q.Get("limit"))
		}

		_ = json.NewEncoder(w).Encode(searchResponse{
			Songs: []Song{
				{
					ID:              "trk_1",
					Title:           "Golden Hour",
					Artist:          "Some Band",
					DurationSeconds: 212.5,
					AudioURL:        "https://cdn.example.com/trk_1.mp3",
				},
			},
			Pagination: Pagination{Page: 2, Limit: 10, Total: 34, Pages: 4},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.Search(context.Background(), "golden hour", 2, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(res.Items))
	}
	track := res.Items[0]
	if track.ID != "trk_1" || track.Title != "Golden Hour" {
		t.Errorf("track = %+v", track)
	}
	if track.Duration != 212500*time.Millisecond {
		t.Errorf("Duration = %v, want 3m32.5s", track.Duration)
	}
	if !res.Pagination.HasMore() {
		t.Error("HasMore = false, want true on page 2 of 4")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	c := New("http://unused")
	if _, err := c.Search(context.Background(), "", 1, 10); err == nil {
		t.Error("expected error for empty query")
	}
}

func TestSearchRetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(searchResponse{
			Pagination: Pagination{Page: 1, Pages: 1},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.httpClient.Timeout = 5 * time.Second

	if _, err := c.Search(context.Background(), "anything", 1, 10); err != nil {
		t.Fatalf("Search after retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestSearchBadRequestNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(apiError{Message: "query too long"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Search(context.Background(), "x", 1, 10)
	if !errors.Is(err, sniperrors.ErrSearchFailed) {
		t.Errorf("err = %v, want ErrSearchFailed", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want no retries", attempts)
	}
}

func TestSearchContextCancelDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	c := New(srv.URL)
	_, err := c.Search(ctx, "anything", 1, 10)
	if err == nil {
		t.Error("expected error after context cancellation")
	}
}
