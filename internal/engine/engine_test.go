package engine

import (
	"bytes"
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	sniperrors "github.com/Godevs04/tunesnip/internal/errors"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("audio-bytes"))
	}))
	defer srv.Close()

	e := New()
	data, err := e.fetch(context.Background(), srv.URL+"/trk.mp3")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(data) != "audio-bytes" {
		t.Errorf("data = %q", data)
	}
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	e := New()
	_, err := e.fetch(context.Background(), srv.URL+"/missing.mp3")
	if !errors.Is(err, sniperrors.ErrTrackLoadFailed) {
		t.Errorf("err = %v, want ErrTrackLoadFailed", err)
	}
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chunk := bytes.Repeat([]byte{0xff}, 1<<20)
		for written := 0; written <= maxTrackBytes; written += len(chunk) {
			if _, err := w.Write(chunk); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	e := New()
	_, err := e.fetch(context.Background(), srv.URL+"/huge.mp3")
	if !errors.Is(err, sniperrors.ErrTrackLoadFailed) {
		t.Errorf("err = %v, want ErrTrackLoadFailed for oversized body", err)
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	e := New()
	_, err := e.fetch(context.Background(), "http://127.0.0.1:1/nope.mp3")
	if !errors.Is(err, sniperrors.ErrNetworkError) {
		t.Errorf("err = %v, want ErrNetworkError", err)
	}
}

func TestVolumeFor(t *testing.T) {
	if v := volumeFor(100); v != 0 {
		t.Errorf("volumeFor(100) = %v, want 0", v)
	}
	if v := volumeFor(50); math.Abs(v+1) > 1e-9 {
		t.Errorf("volumeFor(50) = %v, want -1", v)
	}
	if v := volumeFor(150); v != 0 {
		t.Errorf("volumeFor(150) = %v, want clamped to 0", v)
	}
}

func TestMemReaderClose(t *testing.T) {
	m := &memReader{}
	if err := m.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
}
