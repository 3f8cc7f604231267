// Package engine implements core.AudioEngine on top of the beep speaker.
// Tracks are fetched over HTTP, decoded, resampled to one output rate and
// mixed through a single speaker session.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/Godevs04/tunesnip/internal/core"
	"github.com/Godevs04/tunesnip/internal/errors"
)

const (
	outputRate    = beep.SampleRate(44100)
	fetchTimeout  = 30 * time.Second
	maxTrackBytes = 32 << 20 // refuse absurd downloads
)

// Engine loads remote audio resources for playback.
type Engine struct {
	client *http.Client

	initOnce sync.Once
	initErr  error
}

// New creates an engine. The speaker session is initialized lazily on
// the first load.
func New() *Engine {
	return &Engine{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Load fetches and decodes the resource at url. The returned handle
// starts paused at position zero.
func (e *Engine) Load(ctx context.Context, url string) (core.AudioHandle, error) {
	data, err := e.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	streamer, format, err := mp3.Decode(&memReader{bytes.NewReader(data)})
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	e.initOnce.Do(func() {
		e.initErr = speaker.Init(outputRate, outputRate.N(100*time.Millisecond))
	})
	if e.initErr != nil {
		streamer.Close()
		return nil, fmt.Errorf("speaker init: %w", e.initErr)
	}

	return newHandle(streamer, format), nil
}

// fetch downloads the resource body.
func (e *Engine) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching audio: status %d", errors.ErrTrackLoadFailed, resp.StatusCode)
	}

	// Read one byte past the cap so an oversized body fails the load
	// instead of decoding as a silently truncated stream.
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTrackBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrNetworkError, err)
	}
	if len(data) > maxTrackBytes {
		return nil, fmt.Errorf("%w: audio resource exceeds %d bytes", errors.ErrTrackLoadFailed, maxTrackBytes)
	}
	return data, nil
}

// memReader adapts a bytes.Reader to the ReadCloser+Seeker the decoder
// wants.
type memReader struct {
	*bytes.Reader
}

func (m *memReader) Close() error { return nil }
