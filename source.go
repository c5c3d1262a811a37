package herofx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrSourceNotFound is returned when no live surface matches a query.
var ErrSourceNotFound = errors.New("herofx: live source not found")

// LiveSource is an animated surface another component owns and redraws
// every frame. The overlay only reads from it.
type LiveSource interface {
	// Frame returns the current image. It may return a different image
	// after the source is resized.
	Frame() *ebiten.Image
}

// SurfaceRegistry maps lookup queries to live surfaces currently on
// screen. Components register while mounted and unregister on unmount.
type SurfaceRegistry struct {
	sources map[string]LiveSource
}

// NewSurfaceRegistry creates an empty registry.
func NewSurfaceRegistry() *SurfaceRegistry {
	return &SurfaceRegistry{sources: make(map[string]LiveSource)}
}

// Register makes src discoverable under query, replacing any previous
// surface registered under the same query.
func (r *SurfaceRegistry) Register(query string, src LiveSource) {
	r.sources[normalizeQuery(query)] = src
}

// Unregister removes query. It only removes the entry if it still points
// at src, so a late unmount cannot drop a newer registration.
func (r *SurfaceRegistry) Unregister(query string, src LiveSource) {
	q := normalizeQuery(query)
	if r.sources[q] == src {
		delete(r.sources, q)
	}
}

// Lookup resolves query to a registered surface.
func (r *SurfaceRegistry) Lookup(query string) (LiveSource, error) {
	if src, ok := r.sources[normalizeQuery(query)]; ok && src != nil {
		return src, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, query)
}

// normalizeQuery collapses runs of whitespace so "a  b" and " a b" match.
func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(q), " ")
}

// LiveSnapshot is a weak, per-frame refreshed view onto a LiveSource.
// It never owns or mutates the source image.
type LiveSnapshot struct {
	src      LiveSource
	tex      *ebiten.Image
	w, h     int
	dirty    bool
	released bool
}

// newLiveSnapshot captures src's current frame and marks it for refresh.
func newLiveSnapshot(src LiveSource) *LiveSnapshot {
	s := &LiveSnapshot{src: src, dirty: true}
	s.refresh()
	return s
}

// MarkDirty requests a refresh before the next Texture call.
func (s *LiveSnapshot) MarkDirty() {
	if !s.released {
		s.dirty = true
	}
}

// Texture returns the source's current frame, re-reading it if dirty.
// It returns nil after Release.
func (s *LiveSnapshot) Texture() *ebiten.Image {
	if s.released {
		return nil
	}
	if s.dirty {
		s.refresh()
	}
	return s.tex
}

// Size returns the dimensions of the last captured frame.
func (s *LiveSnapshot) Size() (int, int) {
	return s.w, s.h
}

// Release drops the reference to the source. Later calls are no-ops.
func (s *LiveSnapshot) Release() {
	s.released = true
	s.src = nil
	s.tex = nil
	s.dirty = false
}

// Released reports whether Release has been called.
func (s *LiveSnapshot) Released() bool {
	return s.released
}

func (s *LiveSnapshot) refresh() {
	s.dirty = false
	img := s.src.Frame()
	s.tex = img
	if img == nil {
		s.w, s.h = 0, 0
		return
	}
	b := img.Bounds()
	s.w, s.h = b.Dx(), b.Dy()
}
