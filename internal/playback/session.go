// Package playback tracks which single video is loaded and whether it is paused.
package playback

import (
	"errors"

	"github.com/llehouerou/vidlib/internal/catalog"
)

var (
	ErrNoActiveVideo = errors.New("no video is currently playing")
	ErrAlreadyPaused = errors.New("video already paused")
	ErrNotPaused     = errors.New("video is not paused")
)

// Session is the player state machine: Stopped, Playing or Paused.
// At most one video is loaded at a time.
type Session struct {
	current *catalog.Video
	paused  bool
}

// NewSession creates a stopped session.
func NewSession() *Session {
	return &Session{}
}

// State returns the current playback state.
func (s *Session) State() State {
	switch {
	case s.current == nil:
		return StateStopped
	case s.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

// Current returns the loaded video, if any.
func (s *Session) Current() (catalog.Video, bool) {
	if !s.State().IsActive() {
		return catalog.Video{}, false
	}
	return *s.current, true
}

// Play loads v and starts playing it from any state.
// If another video was loaded it is returned with replaced set.
func (s *Session) Play(v catalog.Video) (previous catalog.Video, replaced bool) {
	previous, replaced = s.Current()
	s.current = &v
	s.paused = false
	return previous, replaced
}

// Stop unloads the current video and returns it.
func (s *Session) Stop() (catalog.Video, error) {
	v, ok := s.Current()
	if !ok {
		return catalog.Video{}, ErrNoActiveVideo
	}
	s.current = nil
	s.paused = false
	return v, nil
}

// Pause pauses the loaded video. Pausing twice returns ErrAlreadyPaused
// along with the video and leaves the state unchanged.
func (s *Session) Pause() (catalog.Video, error) {
	v, ok := s.Current()
	if !ok {
		return catalog.Video{}, ErrNoActiveVideo
	}
	if s.paused {
		return v, ErrAlreadyPaused
	}
	s.paused = true
	return v, nil
}

// Resume continues a paused video.
func (s *Session) Resume() (catalog.Video, error) {
	v, ok := s.Current()
	if !ok {
		return catalog.Video{}, ErrNoActiveVideo
	}
	if !s.paused {
		return v, ErrNotPaused
	}
	s.paused = false
	return v, nil
}
