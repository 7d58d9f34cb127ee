package playback

import (
	"errors"
	"testing"

	"github.com/llehouerou/vidlib/internal/catalog"
)

var (
	amy = catalog.Video{ID: "v1", Title: "Amy", Tags: []string{"a"}}
	bob = catalog.Video{ID: "v2", Title: "Bob", Tags: []string{"b"}}
)

func TestNewSession_Stopped(t *testing.T) {
	s := NewSession()

	if s.State() != StateStopped {
		t.Errorf("State() = %v, want Stopped", s.State())
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() should report no video")
	}
}

func TestSession_Play(t *testing.T) {
	s := NewSession()

	_, replaced := s.Play(amy)
	if replaced {
		t.Error("first Play should not replace anything")
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", s.State())
	}

	prev, replaced := s.Play(bob)
	if !replaced || prev.ID != "v1" {
		t.Errorf("Play(bob) = (%v, %v), want (amy, true)", prev.ID, replaced)
	}
	cur, _ := s.Current()
	if cur.ID != "v2" {
		t.Errorf("Current().ID = %q, want v2", cur.ID)
	}
}

func TestSession_Play_FromPausedResetsPause(t *testing.T) {
	s := NewSession()
	s.Play(amy)
	_, _ = s.Pause()

	s.Play(bob)

	if s.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", s.State())
	}
}

func TestSession_Stop(t *testing.T) {
	s := NewSession()
	s.Play(amy)

	v, err := s.Stop()
	if err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if v.ID != "v1" {
		t.Errorf("Stop() = %q, want v1", v.ID)
	}
	if s.State() != StateStopped {
		t.Errorf("State() = %v, want Stopped", s.State())
	}

	if _, err := s.Stop(); !errors.Is(err, ErrNoActiveVideo) {
		t.Errorf("second Stop() error = %v, want ErrNoActiveVideo", err)
	}
}

func TestSession_Pause_Idempotent(t *testing.T) {
	s := NewSession()
	s.Play(amy)

	if _, err := s.Pause(); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	v, err := s.Pause()
	if !errors.Is(err, ErrAlreadyPaused) {
		t.Errorf("second Pause() error = %v, want ErrAlreadyPaused", err)
	}
	if v.ID != "v1" {
		t.Errorf("second Pause() video = %q, want v1", v.ID)
	}
	if s.State() != StatePaused {
		t.Errorf("State() = %v, want Paused", s.State())
	}
}

func TestSession_Resume(t *testing.T) {
	s := NewSession()

	if _, err := s.Resume(); !errors.Is(err, ErrNoActiveVideo) {
		t.Errorf("Resume() when stopped error = %v, want ErrNoActiveVideo", err)
	}

	s.Play(amy)
	if _, err := s.Resume(); !errors.Is(err, ErrNotPaused) {
		t.Errorf("Resume() when playing error = %v, want ErrNotPaused", err)
	}

	_, _ = s.Pause()
	if _, err := s.Resume(); err != nil {
		t.Errorf("Resume() when paused error = %v", err)
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", s.State())
	}
}

func TestSession_Pause_WhenStopped(t *testing.T) {
	s := NewSession()

	if _, err := s.Pause(); !errors.Is(err, ErrNoActiveVideo) {
		t.Errorf("Pause() error = %v, want ErrNoActiveVideo", err)
	}
	if s.State() != StateStopped {
		t.Errorf("State() = %v, want Stopped", s.State())
	}
}

func TestSession_StateTracksLoadedVideo(t *testing.T) {
	s := NewSession()
	steps := []struct {
		name   string
		do     func()
		want   State
		loaded bool
	}{
		{"play", func() { s.Play(amy) }, StatePlaying, true},
		{"pause", func() { _, _ = s.Pause() }, StatePaused, true},
		{"resume", func() { _, _ = s.Resume() }, StatePlaying, true},
		{"stop", func() { _, _ = s.Stop() }, StateStopped, false},
	}
	for _, step := range steps {
		step.do()
		if got := s.State(); got != step.want {
			t.Errorf("after %s: State() = %v, want %v", step.name, got, step.want)
		}
		_, ok := s.Current()
		if ok != step.loaded || s.State().IsActive() != step.loaded {
			t.Errorf("after %s: loaded = %v, IsActive() = %v, want %v",
				step.name, ok, s.State().IsActive(), step.loaded)
		}
	}
}
