package player

import (
	"errors"

	"github.com/llehouerou/vidlib/internal/catalog"
	"github.com/llehouerou/vidlib/internal/errmsg"
	"github.com/llehouerou/vidlib/internal/playback"
)

// Play plays the video with the given ID, stopping any loaded video first.
func (p *VideoPlayer) Play(id string) {
	v, err := p.playable(id)
	if err != nil {
		p.reject(errmsg.Format(errmsg.OpPlay, err), err, "op", "play", "id", id)
		return
	}
	p.start(v)
}

func (p *VideoPlayer) start(v catalog.Video) {
	if previous, replaced := p.session.Play(v); replaced {
		p.say("Stopping video: %s", previous.Title)
	}
	p.log.Debug("playing", "id", v.ID, "state", p.session.State().String())
	p.say("Playing video: %s", v.Title)
}

// Stop stops the loaded video.
func (p *VideoPlayer) Stop() {
	v, err := p.session.Stop()
	if err != nil {
		p.reject(errmsg.Format(errmsg.OpStop, err), err, "op", "stop")
		return
	}
	p.say("Stopping video: %s", v.Title)
}

// PlayRandom plays a uniformly chosen unflagged video.
func (p *VideoPlayer) PlayRandom() {
	candidates := p.available()
	if len(candidates) == 0 {
		p.reject(errmsg.Reason(catalog.ErrEmptyCatalog), catalog.ErrEmptyCatalog, "op", "play_random")
		return
	}
	p.start(candidates[p.rng.IntN(len(candidates))])
}

// Pause pauses the playing video. Pausing twice is reported, not an error.
func (p *VideoPlayer) Pause() {
	v, err := p.session.Pause()
	switch {
	case errors.Is(err, playback.ErrAlreadyPaused):
		p.say("Video already paused: %s", v.Title)
	case err != nil:
		p.reject(errmsg.Format(errmsg.OpPause, err), err, "op", "pause")
	default:
		p.say("Pausing video: %s", v.Title)
	}
}

// Continue resumes a paused video.
func (p *VideoPlayer) Continue() {
	v, err := p.session.Resume()
	if err != nil {
		p.reject(errmsg.Format(errmsg.OpContinue, err), err, "op", "continue")
		return
	}
	p.say("Continuing video: %s", v.Title)
}

// ShowPlaying describes the loaded video and whether it is paused.
func (p *VideoPlayer) ShowPlaying() {
	v, ok := p.session.Current()
	if !ok {
		p.say("%s", errmsg.Reason(playback.ErrNoActiveVideo))
		return
	}
	if p.session.State() == playback.StatePaused {
		p.say("Currently playing: %s - PAUSED", catalog.Format(v))
		return
	}
	p.say("Currently playing: %s", catalog.Format(v))
}
