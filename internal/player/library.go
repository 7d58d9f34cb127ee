package player

import (
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/llehouerou/vidlib/internal/catalog"
	"github.com/llehouerou/vidlib/internal/errmsg"
)

// NumberOfVideos reports the catalog size, flagged videos included.
func (p *VideoPlayer) NumberOfVideos() {
	p.say("%d videos in the library", len(p.catalog.All()))
}

// ShowAllVideos lists every unflagged video, sorted by its formatted line.
func (p *VideoPlayer) ShowAllVideos() {
	lines := lo.Map(p.available(), func(v catalog.Video, _ int) string {
		return catalog.Format(v)
	})
	slices.Sort(lines)

	p.say("Here's a list of all available videos:")
	for _, line := range lines {
		p.say("\t %s", line)
	}
}

// SearchVideos lists unflagged videos whose title contains term and
// offers to play one of them.
func (p *VideoPlayer) SearchVideos(term string) {
	p.offer(term, p.searcher.Titles(p.available(), term))
}

// SearchVideosTag lists unflagged videos carrying tag and offers to play
// one of them.
func (p *VideoPlayer) SearchVideosTag(tag string) {
	p.offer(tag, p.searcher.Tag(p.available(), tag))
}

func (p *VideoPlayer) offer(query string, results []catalog.Video) {
	if len(results) == 0 {
		p.say("No search results for %s", query)
		return
	}

	p.say("Here are the results for %s:", query)
	for i, v := range results {
		p.say("\t %d) %s", i+1, catalog.Format(v))
	}
	p.say("Would you like to play any of the above? If yes, specify the number of the video.")
	p.say("If your answer is not a valid number, we will assume it's a no.")

	if p.prompter == nil {
		return
	}
	answer, ok := p.prompter.Prompt()
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > len(results) {
		p.log.Debug("search answer declined", "answer", answer)
		return
	}
	p.start(results[n-1])
}

// FlagVideo flags a video so it can no longer be played, listed or found.
// A loaded flagged video is stopped.
func (p *VideoPlayer) FlagVideo(id, reason string) {
	v, err := p.lookup(id)
	if err != nil {
		p.reject(errmsg.Format(errmsg.OpFlag, err), err, "op", "flag_video", "id", id)
		return
	}
	recorded, err := p.flags.Flag(id, reason)
	if err != nil {
		p.reject(errmsg.Format(errmsg.OpFlag, err), err, "op", "flag_video", "id", id)
		return
	}
	if current, ok := p.session.Current(); ok && current.ID == id {
		_, _ = p.session.Stop()
		p.say("Stopping video: %s", current.Title)
	}
	p.log.Info("video flagged", "id", id, "reason", recorded)
	p.say("Successfully flagged video: %s (reason: %s)", v.Title, recorded)
}

// AllowVideo removes the flag from a video.
func (p *VideoPlayer) AllowVideo(id string) {
	v, err := p.lookup(id)
	if err != nil {
		p.reject(errmsg.Format(errmsg.OpAllow, err), err, "op", "allow_video", "id", id)
		return
	}
	if err := p.flags.Allow(id); err != nil {
		p.reject(errmsg.Format(errmsg.OpAllow, err), err, "op", "allow_video", "id", id)
		return
	}
	p.log.Info("video allowed", "id", id)
	p.say("Successfully removed flag from video: %s", v.Title)
}
