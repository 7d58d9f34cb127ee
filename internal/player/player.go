// Package player is the video player facade. Every user command enters
// here, is validated against the catalog and playlists, mutates the
// playback session, and is reported as human-readable lines.
package player

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/samber/lo"

	"github.com/llehouerou/vidlib/internal/catalog"
	"github.com/llehouerou/vidlib/internal/moderation"
	"github.com/llehouerou/vidlib/internal/playback"
	"github.com/llehouerou/vidlib/internal/playlists"
	"github.com/llehouerou/vidlib/internal/search"
)

// Prompter supplies the user's answer to a follow-up question.
// ok is false when no answer is available.
type Prompter interface {
	Prompt() (answer string, ok bool)
}

// Options configures a VideoPlayer. Zero values are usable.
type Options struct {
	Rand       *rand.Rand   // random source for PlayRandom; seeded from time if nil
	Prompter   Prompter     // answers search prompts; nil always answers no
	Logger     *slog.Logger // diagnostics; slog.Default() if nil
	MaxResults int          // search result cap, 0 for unlimited
}

// VideoPlayer composes the playback session, the playlist registry and
// the flag set around a read-only catalog.
type VideoPlayer struct {
	catalog   catalog.Catalog
	session   *playback.Session
	playlists *playlists.Registry
	flags     *moderation.Flags
	searcher  search.Searcher
	rng       *rand.Rand
	prompter  Prompter
	out       io.Writer
	log       *slog.Logger
}

// New creates a stopped player with no playlists that reports to out.
func New(c catalog.Catalog, out io.Writer, opts Options) *VideoPlayer {
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano()) //nolint:gosec // seed only
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &VideoPlayer{
		catalog:   c,
		session:   playback.NewSession(),
		playlists: playlists.New(),
		flags:     moderation.New(),
		searcher:  search.Searcher{MaxResults: opts.MaxResults},
		rng:       rng,
		prompter:  opts.Prompter,
		out:       out,
		log:       logger,
	}
}

// State returns the playback state.
func (p *VideoPlayer) State() playback.State {
	return p.session.State()
}

// Current returns the loaded video, if any.
func (p *VideoPlayer) Current() (catalog.Video, bool) {
	return p.session.Current()
}

func (p *VideoPlayer) say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// reject reports a refused operation. The state is never touched.
func (p *VideoPlayer) reject(msg string, err error, attrs ...any) {
	attrs = append(attrs, "state", p.session.State().String(), "error", err)
	p.log.Debug("operation rejected", attrs...)
	p.say("%s", msg)
}

// lookup resolves id against the catalog.
func (p *VideoPlayer) lookup(id string) (catalog.Video, error) {
	v, ok := p.catalog.Video(id)
	if !ok {
		return catalog.Video{}, catalog.ErrVideoNotFound
	}
	return v, nil
}

// playable resolves id and refuses flagged videos.
func (p *VideoPlayer) playable(id string) (catalog.Video, error) {
	v, err := p.lookup(id)
	if err != nil {
		return v, err
	}
	if err := p.flags.Check(id); err != nil {
		return v, err
	}
	return v, nil
}

// available returns the unflagged catalog videos in catalog order.
func (p *VideoPlayer) available() []catalog.Video {
	return lo.Filter(p.catalog.All(), func(v catalog.Video, _ int) bool {
		return !p.flags.IsFlagged(v.ID)
	})
}
