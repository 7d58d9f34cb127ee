// Package playlist provides a named, ordered, duplicate-free list of videos.
package playlist

import (
	"errors"
	"iter"
	"slices"

	"github.com/llehouerou/vidlib/internal/catalog"
)

var (
	// ErrAlreadyAdded is returned when a video is added to a playlist twice.
	ErrAlreadyAdded = errors.New("video already added")
	// ErrNotInPlaylist is returned when removing a video the playlist lacks.
	ErrNotInPlaylist = errors.New("video is not in playlist")
)

// Playlist holds a named, ordered collection of videos with no duplicates.
type Playlist struct {
	name   string
	videos []catalog.Video
}

// New creates a new empty playlist.
func New(name string) *Playlist {
	return &Playlist{
		name:   name,
		videos: make([]catalog.Video, 0),
	}
}

// Name returns the display name the playlist was created with.
func (p *Playlist) Name() string {
	return p.name
}

// Add appends v unless a video with the same ID is already present.
func (p *Playlist) Add(v catalog.Video) error {
	if p.Contains(v.ID) {
		return ErrAlreadyAdded
	}
	p.videos = append(p.videos, v)
	return nil
}

// Remove removes the video with the given ID and returns it.
func (p *Playlist) Remove(id string) (catalog.Video, error) {
	i := p.index(id)
	if i < 0 {
		return catalog.Video{}, ErrNotInPlaylist
	}
	v := p.videos[i]
	p.videos = slices.Delete(p.videos, i, i+1)
	return v, nil
}

// Clear removes all videos from the playlist.
func (p *Playlist) Clear() {
	p.videos = p.videos[:0]
}

// Contains reports whether a video with the given ID is in the playlist.
func (p *Playlist) Contains(id string) bool {
	return p.index(id) >= 0
}

func (p *Playlist) index(id string) int {
	return slices.IndexFunc(p.videos, func(v catalog.Video) bool {
		return v.ID == id
	})
}

// All returns an iterator over the videos in insertion order.
// Each call starts a fresh pass.
func (p *Playlist) All() iter.Seq[catalog.Video] {
	return func(yield func(catalog.Video) bool) {
		for _, v := range p.videos {
			if !yield(v) {
				return
			}
		}
	}
}

// Videos returns a copy of all videos.
func (p *Playlist) Videos() []catalog.Video {
	result := make([]catalog.Video, len(p.videos))
	copy(result, p.videos)
	return result
}

// Len returns the number of videos.
func (p *Playlist) Len() int {
	return len(p.videos)
}
