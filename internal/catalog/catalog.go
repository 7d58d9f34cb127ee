// Package catalog holds the read-only set of videos known to the player.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrVideoNotFound is returned when an ID does not resolve in the catalog.
	ErrVideoNotFound = errors.New("video does not exist")
	// ErrEmptyCatalog is returned when a choice is requested from no videos.
	ErrEmptyCatalog = errors.New("no videos available")
	// ErrDuplicateID is returned when two videos share an ID.
	ErrDuplicateID = errors.New("duplicate video id")
)

// Video is a single catalog entry. Videos are never mutated after load.
type Video struct {
	ID    string
	Title string
	Tags  []string // in original order, including the leading '#'
}

// Format renders a video as "Title (id) [#tag1 #tag2]".
func Format(v Video) string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
}

// HasTag reports whether the video carries tag, ignoring case.
func (v Video) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Catalog is the lookup contract the player depends on.
type Catalog interface {
	All() []Video
	Video(id string) (Video, bool)
}

// Verify Library implements Catalog at compile time.
var _ Catalog = (*Library)(nil)

// Library is an in-memory Catalog keyed by video ID.
type Library struct {
	videos []Video
	byID   map[string]int
}

// New builds a library from videos, rejecting empty or duplicate IDs.
func New(videos ...Video) (*Library, error) {
	l := &Library{
		videos: make([]Video, 0, len(videos)),
		byID:   make(map[string]int, len(videos)),
	}
	for _, v := range videos {
		if err := l.add(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Library) add(v Video) error {
	if v.ID == "" {
		return fmt.Errorf("video %q: empty id", v.Title)
	}
	if _, exists := l.byID[v.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, v.ID)
	}
	v.Tags = append([]string(nil), v.Tags...)
	l.byID[v.ID] = len(l.videos)
	l.videos = append(l.videos, v)
	return nil
}

// All returns every video in load order. The slice is a copy.
func (l *Library) All() []Video {
	result := make([]Video, len(l.videos))
	copy(result, l.videos)
	return result
}

// Video returns the video with the given ID.
func (l *Library) Video(id string) (Video, bool) {
	i, ok := l.byID[id]
	if !ok {
		return Video{}, false
	}
	return l.videos[i], true
}

// Len returns the number of videos.
func (l *Library) Len() int {
	return len(l.videos)
}
