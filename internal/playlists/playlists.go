// Package playlists owns every playlist, keyed by case-insensitive name.
package playlists

import (
	"errors"
	"slices"
	"strings"

	"github.com/llehouerou/vidlib/internal/playlist"
)

var (
	// ErrDuplicateName is returned when a playlist name is already taken.
	ErrDuplicateName = errors.New("a playlist with the same name already exists")
	// ErrNotFound is returned when no playlist matches a name.
	ErrNotFound = errors.New("playlist does not exist")
	// ErrEmptyName is returned when creating a playlist with a blank name.
	ErrEmptyName = errors.New("playlist name is empty")
)

// Registry maps normalized playlist names to playlists.
type Registry struct {
	byKey map[string]*playlist.Playlist
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byKey: make(map[string]*playlist.Playlist)}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Create adds a new empty playlist. The display name keeps its case.
func (r *Registry) Create(name string) (*playlist.Playlist, error) {
	k := key(name)
	if k == "" {
		return nil, ErrEmptyName
	}
	if _, exists := r.byKey[k]; exists {
		return nil, ErrDuplicateName
	}
	p := playlist.New(strings.TrimSpace(name))
	r.byKey[k] = p
	return p, nil
}

// Get returns the playlist matching name, ignoring case.
func (r *Registry) Get(name string) (*playlist.Playlist, error) {
	p, ok := r.byKey[key(name)]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// Delete removes the playlist matching name and returns it.
func (r *Registry) Delete(name string) (*playlist.Playlist, error) {
	k := key(name)
	p, ok := r.byKey[k]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.byKey, k)
	return p, nil
}

// List returns all playlists ordered by name, case-insensitive ascending.
func (r *Registry) List() []*playlist.Playlist {
	result := make([]*playlist.Playlist, 0, len(r.byKey))
	for _, p := range r.byKey {
		result = append(result, p)
	}
	slices.SortFunc(result, func(a, b *playlist.Playlist) int {
		if c := strings.Compare(key(a.Name()), key(b.Name())); c != 0 {
			return c
		}
		return strings.Compare(a.Name(), b.Name())
	})
	return result
}

// Len returns the number of playlists.
func (r *Registry) Len() int {
	return len(r.byKey)
}
