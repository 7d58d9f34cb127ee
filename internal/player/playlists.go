package player

import (
	"github.com/llehouerou/vidlib/internal/catalog"
	"github.com/llehouerou/vidlib/internal/errmsg"
)

// CreatePlaylist creates an empty playlist. Names are unique ignoring case.
func (p *VideoPlayer) CreatePlaylist(name string) {
	pl, err := p.playlists.Create(name)
	if err != nil {
		p.reject(errmsg.Format(errmsg.OpPlaylistCreate, err), err, "op", "create_playlist", "name", name)
		return
	}
	p.say("Successfully created new playlist: %s", pl.Name())
}

// AddToPlaylist appends a video to the named playlist.
func (p *VideoPlayer) AddToPlaylist(name, id string) {
	fail := func(err error) {
		p.reject(errmsg.FormatWith(errmsg.OpPlaylistAdd, name, err), err,
			"op", "add_to_playlist", "name", name, "id", id)
	}

	pl, err := p.playlists.Get(name)
	if err != nil {
		fail(err)
		return
	}
	v, err := p.playable(id)
	if err != nil {
		fail(err)
		return
	}
	// Once the playlist resolves, reports use its display name.
	if err := pl.Add(v); err != nil {
		p.reject(errmsg.FormatWith(errmsg.OpPlaylistAdd, pl.Name(), err), err,
			"op", "add_to_playlist", "name", name, "id", id)
		return
	}
	p.say("Added video to %s: %s", pl.Name(), v.Title)
}

// RemoveFromPlaylist removes a video from the named playlist.
func (p *VideoPlayer) RemoveFromPlaylist(name, id string) {
	fail := func(err error) {
		p.reject(errmsg.FormatWith(errmsg.OpPlaylistRemove, name, err), err,
			"op", "remove_from_playlist", "name", name, "id", id)
	}

	pl, err := p.playlists.Get(name)
	if err != nil {
		fail(err)
		return
	}
	if _, err := p.lookup(id); err != nil {
		fail(err)
		return
	}
	v, err := pl.Remove(id)
	if err != nil {
		fail(err)
		return
	}
	p.say("Removed video from %s: %s", name, v.Title)
}

// ClearPlaylist removes every video from the named playlist.
func (p *VideoPlayer) ClearPlaylist(name string) {
	pl, err := p.playlists.Get(name)
	if err != nil {
		p.reject(errmsg.FormatWith(errmsg.OpPlaylistClear, name, err), err, "op", "clear_playlist", "name", name)
		return
	}
	pl.Clear()
	p.say("Successfully removed all videos from %s", name)
}

// DeletePlaylist deletes the named playlist.
func (p *VideoPlayer) DeletePlaylist(name string) {
	if _, err := p.playlists.Delete(name); err != nil {
		p.reject(errmsg.FormatWith(errmsg.OpPlaylistDelete, name, err), err, "op", "delete_playlist", "name", name)
		return
	}
	p.say("Deleted playlist: %s", name)
}

// ShowAllPlaylists lists playlist names ordered case-insensitively.
func (p *VideoPlayer) ShowAllPlaylists() {
	all := p.playlists.List()
	if len(all) == 0 {
		p.say("No playlists exist yet")
		return
	}
	p.say("Showing all playlists:")
	for _, pl := range all {
		p.say("\t %s", pl.Name())
	}
}

// ShowPlaylist lists the videos of the named playlist in insertion order.
func (p *VideoPlayer) ShowPlaylist(name string) {
	pl, err := p.playlists.Get(name)
	if err != nil {
		p.reject(errmsg.FormatWith(errmsg.OpPlaylistShow, name, err), err, "op", "show_playlist", "name", name)
		return
	}
	p.say("Showing playlist: %s", name)
	if pl.Len() == 0 {
		p.say("\t No videos here yet")
		return
	}
	for v := range pl.All() {
		p.say("\t %s", p.describe(v))
	}
}

// describe formats a video, marking it when flagged.
func (p *VideoPlayer) describe(v catalog.Video) string {
	if reason, ok := p.flags.Reason(v.ID); ok {
		return catalog.Format(v) + " - FLAGGED (reason: " + reason + ")"
	}
	return catalog.Format(v)
}
