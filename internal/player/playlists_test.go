//nolint:goconst // test cases intentionally repeat strings for readability
package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/vidlib/internal/catalog"
)

func TestPlaylistScenario(t *testing.T) {
	h := newHarness(t, smallCatalog(t))

	h.player.CreatePlaylist("My List")
	assert.Equal(t, []string{"Successfully created new playlist: My List"}, h.lines())

	h.player.AddToPlaylist("my list", "v1")
	assert.Equal(t, []string{"Added video to My List: Amy"}, h.lines())

	h.player.AddToPlaylist("MY LIST", "v1")
	assert.Equal(t, []string{"Cannot add video to My List: Video already added"}, h.lines())

	h.player.AddToPlaylist("my list", "missing")
	assert.Equal(t, []string{"Cannot add video to my list: Video does not exist"}, h.lines())
}

func TestCreatePlaylist_Duplicate(t *testing.T) {
	h := newHarness(t, smallCatalog(t))

	h.player.CreatePlaylist("X")
	h.lines()
	h.player.CreatePlaylist("x")
	assert.Equal(t, []string{"Cannot create playlist: A playlist with the same name already exists"}, h.lines())
}

func TestAddToPlaylist_Errors(t *testing.T) {
	h := newHarness(t, smallCatalog(t))

	h.player.AddToPlaylist("nope", "v1")
	assert.Equal(t, []string{"Cannot add video to nope: Playlist does not exist"}, h.lines())

	h.player.CreatePlaylist("list")
	h.lines()
	h.player.AddToPlaylist("list", "missing")
	assert.Equal(t, []string{"Cannot add video to list: Video does not exist"}, h.lines())

	h.player.FlagVideo("v2", "spam")
	h.lines()
	h.player.AddToPlaylist("list", "v2")
	assert.Equal(t, []string{"Cannot add video to list: Video is currently flagged (reason: spam)"}, h.lines())
}

func TestRemoveFromPlaylist(t *testing.T) {
	h := newHarness(t, smallCatalog(t))

	h.player.RemoveFromPlaylist("list", "v1")
	assert.Equal(t, []string{"Cannot remove video from list: Playlist does not exist"}, h.lines())

	h.player.CreatePlaylist("list")
	h.player.AddToPlaylist("list", "v1")
	h.lines()

	h.player.RemoveFromPlaylist("list", "missing")
	assert.Equal(t, []string{"Cannot remove video from list: Video does not exist"}, h.lines())

	h.player.RemoveFromPlaylist("list", "v2")
	assert.Equal(t, []string{"Cannot remove video from list: Video is not in playlist"}, h.lines())

	h.player.RemoveFromPlaylist("LIST", "v1")
	assert.Equal(t, []string{"Removed video from LIST: Amy"}, h.lines())

	h.player.ShowPlaylist("list")
	assert.Equal(t, []string{"Showing playlist: list", "\t No videos here yet"}, h.lines())
}

func TestClearPlaylist(t *testing.T) {
	h := newHarness(t, smallCatalog(t))

	h.player.ClearPlaylist("list")
	assert.Equal(t, []string{"Cannot clear playlist list: Playlist does not exist"}, h.lines())

	h.player.CreatePlaylist("list")
	h.player.AddToPlaylist("list", "v1")
	h.player.AddToPlaylist("list", "v2")
	h.lines()

	h.player.ClearPlaylist("list")
	assert.Equal(t, []string{"Successfully removed all videos from list"}, h.lines())

	h.player.ShowPlaylist("list")
	assert.Equal(t, []string{"Showing playlist: list", "\t No videos here yet"}, h.lines())
}

func TestDeletePlaylist(t *testing.T) {
	h := newHarness(t, smallCatalog(t))

	h.player.DeletePlaylist("list")
	assert.Equal(t, []string{"Cannot delete playlist list: Playlist does not exist"}, h.lines())

	h.player.CreatePlaylist("list")
	h.lines()
	h.player.DeletePlaylist("List")
	assert.Equal(t, []string{"Deleted playlist: List"}, h.lines())

	h.player.ShowAllPlaylists()
	assert.Equal(t, []string{"No playlists exist yet"}, h.lines())
}

func TestShowAllPlaylists_Sorted(t *testing.T) {
	h := newHarness(t, smallCatalog(t))

	h.player.ShowAllPlaylists()
	assert.Equal(t, []string{"No playlists exist yet"}, h.lines())

	h.player.CreatePlaylist("rock")
	h.player.CreatePlaylist("Jazz")
	h.player.CreatePlaylist("ambient")
	h.lines()

	h.player.ShowAllPlaylists()
	assert.Equal(t, []string{
		"Showing all playlists:",
		"\t ambient",
		"\t Jazz",
		"\t rock",
	}, h.lines())
}

func TestShowPlaylist(t *testing.T) {
	h := newHarness(t, smallCatalog(t))

	h.player.ShowPlaylist("list")
	assert.Equal(t, []string{"Cannot show playlist list: Playlist does not exist"}, h.lines())

	h.player.CreatePlaylist("list")
	h.player.AddToPlaylist("list", "v2")
	h.player.AddToPlaylist("list", "v1")
	h.player.FlagVideo("v1", "")
	h.lines()

	h.player.ShowPlaylist("LIST")
	assert.Equal(t, []string{
		"Showing playlist: LIST",
		"\t Bob (v2) [b]",
		"\t Amy (v1) [a] - FLAGGED (reason: Not supplied)",
	}, h.lines())
}

func TestPlaylist_ReferencesCatalogVideos(t *testing.T) {
	l, _ := catalog.New(catalog.Video{ID: "v1", Title: "Amy"})
	h := newHarness(t, l)

	h.player.CreatePlaylist("a")
	h.player.CreatePlaylist("b")
	h.player.AddToPlaylist("a", "v1")
	h.player.AddToPlaylist("b", "v1")
	assert.Equal(t, []string{
		"Successfully created new playlist: a",
		"Successfully created new playlist: b",
		"Added video to a: Amy",
		"Added video to b: Amy",
	}, h.lines())
}
